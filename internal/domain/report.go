package domain

import (
	"fmt"
	"sort"
	"strings"
)

// EntityKind names an output entity list.
type EntityKind string

const (
	EntityAccounts     EntityKind = "accounts"
	EntityCategories   EntityKind = "categories"
	EntityBudgets      EntityKind = "budgets"
	EntityTransactions EntityKind = "transactions"
	EntityGoals        EntityKind = "goals"
)

// SkipReason explains why a source row produced no output record.
type SkipReason string

const (
	SkipMissingName        SkipReason = "name"
	SkipInvalidAmount      SkipReason = "amount"
	SkipUnresolvedAccount  SkipReason = "account"
	SkipUnresolvedCategory SkipReason = "category"
	SkipInvalidDate        SkipReason = "date"
)

// SkipTally counts skipped source rows per entity kind and reason.
type SkipTally map[EntityKind]map[SkipReason]int

// Add records one skipped row.
func (s SkipTally) Add(kind EntityKind, reason SkipReason) {
	if s[kind] == nil {
		s[kind] = make(map[SkipReason]int)
	}
	s[kind][reason]++
}

// Total returns the number of skipped rows for kind.
func (s SkipTally) Total(kind EntityKind) int {
	total := 0
	for _, n := range s[kind] {
		total += n
	}
	return total
}

// Summary describes the outcome of assembling one backup.
type Summary struct {
	TargetMonth string    `json:"targetMonth"`
	ImportTag   string    `json:"importTag"`
	Accounts    int       `json:"accounts"`
	Categories  int       `json:"categories"`
	Budgets     int       `json:"budgets"`
	Txns        int       `json:"transactions"`
	Goals       int       `json:"goals"`
	Skipped     SkipTally `json:"skipped"`
}

// Report is returned to the caller after a successful run.
type Report struct {
	RunID      string  `json:"runId"`
	SourceDir  string  `json:"sourceDir"`
	OutputPath string  `json:"outputPath"`
	Summary    Summary `json:"summary"`
}

// StatsLine renders the per-entity counts and the target month on one line.
func (r *Report) StatsLine() string {
	s := r.Summary
	return fmt.Sprintf("Stats -> Accounts: %d, Categories: %d, Budgets: %d, Transactions: %d, Goals: %d, Target Month: %s",
		s.Accounts, s.Categories, s.Budgets, s.Txns, s.Goals, s.TargetMonth)
}

// SkipLines renders the skip tally as "kind: reason=n, ..." lines, sorted for stable output.
func (r *Report) SkipLines() []string {
	kinds := make([]string, 0, len(r.Summary.Skipped))
	for kind := range r.Summary.Skipped {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	lines := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		reasons := r.Summary.Skipped[EntityKind(kind)]
		parts := make([]string, 0, len(reasons))
		for reason, n := range reasons {
			parts = append(parts, fmt.Sprintf("%s=%d", reason, n))
		}
		sort.Strings(parts)
		lines = append(lines, fmt.Sprintf("%s: %s", kind, strings.Join(parts, ", ")))
	}
	return lines
}
