package convert

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

const (
	// InstantLayout is the UTC instant format of every timestamp in a backup.
	InstantLayout = "2006-01-02T15:04:05.000Z"
	// MonthLayout formats a target month.
	MonthLayout = "2006-01"
)

var (
	amountNoise = regexp.MustCompile(`[^0-9.\-]`)
	// zoneNote matches the "(GMT+6)" style annotation Notion appends to date-times.
	zoneNote = regexp.MustCompile(`\s*\(GMT[+-]?\d{1,2}(:?\d{2})?\)\s*$`)
)

// ParseAmount reads a currency cell such as "৳1,250.00" and rounds it to two
// decimals. Blank cells and lone dash placeholders yield ok == false.
func ParseAmount(raw string) (float64, bool) {
	text := strings.TrimSpace(raw)
	switch text {
	case "", "-", "—":
		return 0, false
	}

	cleaned := amountNoise.ReplaceAllString(text, "")
	switch cleaned {
	case "", "-", ".":
		return 0, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	return amount.Round(2).InexactFloat64(), true
}

// ParseDate interprets free-form date text, month first when ambiguous.
// Text without a zone is read as UTC. A trailing "(GMT+n)" note is ignored.
func ParseDate(raw string) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}
	text = zoneNote.ReplaceAllString(text, "")
	if t, err := parseIn(text); err == nil {
		return t, true
	}
	normalized := normalizeDateText(text)
	if normalized == "" || normalized == text {
		return time.Time{}, false
	}
	t, err := parseIn(normalized)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseIn(text string) (time.Time, error) {
	return dateparse.ParseIn(text, time.UTC, dateparse.PreferMonthFirst(true))
}

// normalizeDateText drops leading weekday names and spells "Sept" as "Sep",
// the two forms the date parser does not accept.
func normalizeDateText(text string) string {
	tokens := strings.Fields(text)
	start := 0
	for start < len(tokens) && isWeekday(bareToken(tokens[start])) {
		start++
	}
	tokens = tokens[start:]
	for i, token := range tokens {
		if len(token) >= 4 && strings.EqualFold(token[:4], "sept") && bareToken(token) == "sept" {
			tokens[i] = "Sep" + strings.TrimLeft(token[4:], ".")
		}
	}
	return strings.Join(tokens, " ")
}

// FormatInstant renders t as a UTC instant with millisecond precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

// MonthStart returns the first instant of month (YYYY-MM) in InstantLayout.
func MonthStart(month string) string {
	return month + "-01T00:00:00.000Z"
}

// ToInstant converts a date cell to a UTC instant pinned to noon of that day,
// so a zone shift cannot move it to a neighbouring date. A blank cell falls
// back to the first of fallbackMonth; with no fallback it stays absent.
func ToInstant(raw, fallbackMonth string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		if fallbackMonth == "" {
			return "", false
		}
		return MonthStart(fallbackMonth), true
	}

	t, ok := ParseDate(text)
	if !ok {
		return "", false
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
	return FormatInstant(noon), true
}
