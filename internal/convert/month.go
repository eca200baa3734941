package convert

import (
	"strings"
	"time"

	"notion-backup/internal/domain"
)

// monthColumns are consulted in order; the first non-blank cell dates the row.
var monthColumns = []string{domain.ColDate, domain.ColTargetDate, domain.ColStartDate}

// InferTargetMonth returns the year-month most rows of tables fall in.
// Equal counts go to the month seen first. Without any parsable date the
// month of now (UTC) is used.
func InferTargetMonth(now time.Time, tables ...[]domain.Row) string {
	counts := make(map[string]int)
	var seen []string

	for _, rows := range tables {
		for _, row := range rows {
			raw := firstFilled(row, monthColumns)
			if raw == "" {
				continue
			}
			t, ok := ParseDate(raw)
			if !ok {
				continue
			}
			month := t.Format(MonthLayout)
			if counts[month] == 0 {
				seen = append(seen, month)
			}
			counts[month]++
		}
	}

	if len(seen) == 0 {
		return now.UTC().Format(MonthLayout)
	}
	best := seen[0]
	for _, month := range seen[1:] {
		if counts[month] > counts[best] {
			best = month
		}
	}
	return best
}

func firstFilled(row domain.Row, columns []string) string {
	for _, col := range columns {
		if v := row.Get(col); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
