package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{input: "৳1,250.00", want: 1250, wantOK: true},
		{input: "  42 ", want: 42, wantOK: true},
		{input: "-45.5", want: -45.5, wantOK: true},
		{input: "12.345", want: 12.35, wantOK: true},
		{input: "0", want: 0, wantOK: true},
		{input: "-", wantOK: false},
		{input: "—", wantOK: false},
		{input: "", wantOK: false},
		{input: "n/a", wantOK: false},
		{input: "1.2.3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input  string
		want   time.Time
		wantOK bool
	}{
		{input: "September 3, 2025", want: time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "2025-09-03", want: time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "09/03/2025", want: time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "Tuesday, September 2, 2025", want: time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "Sept 1, 2025", want: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "September 1, 2025 (GMT+6)", want: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "Tuesday", wantOK: false},
		{input: "not a date", wantOK: false},
		{input: "  ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestToInstant(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback string
		want     string
		wantOK   bool
	}{
		{name: "pinned to noon", raw: "September 3, 2025", want: "2025-09-03T12:00:00.000Z", wantOK: true},
		{name: "late evening with offset keeps its day", raw: "2025-09-03T23:30:00+06:00", want: "2025-09-03T06:00:00.000Z", wantOK: true},
		{name: "blank uses fallback month", raw: " ", fallback: "2025-09", want: "2025-09-01T00:00:00.000Z", wantOK: true},
		{name: "weekday prefix", raw: "Tuesday, September 2, 2025", fallback: "2025-09", want: "2025-09-02T12:00:00.000Z", wantOK: true},
		{name: "four letter month abbreviation", raw: "Sept 1, 2025", fallback: "2025-09", want: "2025-09-01T12:00:00.000Z", wantOK: true},
		{name: "blank without fallback", raw: "", wantOK: false},
		{name: "unparsable ignores fallback", raw: "someday", fallback: "2025-09", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInstant(tt.raw, tt.fallback)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInstant(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)
	assert.Equal(t, "2025-09-15T02:30:00.000Z", FormatInstant(time.Date(2025, 9, 15, 8, 30, 0, 0, dhaka)))
	assert.Equal(t, "2025-09-01T00:00:00.000Z", MonthStart("2025-09"))
}
