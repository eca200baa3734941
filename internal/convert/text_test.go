package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "  Café Rio  ", want: "Cafe Rio"},
		{input: "৳1,250.00", want: "1,250.00"},
		{input: "Groceries", want: "Groceries"},
		{input: "   ", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "City Bank", want: "city-bank"},
		{input: "  Food & Drinks!! ", want: "food-drinks"},
		{input: "Cash-Cash--2025", want: "cash-cash-2025"},
		{input: "৳", want: "item"},
		{input: "", want: "item"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "weekday ordinal and month", input: "Mon 3rd Jan Coffee with Sam", want: "Coffee with Sam"},
		{name: "mention marker", input: "@Sam lunch", want: "Sam lunch"},
		{name: "year and full month", input: "2025 September 12 Rent", want: "Rent"},
		{name: "relative word with punctuation", input: "Yesterday, dinner", want: "dinner"},
		{name: "stops at first ordinary token", input: "Rent for May", want: "Rent for May"},
		{name: "only date tokens", input: "Mon 3rd", want: ""},
		{name: "diacritics folded", input: "Tue Crème brûlée", want: "Creme brulee"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanLabel(tt.input))
		})
	}
}

func TestDisplayNote(t *testing.T) {
	tests := []struct {
		name      string
		rowName   string
		notes     string
		want      string
		wantEmpty bool
	}{
		{name: "notes win", rowName: "Lunch", notes: "@Sam paid", want: "Sam paid"},
		{name: "cleaned name", rowName: "Mon 3rd Jan Lunch", want: "Lunch"},
		{name: "raw name when cleaning leaves nothing", rowName: "Mon 3rd Jan", want: "Mon 3rd Jan"},
		{name: "raw notes when name is blank", notes: "Tue", want: "Tue"},
		{name: "bare mention marker", rowName: "@", wantEmpty: true},
		{name: "nothing at all", wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayNote(tt.rowName, tt.notes)
			if tt.wantEmpty {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, *got)
			}
		})
	}
}
