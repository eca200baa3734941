package convert

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const placeholderSlug = "item"

var (
	slugSeparator  = regexp.MustCompile(`[^a-z0-9]+`)
	tokenNoise     = regexp.MustCompile(`[^a-z0-9]`)
	ordinalPattern = regexp.MustCompile(`^\d+(st|nd|rd|th)$`)
)

// NormalizeText folds diacritics, drops anything outside ASCII and trims the result.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	folded, _, err := transform.String(asciiFolder(), text)
	if err != nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(folded)
}

// asciiFolder decomposes runes (NFKD) and removes the non-ASCII leftovers,
// so "Café" becomes "Cafe" and "৳" disappears.
func asciiFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
}

// Slugify lowercases text and joins its ASCII words with hyphens.
func Slugify(text string) string {
	slug := strings.Trim(slugSeparator.ReplaceAllString(strings.ToLower(text), "-"), "-")
	if slug == "" {
		return placeholderSlug
	}
	return slug
}

// tokenRule recognises one kind of date vocabulary a label may start with.
type tokenRule struct {
	name  string
	match func(token string) bool
}

// weekdayWords are full and abbreviated weekday names.
var weekdayWords = map[string]bool{
	"mon": true, "monday": true, "tue": true, "tues": true, "tuesday": true,
	"wed": true, "wednesday": true, "thu": true, "thur": true, "thurs": true, "thursday": true,
	"fri": true, "friday": true, "sat": true, "saturday": true, "sun": true, "sunday": true,
}

// calendarWords are month and relative-time words Notion titles are often prefixed with.
var calendarWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true, "jul": true,
	"aug": true, "sep": true, "sept": true, "oct": true, "nov": true, "dec": true,
	"today": true, "yesterday": true, "tomorrow": true, "tmrw": true,
	"last": true, "this": true, "next": true,
	"week": true, "month": true, "day": true, "year": true,
}

// datePrefixRules are evaluated top to bottom against each leading token.
var datePrefixRules = []tokenRule{
	{name: "punctuation", match: func(token string) bool { return token == "" }},
	{name: "year", match: func(token string) bool { return len(token) == 4 && isDigits(token) }},
	{name: "day number", match: isDigits},
	{name: "ordinal day", match: ordinalPattern.MatchString},
	{name: "weekday", match: isWeekday},
	{name: "calendar word", match: func(token string) bool { return calendarWords[token] }},
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isWeekday(token string) bool {
	return weekdayWords[token]
}

// bareToken lowercases token and drops everything but letters and digits.
func bareToken(token string) string {
	return tokenNoise.ReplaceAllString(strings.ToLower(token), "")
}

func isDatePrefixToken(token string) bool {
	normalized := bareToken(token)
	for _, rule := range datePrefixRules {
		if rule.match(normalized) {
			return true
		}
	}
	return false
}

// CleanLabel removes a leading "@" mention marker and the run of date tokens a
// transaction title starts with. Stripping halts at the first ordinary token.
func CleanLabel(label string) string {
	text := NormalizeText(label)
	text = strings.TrimSpace(strings.TrimPrefix(text, "@"))
	if text == "" {
		return ""
	}

	tokens := strings.Fields(text)
	start := 0
	for start < len(tokens) && isDatePrefixToken(tokens[start]) {
		start++
	}
	return strings.Join(tokens[start:], " ")
}

// DisplayNote picks the human readable note of a transaction: the cleaned notes,
// then the cleaned name, then the raw name (or notes) as a last resort.
// Nil means there is nothing worth showing.
func DisplayNote(name, notes string) *string {
	if cleaned := CleanLabel(notes); cleaned != "" {
		return &cleaned
	}
	if cleaned := CleanLabel(name); cleaned != "" {
		return &cleaned
	}

	raw := name
	if raw == "" {
		raw = notes
	}
	fallback := NormalizeText(raw)
	if strings.HasPrefix(fallback, "@") {
		fallback = CleanLabel(fallback)
	}
	if fallback == "" {
		return nil
	}
	return &fallback
}
