package convert

import "strings"

const citationSuffix = ".csv)"

// ResolveReference extracts the entity name from a relation cell written as
// "Name (Table.csv)". Only a trailing citation is removed; a bare name is
// returned normalized, parentheses included.
func ResolveReference(raw string) string {
	text := NormalizeText(raw)
	if text == "" {
		return ""
	}

	idx := strings.LastIndex(text, " (")
	if idx != -1 && strings.HasSuffix(text[idx:], citationSuffix) {
		if name := strings.TrimSpace(text[:idx]); name != "" {
			return name
		}
	}
	return text
}

// NameIndex maps a normalized display name to the identifier minted for it.
type NameIndex map[string]string

// Lookup resolves name to an identifier.
func (n NameIndex) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	id, ok := n[name]
	return id, ok
}
