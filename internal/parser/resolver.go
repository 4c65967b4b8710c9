package parser

import (
	"strings"
	"unicode"

	"fieldmap/internal/model"
)

// NormalizeKey normalizes a header key or alias for comparison: lowercased,
// stripped of every rune outside ASCII alphanumerics and Hangul.
func NormalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.Is(unicode.Hangul, r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve returns the value of the first record key (in source column order)
// whose normalized form matches any normalized alias. The second return is
// false when no alias matches.
func Resolve(record *model.RawRecord, aliases []string) (any, bool) {
	if record == nil || len(aliases) == 0 {
		return nil, false
	}

	wanted := make(map[string]struct{}, len(aliases))
	for _, alias := range aliases {
		norm := NormalizeKey(alias)
		if norm != "" {
			wanted[norm] = struct{}{}
		}
	}

	for _, key := range record.Keys() {
		if _, ok := wanted[NormalizeKey(key)]; ok {
			v, _ := record.Value(key)
			return v, true
		}
	}
	return nil, false
}

// ResolveField resolves a canonical field against the built-in alias table.
func ResolveField(record *model.RawRecord, field Field) (any, bool) {
	return Resolve(record, Aliases(field))
}
