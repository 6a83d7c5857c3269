package query

import (
	"strings"
	"unicode"
)

// normalizeQuery lowercases q and splits it into terms on whitespace and
// ASCII punctuation.
func normalizeQuery(q string) []string {
	lower := strings.ToLower(q)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return unicode.IsSpace(r) || (r < unicode.MaxASCII && unicode.IsPunct(r))
	})
}
