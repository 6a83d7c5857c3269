// Package text splits document bodies into the normalized, byte-offset
// tagged words the rest of the index builder operates on.
package text

import (
	"strings"
	"unicode"
)

// Word is a single token: its lowercased, punctuation-trimmed text and the
// byte offset of its first character in the source string it came from.
type Word struct {
	Text       string
	ByteOffset int
}

// Tokenize splits source on whitespace and trims leading/trailing ASCII
// punctuation from each resulting word, lowercasing it. Unlike a stopword
// filter, short words and interior punctuation (e.g. "don't") are kept
// whole: prefix and fuzzy matching at query time need the full vocabulary,
// not a pruned one.
func Tokenize(source string) []Word {
	var words []Word

	start := -1
	for i, r := range source {
		if unicode.IsSpace(r) {
			if start >= 0 {
				if w, ok := makeWord(source[start:i], start); ok {
					words = append(words, w)
				}
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		if w, ok := makeWord(source[start:], start); ok {
			words = append(words, w)
		}
	}

	return words
}

// makeWord trims surrounding ASCII punctuation from raw and lowercases it,
// adjusting offset for however many leading bytes were trimmed. It reports
// false if nothing but punctuation remained.
func makeWord(raw string, offset int) (Word, bool) {
	trimmed := TrimPunctuation(raw)
	if trimmed == "" {
		return Word{}, false
	}

	leadingTrimmed := strings.Index(raw, trimmed)
	if leadingTrimmed < 0 {
		leadingTrimmed = 0
	}

	return Word{Text: strings.ToLower(trimmed), ByteOffset: offset + leadingTrimmed}, true
}

// TrimPunctuation strips leading and trailing ASCII punctuation from word,
// leaving interior punctuation (apostrophes, hyphens) untouched. It is a
// pure function independent of Tokenize so build-time field values (e.g.
// frontmatter strings) can reuse the same rule.
func TrimPunctuation(word string) string {
	return strings.TrimFunc(word, isASCIIPunct)
}

func isASCIIPunct(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsPunct(r)
}
