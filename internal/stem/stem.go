// Package stem computes Snowball stems for words and groups the
// vocabulary of a build by stem, feeding Component C's stem-aliasing pass.
package stem

import (
	"strings"

	"github.com/kljensen/snowball/danish"
	"github.com/kljensen/snowball/dutch"
	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/finnish"
	"github.com/kljensen/snowball/french"
	"github.com/kljensen/snowball/german"
	"github.com/kljensen/snowball/hungarian"
	"github.com/kljensen/snowball/italian"
	"github.com/kljensen/snowball/norwegian"
	"github.com/kljensen/snowball/portuguese"
	"github.com/kljensen/snowball/romanian"
	"github.com/kljensen/snowball/russian"
	"github.com/kljensen/snowball/spanish"
	"github.com/kljensen/snowball/swedish"
	"github.com/kljensen/snowball/turkish"
)

// stemFunc matches the shape every kljensen/snowball language package
// exports: Stem(word string, stemStopWords bool) string.
type stemFunc func(word string, stemStopWords bool) string

var languages = map[string]stemFunc{
	"danish":     danish.Stem,
	"dutch":      dutch.Stem,
	"english":    english.Stem,
	"finnish":    finnish.Stem,
	"french":     french.Stem,
	"german":     german.Stem,
	"hungarian":  hungarian.Stem,
	"italian":    italian.Stem,
	"norwegian":  norwegian.Stem,
	"portuguese": portuguese.Stem,
	"romanian":   romanian.Stem,
	"russian":    russian.Stem,
	"spanish":    spanish.Stem,
	"swedish":    swedish.Stem,
	"turkish":    turkish.Stem,
}

// Stem computes the Snowball stem of word for the given language tag
// (case-insensitive). Unsupported or empty language tags fall back to
// identity rather than failing the build over one unrecognized config
// value.
func Stem(language, word string) string {
	fn, ok := languages[strings.ToLower(language)]
	if !ok {
		return word
	}
	stemmed := fn(word, false)
	if stemmed == "" {
		return word
	}
	return stemmed
}

// Supported reports whether language has a registered Snowball stemmer.
func Supported(language string) bool {
	_, ok := languages[strings.ToLower(language)]
	return ok
}
