package build

import (
	"errors"
	"fmt"
)

// DocumentErrorKind classifies why a single document failed to index.
type DocumentErrorKind int

const (
	ErrKindHTMLSelectorNotPresent DocumentErrorKind = iota
	ErrKindEmptyWordList
	ErrKindCannotReadSource
	ErrKindUnsupportedFiletype
	ErrKindFrontmatterParseFailure
)

// DocumentError describes one document's indexing failure. It does not
// abort the overall build; it is collected alongside successfully indexed
// documents and reported to the caller.
type DocumentError struct {
	Title  string
	Kind   DocumentErrorKind
	Detail string
}

func (e *DocumentError) Error() string {
	switch e.Kind {
	case ErrKindHTMLSelectorNotPresent:
		return fmt.Sprintf("Error: HTML selector `%s` is not present in the file while indexing `%s`", e.Detail, e.Title)
	case ErrKindEmptyWordList:
		return fmt.Sprintf("Error: No words in word list while indexing `%s`", e.Title)
	case ErrKindCannotReadSource:
		return fmt.Sprintf("Error: Could not read source (%s) while indexing `%s`", e.Detail, e.Title)
	case ErrKindUnsupportedFiletype:
		return fmt.Sprintf("Error: Unsupported filetype (%s) while indexing `%s`", e.Detail, e.Title)
	case ErrKindFrontmatterParseFailure:
		return fmt.Sprintf("Error: Could not parse frontmatter (%s) while indexing `%s`", e.Detail, e.Title)
	default:
		return fmt.Sprintf("Error: unknown failure while indexing `%s`", e.Title)
	}
}

// ErrNoValidFiles is returned when every configured document failed to
// index, leaving nothing to build an index from.
var ErrNoValidFiles = errors.New("no valid files: every configured document failed to index")

// InvariantError reports a violation of one of the build's internal
// invariants — a bug in the assembler, not a bad input document.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Detail)
}
