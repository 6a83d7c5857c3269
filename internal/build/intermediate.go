package build

import "github.com/jameslittle/stork/internal/domain"

// IntermediateEntry is the builder's per-document working value: the
// result of resolving one configured File, before it is frozen into a
// domain.Entry by ToEntries.
type IntermediateEntry struct {
	Title      string
	URL        string
	Fields     map[string]string
	Contents   []domain.AnnotatedWord
	SourceText string
}
