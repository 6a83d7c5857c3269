// Package build implements Component B (per-document resolution into
// IntermediateEntry values, tolerating individual document failures) and
// Component C (stem computation and container assembly) of the index
// builder.
package build

import (
	"github.com/jameslittle/stork/internal/domain"
	"github.com/jameslittle/stork/internal/fetch"
)

// Build runs the full builder pipeline against cfg using a production
// HTTPReader for source resolution.
func Build(cfg domain.Config) (*domain.Index, []DocumentError, error) {
	return BuildWithReader(cfg, fetch.NewHTTPReader())
}

// BuildWithReader runs the full builder pipeline with a caller-supplied
// fetch.Reader, letting tests substitute a fake without touching the
// filesystem or network.
func BuildWithReader(cfg domain.Config, reader fetch.Reader) (*domain.Index, []DocumentError, error) {
	entries, docErrs := FillIntermediateEntries(cfg, reader)
	if len(entries) == 0 {
		return nil, docErrs, ErrNoValidFiles
	}

	stems := FillStems(entries, cfg.Input.Stemming)

	containers, err := FillContainers(cfg, entries, stems)
	if err != nil {
		return nil, docErrs, err
	}

	idx := &domain.Index{
		Entries:    ToEntries(entries),
		Containers: containers,
		Config: domain.PassthroughConfig{
			URLPrefix:             cfg.Input.URLPrefix,
			TitleBoost:            cfg.Input.TitleBoost,
			ExcerptBuffer:         cfg.Output.ExcerptBuffer,
			ExcerptsPerResult:     cfg.Output.ExcerptsPerResult,
			DisplayedResultsCount: cfg.Output.DisplayedResultsCount,
		},
	}

	return idx, docErrs, nil
}
