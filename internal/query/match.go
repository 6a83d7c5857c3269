package query

import (
	"github.com/agnivade/levenshtein"

	"github.com/jameslittle/stork/internal/domain"
)

// termMatch is one container's contribution to a query term: every entry
// hit under that container, the match quality (1.0 for exact, the alias
// similarity for an alias hop, or a distance-derived quality for a fuzzy
// match), and the container's coarse score.
type termMatch struct {
	entryIndex int
	excerpts   []domain.Excerpt
	quality    float64
	score      uint8
}

// matchTerm resolves a single normalized query term against idx: exact
// container hit, then its aliases (one hop only), falling back to a fuzzy
// edit-distance scan of the whole vocabulary only when neither produced any
// match and the term is long enough to make fuzzy matching meaningful.
func matchTerm(idx *domain.Index, term string) []termMatch {
	var matches []termMatch

	if c, ok := idx.Containers[term]; ok {
		for entryIdx, res := range c.Results {
			matches = append(matches, termMatch{entryIndex: entryIdx, excerpts: res.Excerpts, quality: 1.0, score: res.Score})
		}
		for alias, sim := range c.Aliases {
			if ac, ok := idx.Containers[alias]; ok {
				for entryIdx, res := range ac.Results {
					matches = append(matches, termMatch{entryIndex: entryIdx, excerpts: res.Excerpts, quality: sim, score: res.Score})
				}
			}
		}
	}

	if len(matches) == 0 && len(term) >= 3 {
		threshold := len(term)/6 + 1
		for key, c := range idx.Containers {
			dist := levenshtein.ComputeDistance(term, key)
			if dist > threshold {
				continue
			}
			quality := 1.0 - float64(dist)/float64(len(term))
			for entryIdx, res := range c.Results {
				matches = append(matches, termMatch{entryIndex: entryIdx, excerpts: res.Excerpts, quality: quality, score: res.Score})
			}
		}
	}

	return matches
}
