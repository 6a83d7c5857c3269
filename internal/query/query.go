package query

import (
	"sort"
	"strings"

	"github.com/jameslittle/stork/internal/cache"
	"github.com/jameslittle/stork/internal/domain"
)

// coverageBonus rewards entries that match more of the distinct query
// terms, so a document hitting every term outranks one that only
// repeats a single term many times.
const coverageBonus = 4.0

// candidate accumulates every term match for one entry while a query is
// being resolved. maxScore is the highest container-level SearchResult
// score seen across the entry's hits, used only as a tiebreak below the
// composite score and above title.
type candidate struct {
	entryIndex   int
	hits         []hit
	termsMatched map[int]bool
	maxScore     uint8
}

// Search runs queryStr against idx and returns the ranked, windowed
// result set. An empty query, or one made only of whitespace and ASCII
// punctuation, yields an empty Output, not an error.
func Search(idx *domain.Index, queryStr string) (*Output, error) {
	terms := normalizeQuery(queryStr)
	out := &Output{Results: []OutputResult{}, URLPrefix: idx.Config.URLPrefix}
	if len(terms) == 0 {
		return out, nil
	}

	candidates := make(map[int]*candidate)
	for termIdx, term := range terms {
		for _, m := range matchTerm(idx, term) {
			cand, ok := candidates[m.entryIndex]
			if !ok {
				cand = &candidate{entryIndex: m.entryIndex, termsMatched: make(map[int]bool)}
				candidates[m.entryIndex] = cand
			}
			cand.termsMatched[termIdx] = true
			if m.score > cand.maxScore {
				cand.maxScore = m.score
			}
			for _, ex := range m.excerpts {
				cand.hits = append(cand.hits, hit{excerpt: ex, quality: m.quality, termIdx: termIdx})
			}
		}
	}

	out.TotalHitCount = len(candidates)
	if len(candidates) == 0 {
		return out, nil
	}

	ordered := make([]*candidate, 0, len(candidates))
	for _, c := range candidates {
		ordered = append(ordered, c)
	}

	composite := func(c *candidate) float64 {
		var sum float64
		for _, h := range c.hits {
			sum += h.excerpt.Importance * h.quality
		}
		return sum + coverageBonus*float64(len(c.termsMatched))
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := composite(ordered[i]), composite(ordered[j])
		if ci != cj {
			return ci > cj
		}
		if ordered[i].maxScore != ordered[j].maxScore {
			return ordered[i].maxScore > ordered[j].maxScore
		}
		ti, tj := idx.Entries[ordered[i].entryIndex].Title, idx.Entries[ordered[j].entryIndex].Title
		if ti != tj {
			return ti < tj
		}
		return ordered[i].entryIndex < ordered[j].entryIndex
	})

	displayCount := idx.Config.DisplayedResultsCount
	if displayCount <= 0 {
		displayCount = len(ordered)
	}
	if displayCount < len(ordered) {
		ordered = ordered[:displayCount]
	}

	excerptsPerResult := idx.Config.ExcerptsPerResult
	if excerptsPerResult <= 0 {
		excerptsPerResult = 5
	}
	excerptBuffer := idx.Config.ExcerptBuffer
	if excerptBuffer <= 0 {
		excerptBuffer = defaultExcerptBuffer
	}

	results := make([]OutputResult, 0, len(ordered))
	for _, c := range ordered {
		entry := idx.Entries[c.entryIndex]

		windows := buildWindows(entry, c.hits, excerptBuffer)
		if len(windows) > excerptsPerResult {
			windows = windows[:excerptsPerResult]
		}
		sort.Slice(windows, func(i, j int) bool { return windows[i].startWord < windows[j].startWord })

		excerpts := make([]OutputExcerpt, 0, len(windows))
		for _, w := range windows {
			excerpts = append(excerpts, renderWindow(entry, w))
		}

		results = append(results, OutputResult{
			Entry: OutputEntry{
				Title:  entry.Title,
				URL:    entry.URL,
				Fields: entry.Fields,
			},
			Excerpts:             excerpts,
			TitleHighlightRanges: titleHighlights(entry.Title, terms),
			Score:                composite(c),
		})
	}

	out.Results = results
	return out, nil
}

// titleHighlights finds case-insensitive occurrences of each query term
// within title and returns their byte ranges.
func titleHighlights(title string, terms []string) []Range {
	lower := strings.ToLower(title)
	var ranges []Range
	for _, term := range terms {
		if term == "" {
			continue
		}
		searchFrom := 0
		for {
			idx := strings.Index(lower[searchFrom:], term)
			if idx < 0 {
				break
			}
			start := searchFrom + idx
			ranges = append(ranges, Range{Start: start, Len: len(term)})
			searchFrom = start + len(term)
		}
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

// SearchFromCache looks up a previously parsed index by name in the
// package-level default cache and runs queryStr against it.
func SearchFromCache(name, queryStr string) (*Output, error) {
	idx, err := cache.Get(name)
	if err != nil {
		return nil, err
	}
	return Search(idx, queryStr)
}
