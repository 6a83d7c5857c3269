package query

import (
	"sort"

	"github.com/jameslittle/stork/internal/domain"
)

const defaultExcerptBuffer = 8

// hit is one query-term match localized to a specific excerpt within an
// entry, carrying the match quality so importance*quality can contribute
// to both the entry's composite score and the excerpt's displayed score.
type hit struct {
	excerpt domain.Excerpt
	quality float64
	termIdx int
}

// window is a contiguous run of word indices selected for display,
// built by expanding each hit by excerptBuffer words in both directions
// and greedily merging overlapping or abutting expansions.
type window struct {
	startWord  int
	endWord    int
	importance float64
	hits       []hit
}

// buildWindows expands every hit into a word-index window and merges
// overlapping or adjacent windows, returning them ordered by descending
// summed importance (the caller truncates to excerptsPerResult and then
// re-sorts by position for display).
func buildWindows(entry domain.Entry, hits []hit, buffer int) []window {
	if buffer <= 0 {
		buffer = defaultExcerptBuffer
	}
	lastWord := len(entry.Contents) - 1
	if lastWord < 0 {
		return nil
	}

	sorted := make([]hit, len(hits))
	copy(sorted, hits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].excerpt.WordIndex < sorted[j].excerpt.WordIndex })

	var windows []window
	for _, h := range sorted {
		start := h.excerpt.WordIndex - buffer
		if start < 0 {
			start = 0
		}
		end := h.excerpt.WordIndex + buffer
		if end > lastWord {
			end = lastWord
		}

		merged := false
		for i := range windows {
			if start <= windows[i].endWord+1 && windows[i].startWord <= end+1 {
				if start < windows[i].startWord {
					windows[i].startWord = start
				}
				if end > windows[i].endWord {
					windows[i].endWord = end
				}
				windows[i].importance += h.excerpt.Importance * h.quality
				windows[i].hits = append(windows[i].hits, h)
				merged = true
				break
			}
		}
		if !merged {
			windows = append(windows, window{
				startWord:  start,
				endWord:    end,
				importance: h.excerpt.Importance * h.quality,
				hits:       []hit{h},
			})
		}
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].importance > windows[j].importance })
	return windows
}

// renderWindow slices entry.SourceText for a window and computes the
// highlight ranges, contributing score, and tag annotations within it.
func renderWindow(entry domain.Entry, w window) OutputExcerpt {
	contents := entry.Contents

	startByte := contents[w.startWord].ByteOffset
	endByte := len(entry.SourceText)
	if w.endWord+1 < len(contents) {
		endByte = contents[w.endWord+1].ByteOffset
	}
	if endByte > len(entry.SourceText) || endByte <= startByte {
		endByte = len(entry.SourceText)
	}

	text := entry.SourceText[startByte:endByte]

	var ranges []Range
	tagSet := make(map[string]bool)
	var score float64

	for _, h := range w.hits {
		rel := h.excerpt.ByteOffset - startByte
		if rel < 0 || rel >= len(text) {
			continue
		}
		wordLen := len(contents[h.excerpt.WordIndex].Word)
		if rel+wordLen > len(text) {
			wordLen = len(text) - rel
		}
		ranges = append(ranges, Range{Start: rel, Len: wordLen})
		for _, t := range h.excerpt.Tags {
			tagSet[t] = true
		}
		score += h.excerpt.Importance * h.quality
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return OutputExcerpt{
		Text:                text,
		HighlightRanges:     ranges,
		Score:               score,
		InternalAnnotations: tags,
		Fields:              entry.Fields,
	}
}
