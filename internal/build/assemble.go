package build

import (
	"fmt"

	"github.com/jameslittle/stork/internal/domain"
	"github.com/jameslittle/stork/internal/stem"
)

const (
	minPrefixLength      = 3
	prefixDelta          = 0.03125
	prefixFloor          = 0.5
	stemAliasSimilarity  = 0.5
	baseScore            = 128
	titleHitScore        = 16
	bodyHitScore         = 8
	maxScore             = 255
)

// FillStems computes, for every distinct word across all entries, its stem
// under the configured language, and groups the originating words by
// stem. Stemming is skipped entirely (an empty map is returned) when the
// config's mode is not StemmingLanguage.
func FillStems(entries []IntermediateEntry, stemming domain.Stemming) map[string][]string {
	stems := make(map[string][]string)
	if stemming.Mode != domain.StemmingLanguage {
		return stems
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		for _, w := range e.Contents {
			if seen[w.Word] {
				continue
			}
			seen[w.Word] = true
			s := stem.Stem(stemming.Language, w.Word)
			stems[s] = append(stems[s], w.Word)
		}
	}
	return stems
}

// FillContainers builds the inverted container map: primary insertion of
// every word occurrence, prefix-alias expansion, and stem aliasing, per
// spec's Component C algorithm.
func FillContainers(cfg domain.Config, entries []IntermediateEntry, stems map[string][]string) (map[string]*domain.Container, error) {
	containers := make(map[string]*domain.Container)

	minLen := cfg.Input.MinimumIndexedSubstringLength
	if minLen <= 0 {
		minLen = minPrefixLength
	}

	wordStems := make(map[string][]string)
	for s, words := range stems {
		for _, w := range words {
			wordStems[w] = append(wordStems[w], s)
		}
	}

	for i, e := range entries {
		for j, w := range e.Contents {
			key := w.Word
			if key == "" {
				continue
			}

			imp := importance(cfg, w)

			c := ensureContainer(containers, key)
			addExcerpt(c, i, j, w, imp)

			for p := minLen; p < len(key); p++ {
				prefix := key[:p]
				pc := ensureContainer(containers, prefix)
				sim := 1.0 - float64(len(key)-p)*prefixDelta
				if sim < prefixFloor {
					sim = prefixFloor
				}
				registerAlias(pc, key, sim)
			}

			for _, s := range wordStems[key] {
				if s == key {
					continue
				}
				sc := ensureContainer(containers, s)
				registerAlias(sc, key, stemAliasSimilarity)
			}
		}
	}

	for term, c := range containers {
		for alias := range c.Aliases {
			if _, ok := containers[alias]; !ok {
				return nil, &InvariantError{Detail: fmt.Sprintf("alias %q registered in container %q but target container missing", alias, term)}
			}
		}
	}

	applyScores(containers)

	return containers, nil
}

func ensureContainer(containers map[string]*domain.Container, key string) *domain.Container {
	c, ok := containers[key]
	if !ok {
		c = domain.NewContainer()
		containers[key] = c
	}
	return c
}

func addExcerpt(c *domain.Container, entryIndex, wordIndex int, w domain.AnnotatedWord, importance float64) {
	res, ok := c.Results[entryIndex]
	if !ok {
		res = &domain.SearchResult{}
		c.Results[entryIndex] = res
	}
	res.Excerpts = append(res.Excerpts, domain.Excerpt{
		EntryIndex: entryIndex,
		WordIndex:  wordIndex,
		ByteOffset: w.ByteOffset,
		Tags:       w.Tags,
		Importance: importance,
	})
}

func registerAlias(c *domain.Container, term string, sim float64) {
	if existing, ok := c.Aliases[term]; ok && existing >= sim {
		return
	}
	c.Aliases[term] = sim
}

// importance weighs a word occurrence by its configured field weight (from
// any HTML/Markdown tag it descended from) multiplied by the title-boost
// multiplier when the word came from a title-level tag.
func importance(cfg domain.Config, w domain.AnnotatedWord) float64 {
	weight := 1.0
	for _, tag := range w.Tags {
		if fw, ok := cfg.Input.FieldWeights[tag]; ok {
			weight = fw
			break
		}
	}
	if isTitleTag(w.Tags) {
		return weight * cfg.Input.TitleBoost.Multiplier()
	}
	return weight
}

func isTitleTag(tags []string) bool {
	for _, t := range tags {
		switch t {
		case "h1", "h2", "h3", "title":
			return true
		}
	}
	return false
}

// applyScores computes each SearchResult's coarse 0-255 score: a base of
// 128, +16 for every title-tagged excerpt the entry contributed under that
// container and +8 for every other excerpt, capped at 255.
func applyScores(containers map[string]*domain.Container) {
	for _, c := range containers {
		for _, res := range c.Results {
			score := baseScore
			for _, ex := range res.Excerpts {
				if isTitleTag(ex.Tags) {
					score += titleHitScore
				} else {
					score += bodyHitScore
				}
			}
			if score > maxScore {
				score = maxScore
			}
			res.Score = uint8(score)
		}
	}
}
