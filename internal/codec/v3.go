package codec

import (
	"fmt"
	"sort"

	"github.com/jameslittle/stork/internal/domain"
)

func encodeV3(idx *domain.Index) ([]byte, error) {
	e := &encoder{}

	e.writeUint32(uint32(len(idx.Entries)))
	for _, entry := range idx.Entries {
		e.writeString(entry.Title)
		e.writeString(entry.URL)
		e.writeStringMap(entry.Fields)
		e.writeString(entry.SourceText)
		e.writeUint32(uint32(len(entry.Contents)))
		for _, w := range entry.Contents {
			e.writeString(w.Word)
			e.writeInt(w.ByteOffset)
			e.writeStringSlice(w.Tags)
		}
	}

	containerKeys := make([]string, 0, len(idx.Containers))
	for k := range idx.Containers {
		containerKeys = append(containerKeys, k)
	}
	sort.Strings(containerKeys)

	e.writeUint32(uint32(len(containerKeys)))
	for _, key := range containerKeys {
		c := idx.Containers[key]
		e.writeString(key)

		entryIdxs := make([]int, 0, len(c.Results))
		for ei := range c.Results {
			entryIdxs = append(entryIdxs, ei)
		}
		sort.Ints(entryIdxs)

		e.writeUint32(uint32(len(entryIdxs)))
		for _, ei := range entryIdxs {
			res := c.Results[ei]
			e.writeInt(ei)
			e.writeByte(res.Score)
			e.writeUint32(uint32(len(res.Excerpts)))
			for _, ex := range res.Excerpts {
				e.writeInt(ex.EntryIndex)
				e.writeInt(ex.WordIndex)
				e.writeInt(ex.ByteOffset)
				e.writeStringSlice(ex.Tags)
				e.writeFloat64(ex.Importance)
			}
		}

		aliasKeys := make([]string, 0, len(c.Aliases))
		for a := range c.Aliases {
			aliasKeys = append(aliasKeys, a)
		}
		sort.Strings(aliasKeys)

		e.writeUint32(uint32(len(aliasKeys)))
		for _, a := range aliasKeys {
			e.writeString(a)
			e.writeFloat64(c.Aliases[a])
		}
	}

	e.writeString(idx.Config.URLPrefix)
	e.writeString(string(idx.Config.TitleBoost))
	e.writeInt(idx.Config.ExcerptBuffer)
	e.writeInt(idx.Config.ExcerptsPerResult)
	e.writeInt(idx.Config.DisplayedResultsCount)

	return e.buf.Bytes(), nil
}

func decodeV3(payload []byte) (*domain.Index, error) {
	d := newDecoder(payload)

	numEntries := d.readUint32()
	entries := make([]domain.Entry, numEntries)
	for i := range entries {
		entries[i].Title = d.readString()
		entries[i].URL = d.readString()
		entries[i].Fields = d.readStringMap()
		entries[i].SourceText = d.readString()

		numWords := d.readUint32()
		words := make([]domain.AnnotatedWord, numWords)
		for j := range words {
			words[j].Word = d.readString()
			words[j].ByteOffset = d.readInt()
			words[j].Tags = d.readStringSlice()
		}
		entries[i].Contents = words
	}

	numContainers := d.readUint32()
	containers := make(map[string]*domain.Container, numContainers)
	for i := uint32(0); i < numContainers; i++ {
		key := d.readString()
		c := domain.NewContainer()

		numResults := d.readUint32()
		for r := uint32(0); r < numResults; r++ {
			entryIdx := d.readInt()
			score := d.readByte()

			numExcerpts := d.readUint32()
			excerpts := make([]domain.Excerpt, numExcerpts)
			for e := range excerpts {
				excerpts[e].EntryIndex = d.readInt()
				excerpts[e].WordIndex = d.readInt()
				excerpts[e].ByteOffset = d.readInt()
				excerpts[e].Tags = d.readStringSlice()
				excerpts[e].Importance = d.readFloat64()
			}
			c.Results[entryIdx] = &domain.SearchResult{Excerpts: excerpts, Score: score}
		}

		numAliases := d.readUint32()
		for a := uint32(0); a < numAliases; a++ {
			term := d.readString()
			sim := d.readFloat64()
			c.Aliases[term] = sim
		}

		containers[key] = c
	}

	urlPrefix := d.readString()
	titleBoost := d.readString()
	excerptBuffer := d.readInt()
	excerptsPerResult := d.readInt()
	displayedResultsCount := d.readInt()

	if d.err != nil {
		return nil, fmt.Errorf("decode stork-3 payload: %w", d.err)
	}

	return &domain.Index{
		Entries:    entries,
		Containers: containers,
		Config: domain.PassthroughConfig{
			URLPrefix:             urlPrefix,
			TitleBoost:            domain.TitleBoost(titleBoost),
			ExcerptBuffer:         excerptBuffer,
			ExcerptsPerResult:     excerptsPerResult,
			DisplayedResultsCount: displayedResultsCount,
		},
	}, nil
}
