package build

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jameslittle/stork/internal/domain"
	"github.com/jameslittle/stork/internal/extract"
	"github.com/jameslittle/stork/internal/fetch"
	"github.com/jameslittle/stork/internal/frontmatter"
	"github.com/jameslittle/stork/internal/text"
)

const maxResolveWorkers = 8

type entryJobResult struct {
	entry *IntermediateEntry
	err   *DocumentError
}

// FillIntermediateEntries resolves every configured file into an
// IntermediateEntry, collecting per-document failures without aborting the
// whole build. Files are read and extracted in parallel worker goroutines,
// each writing its file's slot in configuration order; entries are then
// stably sorted by (title, URL) and errors by title, ties keeping
// configuration order, so that EntryIndex assignment (the caller's job, via
// ToEntries) and CLI error output are reproducible regardless of goroutine
// scheduling order.
func FillIntermediateEntries(cfg domain.Config, reader fetch.Reader) ([]IntermediateEntry, []DocumentError) {
	files := cfg.Input.Files
	if len(files) == 0 {
		return nil, nil
	}

	jobs := make(chan int, len(files))
	resolved := make([]entryJobResult, len(files))

	workers := maxResolveWorkers
	if len(files) < workers {
		workers = len(files)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entry, err := resolveFile(cfg, files[i], reader)
				resolved[i] = entryJobResult{entry: entry, err: err}
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var entries []IntermediateEntry
	var errs []DocumentError
	for _, r := range resolved {
		if r.err != nil {
			errs = append(errs, *r.err)
			continue
		}
		entries = append(entries, *r.entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Title != entries[j].Title {
			return entries[i].Title < entries[j].Title
		}
		return entries[i].URL < entries[j].URL
	})
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Title < errs[j].Title })

	return entries, errs
}

func resolveFile(cfg domain.Config, f domain.FileConfig, reader fetch.Reader) (*IntermediateEntry, *DocumentError) {
	title := f.Title

	raw, err := reader.Read(f.Source, cfg.Input.BaseDirectory)
	if err != nil {
		return nil, &DocumentError{Title: title, Kind: ErrKindCannotReadSource, Detail: err.Error()}
	}

	filetype := f.Filetype
	if filetype == "" {
		filetype = inferFiletype(f.Source)
	}

	selector := f.HTMLSelectorOverride
	if selector == "" {
		selector = cfg.Input.HTMLSelector
	}

	fields := map[string]string{}
	body := raw

	if cfg.Input.FrontmatterHandling == domain.FrontmatterOmit || cfg.Input.FrontmatterHandling == domain.FrontmatterParse {
		fm, remainder, present, ferr := frontmatter.Split(raw)
		if present {
			if ferr != nil {
				return nil, &DocumentError{Title: title, Kind: ErrKindFrontmatterParseFailure, Detail: ferr.Error()}
			}
			body = remainder
			if cfg.Input.FrontmatterHandling == domain.FrontmatterParse {
				for k, v := range fm {
					fields[k] = v
				}
			}
		}
	}

	var extracted string
	var spans []extract.TagSpan

	switch filetype {
	case domain.FiletypePlainText:
		extracted = extract.PlainText(body)
	case domain.FiletypeHTML:
		t, s, herr := extract.HTML(body, selector)
		if herr != nil {
			if errors.Is(herr, extract.ErrSelectorNotPresent) {
				return nil, &DocumentError{Title: title, Kind: ErrKindHTMLSelectorNotPresent, Detail: selector}
			}
			return nil, &DocumentError{Title: title, Kind: ErrKindCannotReadSource, Detail: herr.Error()}
		}
		extracted, spans = t, s
	case domain.FiletypeMarkdown:
		t, s, merr := extract.Markdown(body, selector)
		if merr != nil {
			return nil, &DocumentError{Title: title, Kind: ErrKindCannotReadSource, Detail: merr.Error()}
		}
		extracted, spans = t, s
	case domain.FiletypeSRTSubtitle:
		extracted = extract.SRT(body)
	default:
		return nil, &DocumentError{Title: title, Kind: ErrKindUnsupportedFiletype, Detail: string(filetype)}
	}

	words := text.Tokenize(extracted)
	if len(words) == 0 {
		return nil, &DocumentError{Title: title, Kind: ErrKindEmptyWordList}
	}

	annotated := make([]domain.AnnotatedWord, len(words))
	for i, w := range words {
		aw := domain.AnnotatedWord{Word: w.Text, ByteOffset: w.ByteOffset}
		if len(spans) > 0 {
			aw.Tags = extract.TagsAt(spans, w.ByteOffset, w.ByteOffset+len(w.Text))
		}
		annotated[i] = aw
	}

	for k, v := range f.Fields {
		fields[k] = v
	}

	url := f.URL
	if url == "" {
		url = cfg.Input.URLPrefix
	}

	return &IntermediateEntry{
		Title:      title,
		URL:        url,
		Fields:     fields,
		Contents:   annotated,
		SourceText: extracted,
	}, nil
}

func inferFiletype(source domain.DataSource) domain.Filetype {
	if source.Kind != domain.SourceFile && source.Kind != domain.SourceURL {
		return domain.FiletypePlainText
	}
	switch strings.ToLower(filepath.Ext(source.Value)) {
	case ".html", ".htm":
		return domain.FiletypeHTML
	case ".md", ".markdown":
		return domain.FiletypeMarkdown
	case ".srt":
		return domain.FiletypeSRTSubtitle
	default:
		return domain.FiletypePlainText
	}
}

// ToEntries freezes IntermediateEntry values into domain.Entry values in
// order: the resulting slice index becomes each entry's stable EntryIndex.
func ToEntries(entries []IntermediateEntry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	for i, e := range entries {
		out[i] = domain.Entry{
			Title:      e.Title,
			URL:        e.URL,
			Fields:     e.Fields,
			Contents:   e.Contents,
			SourceText: e.SourceText,
		}
	}
	return out
}
