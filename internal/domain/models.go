// Package domain contains the core data types shared across the index
// builder and the query engine. These are pure data structures with no
// behavior, so both sides of the build/query split can depend on them
// without pulling in tokenization, extraction, or scoring logic.
package domain

// TitleBoost controls how much extra weight a title-derived excerpt gets
// over a body excerpt when computing importance.
type TitleBoost string

const (
	TitleBoostMinimal    TitleBoost = "Minimal"
	TitleBoostModerate   TitleBoost = "Moderate"
	TitleBoostLarge      TitleBoost = "Large"
	TitleBoostRidiculous TitleBoost = "Ridiculous"
)

// Multiplier returns the title-boost multiplier for this setting, applied
// only to title-derived excerpts. Unrecognized values behave as Minimal.
func (t TitleBoost) Multiplier() float64 {
	switch t {
	case TitleBoostModerate:
		return 1.5
	case TitleBoostLarge:
		return 2
	case TitleBoostRidiculous:
		return 3
	default:
		return 1
	}
}

// FrontmatterHandling controls how a leading YAML frontmatter block is
// treated during extraction.
type FrontmatterHandling string

const (
	FrontmatterIgnore FrontmatterHandling = "Ignore"
	FrontmatterOmit   FrontmatterHandling = "Omit"
	FrontmatterParse  FrontmatterHandling = "Parse"
)

// Filetype identifies which extractor should run over a source's contents.
type Filetype string

const (
	FiletypePlainText   Filetype = "PlainText"
	FiletypeHTML        Filetype = "HTML"
	FiletypeMarkdown    Filetype = "Markdown"
	FiletypeSRTSubtitle Filetype = "SRTSubtitle"
)

// StemmingMode selects whether and how words are stemmed.
type StemmingMode string

const (
	StemmingNone     StemmingMode = "None"
	StemmingLanguage StemmingMode = "Language"
)

// Stemming configures Component A's stemming pass. Language is only
// meaningful when Mode is StemmingLanguage.
type Stemming struct {
	Mode     StemmingMode
	Language string
}

// SourceKind identifies where a File's contents come from.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceURL
	SourceContents
)

// DataSource names where a configured document's bytes are read from: a
// local file, a remote URL, or inline contents.
type DataSource struct {
	Kind  SourceKind
	Value string
}

// File constructs a file-backed DataSource.
func File(path string) DataSource { return DataSource{Kind: SourceFile, Value: path} }

// URL constructs a URL-backed DataSource.
func URL(u string) DataSource { return DataSource{Kind: SourceURL, Value: u} }

// Contents constructs an inline-contents DataSource.
func Contents(s string) DataSource { return DataSource{Kind: SourceContents, Value: s} }

// FileConfig is one configured document entry from [input].files.
type FileConfig struct {
	Source               DataSource
	Title                string
	URL                  string
	Filetype             Filetype // empty means "infer from extension"
	HTMLSelectorOverride string
	Fields               map[string]string
}

// InputConfig is the [input] section of the build configuration.
type InputConfig struct {
	Files                         []FileConfig
	BaseDirectory                 string
	URLPrefix                     string
	TitleBoost                    TitleBoost
	Stemming                      Stemming
	HTMLSelector                  string
	FrontmatterHandling           FrontmatterHandling
	MinimumIndexedSubstringLength int
	FieldWeights                  map[string]float64
}

// OutputConfig is the [output] section of the build configuration.
type OutputConfig struct {
	Filename              string
	Debug                 bool
	ExcerptBuffer         int
	ExcerptsPerResult     int
	DisplayedResultsCount int
}

// Config is the full, validated build configuration.
type Config struct {
	Input  InputConfig
	Output OutputConfig
}

// PassthroughConfig is the subset of the build config needed at query time.
// It is the only configuration surface that survives serialization into
// the index artifact.
type PassthroughConfig struct {
	URLPrefix             string
	TitleBoost            TitleBoost
	ExcerptBuffer         int
	ExcerptsPerResult     int
	DisplayedResultsCount int
}

// AnnotatedWord is a normalized word plus the byte offset of its first
// character in the source document and any tag metadata (e.g. the HTML
// heading level it descended from) used for importance weighting.
type AnnotatedWord struct {
	Word       string
	ByteOffset int
	Tags       []string
}

// Entry is a single indexed document, frozen at build time. Its position in
// Index.Entries is its EntryIndex, stable for the index's lifetime.
type Entry struct {
	Title string
	URL   string

	// Fields holds document-level metadata (e.g. frontmatter fields),
	// distinct from the per-word Tags on AnnotatedWord / Excerpt.
	Fields map[string]string

	// Contents is the tokenized word list; word_index into it is what
	// Excerpt.WordIndex refers to.
	Contents []AnnotatedWord

	// SourceText is the extracted text Contents was tokenized from. Excerpt
	// windows are sliced out of this string, not the original file bytes,
	// so HTML/Markdown extraction and SRT caption concatenation all have a
	// single coherent text to index byte offsets against.
	SourceText string
}

// Excerpt is a reference to a single word hit: which entry, which word
// position, the byte offset of that word, any tag metadata the word carried,
// and the importance weight computed for it at build time.
type Excerpt struct {
	EntryIndex int
	WordIndex  int
	ByteOffset int
	Tags       []string
	Importance float64
}

// SearchResult is the value held per entry inside a Container: every
// Excerpt that entry contributed under that container's term, plus a
// coarse 0-255 relevance score used only as a secondary sort key.
type SearchResult struct {
	Excerpts []Excerpt
	Score    uint8
}

// Container is the inverted-index value for one term: every entry that
// contains it, plus soft aliases to related terms (prefixes, stems).
type Container struct {
	// Results maps EntryIndex to that entry's hits under this term.
	Results map[int]*SearchResult

	// Aliases maps an alias term to a similarity score in (0,1]. Lookup is
	// one-way: containers[t].Aliases[alias] = sim means a query for t
	// should also consider containers[alias], weighted by sim. Resolution
	// is a single hop only, no transitive alias following.
	Aliases map[string]float64
}

// NewContainer returns an empty, ready-to-populate Container.
func NewContainer() *Container {
	return &Container{
		Results: make(map[int]*SearchResult),
		Aliases: make(map[string]float64),
	}
}

// Index is the root artifact: every entry, the full inverted container map,
// and the config subset needed at query time. Once built and serialized, an
// Index is immutable; the query engine only ever holds shared read-only
// references to one.
type Index struct {
	Entries    []Entry
	Containers map[string]*Container
	Config     PassthroughConfig
}
