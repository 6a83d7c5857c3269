package build

import (
	"testing"

	"github.com/jameslittle/stork/internal/domain"
)

type stubReader struct{}

func (stubReader) Read(source domain.DataSource, _ string) (string, error) {
	return source.Value, nil
}

func missingSelectorFile() domain.FileConfig {
	return domain.FileConfig{
		Source:               domain.Contents(""),
		Title:                "Missing Selector",
		Filetype:              domain.FiletypeHTML,
		HTMLSelectorOverride: ".article",
	}
}

func emptyContentsFile() domain.FileConfig {
	return domain.FileConfig{
		Source:   domain.Contents(""),
		Title:    "Empty Contents",
		Filetype: domain.FiletypePlainText,
	}
}

func validFile() domain.FileConfig {
	return domain.FileConfig{
		Source:   domain.Contents("This is contents"),
		Title:    "Successful File",
		Filetype: domain.FiletypePlainText,
	}
}

func TestBuild_MissingHTMLSelectorFailsGracefully(t *testing.T) {
	cfg := domain.Config{Input: domain.InputConfig{Files: []domain.FileConfig{missingSelectorFile(), validFile()}}}

	idx, docErrs, err := BuildWithReader(cfg, stubReader{})
	if err != nil {
		t.Fatalf("BuildWithReader() error = %v", err)
	}
	if len(docErrs) != 1 {
		t.Fatalf("got %d document errors, want 1: %+v", len(docErrs), docErrs)
	}
	want := "Error: HTML selector `.article` is not present in the file while indexing `Missing Selector`"
	if got := docErrs[0].Error(); got != want {
		t.Errorf("docErrs[0].Error() = %q, want %q", got, want)
	}
	if len(idx.Entries) != 1 {
		t.Errorf("got %d entries, want 1", len(idx.Entries))
	}
}

func TestBuild_EmptyContentsFailsGracefully(t *testing.T) {
	cfg := domain.Config{Input: domain.InputConfig{Files: []domain.FileConfig{emptyContentsFile(), validFile()}}}

	_, docErrs, err := BuildWithReader(cfg, stubReader{})
	if err != nil {
		t.Fatalf("BuildWithReader() error = %v", err)
	}
	if len(docErrs) != 1 {
		t.Fatalf("got %d document errors, want 1: %+v", len(docErrs), docErrs)
	}
	want := "Error: No words in word list while indexing `Empty Contents`"
	if got := docErrs[0].Error(); got != want {
		t.Errorf("docErrs[0].Error() = %q, want %q", got, want)
	}
}

func TestBuild_AllInvalidFilesReturnsNoValidFiles(t *testing.T) {
	cfg := domain.Config{Input: domain.InputConfig{Files: []domain.FileConfig{emptyContentsFile(), missingSelectorFile()}}}

	_, _, err := BuildWithReader(cfg, stubReader{})
	if err != ErrNoValidFiles {
		t.Errorf("BuildWithReader() error = %v, want ErrNoValidFiles", err)
	}
}

func TestBuild_FailingFileDoesNotHaltIndexing(t *testing.T) {
	cfg := domain.Config{Input: domain.InputConfig{Files: []domain.FileConfig{missingSelectorFile(), validFile()}}}

	idx, docErrs, err := BuildWithReader(cfg, stubReader{})
	if err != nil {
		t.Fatalf("BuildWithReader() error = %v", err)
	}
	if len(docErrs) != 1 {
		t.Errorf("got %d document errors, want 1", len(docErrs))
	}
	if len(idx.Entries) != 1 {
		t.Errorf("got %d entries, want 1", len(idx.Entries))
	}
}

func TestBuild_MixedFailureKindsAllCollected(t *testing.T) {
	cfg := domain.Config{Input: domain.InputConfig{Files: []domain.FileConfig{
		missingSelectorFile(),
		emptyContentsFile(),
		validFile(),
		{Source: domain.Contents("x"), Title: "Bad Type", Filetype: "NotARealType"},
	}}}

	idx, docErrs, err := BuildWithReader(cfg, stubReader{})
	if err != nil {
		t.Fatalf("BuildWithReader() error = %v", err)
	}
	if len(docErrs) != 3 {
		t.Fatalf("got %d document errors, want 3: %+v", len(docErrs), docErrs)
	}
	if len(idx.Entries) != 1 {
		t.Errorf("got %d entries, want 1", len(idx.Entries))
	}

	kinds := map[DocumentErrorKind]bool{}
	for _, e := range docErrs {
		kinds[e.Kind] = true
	}
	for _, want := range []DocumentErrorKind{ErrKindHTMLSelectorNotPresent, ErrKindEmptyWordList, ErrKindUnsupportedFiletype} {
		if !kinds[want] {
			t.Errorf("missing expected error kind %v among %+v", want, docErrs)
		}
	}
}

func TestBuild_ContainersIndexEveryWord(t *testing.T) {
	cfg := domain.Config{
		Input: domain.InputConfig{
			Files: []domain.FileConfig{
				{Source: domain.Contents("the quick brown fox"), Title: "Doc", Filetype: domain.FiletypePlainText},
			},
			MinimumIndexedSubstringLength: 3,
		},
	}

	idx, docErrs, err := BuildWithReader(cfg, stubReader{})
	if err != nil {
		t.Fatalf("BuildWithReader() error = %v", err)
	}
	if len(docErrs) != 0 {
		t.Fatalf("unexpected document errors: %+v", docErrs)
	}

	for _, word := range []string{"the", "quick", "brown", "fox"} {
		c, ok := idx.Containers[word]
		if !ok {
			t.Fatalf("missing container for %q", word)
		}
		if _, ok := c.Results[0]; !ok {
			t.Errorf("container %q has no result for entry 0", word)
		}
	}
}

func TestBuild_PrefixAliasesResolveToFullWord(t *testing.T) {
	cfg := domain.Config{
		Input: domain.InputConfig{
			Files: []domain.FileConfig{
				{Source: domain.Contents("quick"), Title: "Doc", Filetype: domain.FiletypePlainText},
			},
			MinimumIndexedSubstringLength: 3,
		},
	}

	idx, _, err := BuildWithReader(cfg, stubReader{})
	if err != nil {
		t.Fatalf("BuildWithReader() error = %v", err)
	}

	prefixContainer, ok := idx.Containers["qui"]
	if !ok {
		t.Fatal("missing prefix container \"qui\"")
	}
	sim, ok := prefixContainer.Aliases["quick"]
	if !ok {
		t.Fatal("prefix container \"qui\" has no alias to \"quick\"")
	}
	if sim < prefixFloor || sim > 1.0 {
		t.Errorf("alias similarity = %v, want within [%v, 1.0]", sim, prefixFloor)
	}
	if _, ok := idx.Containers["quick"]; !ok {
		t.Error("invariant violated: alias target container \"quick\" does not exist")
	}
}

func TestBuild_StemmingAddsAlias(t *testing.T) {
	cfg := domain.Config{
		Input: domain.InputConfig{
			Files: []domain.FileConfig{
				{Source: domain.Contents("running runs"), Title: "Doc", Filetype: domain.FiletypePlainText},
			},
			Stemming:                      domain.Stemming{Mode: domain.StemmingLanguage, Language: "english"},
			MinimumIndexedSubstringLength: 3,
		},
	}

	idx, _, err := BuildWithReader(cfg, stubReader{})
	if err != nil {
		t.Fatalf("BuildWithReader() error = %v", err)
	}

	stemContainer, ok := idx.Containers["run"]
	if !ok {
		t.Fatal("missing stem container \"run\"")
	}
	if len(stemContainer.Aliases) == 0 {
		t.Error("expected stem container to have aliases to \"running\"/\"runs\"")
	}
}
