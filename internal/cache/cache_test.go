package cache

import (
	"errors"
	"testing"

	"github.com/jameslittle/stork/internal/codec"
	"github.com/jameslittle/stork/internal/domain"
)

func encodedSampleIndex(t *testing.T) []byte {
	t.Helper()
	idx := &domain.Index{
		Entries: []domain.Entry{{Title: "Doc", URL: "/doc", SourceText: "hello"}},
		Containers: map[string]*domain.Container{
			"hello": {Results: map[int]*domain.SearchResult{0: {Score: 200}}, Aliases: map[string]float64{}},
		},
		Config: domain.PassthroughConfig{DisplayedResultsCount: 10},
	}
	data, err := codec.Encode(idx)
	if err != nil {
		t.Fatalf("codec.Encode() error = %v", err)
	}
	return data
}

func TestCache_GetBeforeParseReturnsNotInCache(t *testing.T) {
	c := New()
	if _, err := c.Get("a"); !errors.Is(err, ErrIndexNotInCache) {
		t.Errorf("Get() error = %v, want ErrIndexNotInCache", err)
	}
}

func TestCache_ParseAndCacheThenGet(t *testing.T) {
	c := New()
	data := encodedSampleIndex(t)

	idx, err := c.ParseAndCache(data, "a")
	if err != nil {
		t.Fatalf("ParseAndCache() error = %v", err)
	}
	if len(idx.Entries) != 1 {
		t.Fatalf("parsed index entries = %+v", idx.Entries)
	}

	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != idx {
		t.Error("Get() returned a different *domain.Index than ParseAndCache returned")
	}
}

func TestCache_ParseAndCacheReplacesExistingName(t *testing.T) {
	c := New()
	data := encodedSampleIndex(t)

	if _, err := c.ParseAndCache(data, "a"); err != nil {
		t.Fatalf("ParseAndCache() error = %v", err)
	}
	if _, err := c.ParseAndCache(data, "a"); err != nil {
		t.Fatalf("second ParseAndCache() error = %v", err)
	}
	if _, err := c.Get("a"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
}

func TestCache_Evict(t *testing.T) {
	c := New()
	data := encodedSampleIndex(t)
	if _, err := c.ParseAndCache(data, "a"); err != nil {
		t.Fatalf("ParseAndCache() error = %v", err)
	}

	c.Evict("a")
	if _, err := c.Get("a"); !errors.Is(err, ErrIndexNotInCache) {
		t.Errorf("Get() after Evict error = %v, want ErrIndexNotInCache", err)
	}
}

func TestCache_InvalidDataReturnsError(t *testing.T) {
	c := New()
	if _, err := c.ParseAndCache([]byte("not a valid index"), "a"); err == nil {
		t.Error("ParseAndCache() expected error for invalid data")
	}
}

func TestPackageLevelDefaultCache(t *testing.T) {
	data := encodedSampleIndex(t)
	if _, err := ParseAndCache(data, "pkg-level-test"); err != nil {
		t.Fatalf("ParseAndCache() error = %v", err)
	}
	defer Default.Evict("pkg-level-test")

	if _, err := Get("pkg-level-test"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
}
