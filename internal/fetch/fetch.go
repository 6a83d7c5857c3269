// Package fetch reads a configured document's raw bytes from wherever its
// DataSource points: a local file, a URL, or inline contents. It does no
// extraction or tokenization of its own.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jameslittle/stork/internal/domain"
)

// Reader abstracts source resolution for testability.
type Reader interface {
	Read(source domain.DataSource, baseDirectory string) (string, error)
}

// HTTPReader is the production Reader: local files relative to
// baseDirectory, and HTTP(S) URLs over a bounded-timeout client.
type HTTPReader struct {
	client *http.Client
}

// NewHTTPReader creates an HTTPReader with a 30-second request timeout.
func NewHTTPReader() *HTTPReader {
	return &HTTPReader{client: &http.Client{Timeout: 30 * time.Second}}
}

// Read resolves source into its raw string contents.
func (f *HTTPReader) Read(source domain.DataSource, baseDirectory string) (string, error) {
	switch source.Kind {
	case domain.SourceContents:
		return source.Value, nil

	case domain.SourceFile:
		path := source.Value
		if baseDirectory != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDirectory, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file %s: %w", path, err)
		}
		return string(data), nil

	case domain.SourceURL:
		req, err := http.NewRequest(http.MethodGet, source.Value, nil)
		if err != nil {
			return "", fmt.Errorf("build request for %s: %w", source.Value, err)
		}
		req.Header.Set("User-Agent", "stork-index-builder/1.0")

		resp, err := f.client.Do(req)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", source.Value, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: http %d: %s", source.Value, resp.StatusCode, resp.Status)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("read body of %s: %w", source.Value, err)
		}
		return string(body), nil

	default:
		return "", fmt.Errorf("unknown data source kind %v", source.Kind)
	}
}
