// Package frontmatter detects and strips a leading YAML frontmatter block
// delimited by "---" lines, as used by most static site generators.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Split looks for a leading "---\n...\n---" block in source. present
// reports whether a block was found at all, independent of whether it
// parsed successfully — callers distinguish "no frontmatter" from "bad
// frontmatter" using present and err together.
func Split(source string) (fields map[string]string, body string, present bool, err error) {
	if !strings.HasPrefix(source, delimiter) {
		return nil, source, false, nil
	}

	rest := strings.TrimPrefix(source[len(delimiter):], "\n")
	closeIdx := strings.Index(rest, "\n"+delimiter)
	if closeIdx < 0 {
		return nil, source, false, nil
	}

	raw := rest[:closeIdx]
	remainder := strings.TrimPrefix(rest[closeIdx+1+len(delimiter):], "\n")

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, source, true, fmt.Errorf("parse frontmatter: %w", err)
	}

	fields = make(map[string]string, len(decoded))
	for k, v := range decoded {
		fields[k] = fmt.Sprint(v)
	}

	return fields, remainder, true, nil
}
