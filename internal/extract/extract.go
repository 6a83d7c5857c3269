// Package extract turns a document's raw contents into the flattened text
// Component A tokenizes, plus tag spans recording which HTML/Markdown
// element each byte range descended from (used for importance weighting).
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// ErrSelectorNotPresent is returned when a configured CSS selector matches
// no nodes in the document.
var ErrSelectorNotPresent = errors.New("html selector not present in document")

// TagSpan records that the text in [Start, End) of the extracted string
// descended from an HTML element named Tag.
type TagSpan struct {
	Start int
	End   int
	Tag   string
}

// PlainText returns source unchanged; the caller still runs it through
// text.Tokenize directly.
func PlainText(source string) string {
	return source
}

// HTML extracts visible text from source, optionally scoped to a CSS
// selector, and returns the flattened text plus the tag spans within it.
func HTML(source, selector string) (string, []TagSpan, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return "", nil, fmt.Errorf("parse html: %w", err)
	}

	selection := doc.Selection
	if selector != "" {
		selection = doc.Find(selector)
		if selection.Length() == 0 {
			return "", nil, ErrSelectorNotPresent
		}
	}

	var sb strings.Builder
	var spans []TagSpan
	selection.Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n, &sb, &spans)
		}
	})

	return sb.String(), spans, nil
}

// Markdown renders source as HTML via goldmark, then reuses HTML
// extraction so tag-based importance weighting (e.g. headings) works
// identically for Markdown and HTML sources.
func Markdown(source, selector string) (string, []TagSpan, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", nil, fmt.Errorf("render markdown: %w", err)
	}
	return HTML(buf.String(), selector)
}

var (
	srtSequenceRe = regexp.MustCompile(`^\d+$`)
	srtTimecodeRe = regexp.MustCompile(`-->`)
)

// SRT concatenates SubRip subtitle caption lines, skipping sequence
// numbers and timestamp lines, into a single space-joined text.
func SRT(source string) string {
	var sb strings.Builder
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || srtSequenceRe.MatchString(trimmed) || srtTimecodeRe.MatchString(trimmed) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(trimmed)
	}
	return sb.String()
}

func walk(n *html.Node, sb *strings.Builder, spans *[]TagSpan) {
	switch n.Type {
	case html.TextNode:
		text := n.Data
		if strings.TrimSpace(text) == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		start := sb.Len()
		sb.WriteString(text)
		end := sb.Len()
		if tag := nearestElementTag(n); tag != "" {
			*spans = append(*spans, TagSpan{Start: start, End: end, Tag: tag})
		}

	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, sb, spans)
		}

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, sb, spans)
		}
	}
}

func nearestElementTag(n *html.Node) string {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p.Data
		}
	}
	return ""
}

// TagsAt returns every tag whose span contains the byte offset start; end
// is not checked against the span.
func TagsAt(spans []TagSpan, start, end int) []string {
	var tags []string
	for _, s := range spans {
		if start >= s.Start && start < s.End {
			tags = append(tags, s.Tag)
		}
	}
	return tags
}
