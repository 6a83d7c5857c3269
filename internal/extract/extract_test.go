package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestHTML_ExtractsTextAndTags(t *testing.T) {
	text, spans, err := HTML(`<html><body><h1>Title Here</h1><p>Body text.</p></body></html>`, "")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(text, "Title Here") || !strings.Contains(text, "Body text.") {
		t.Errorf("HTML() text = %q, missing expected content", text)
	}

	var foundH1 bool
	for _, s := range spans {
		if s.Tag == "h1" {
			foundH1 = true
		}
	}
	if !foundH1 {
		t.Errorf("HTML() spans = %+v, want an h1 span", spans)
	}
}

func TestHTML_SelectorScopesExtraction(t *testing.T) {
	text, _, err := HTML(`<html><body><nav>Skip me</nav><article>Keep me</article></body></html>`, "article")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if strings.Contains(text, "Skip me") {
		t.Errorf("HTML() text = %q, should not contain nav content", text)
	}
	if !strings.Contains(text, "Keep me") {
		t.Errorf("HTML() text = %q, should contain article content", text)
	}
}

func TestHTML_MissingSelectorReturnsError(t *testing.T) {
	_, _, err := HTML(`<html><body><p>Hi</p></body></html>`, ".article")
	if !errors.Is(err, ErrSelectorNotPresent) {
		t.Errorf("HTML() error = %v, want ErrSelectorNotPresent", err)
	}
}

func TestMarkdown_RendersThenExtracts(t *testing.T) {
	text, spans, err := Markdown("# Heading\n\nSome body text.", "")
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if !strings.Contains(text, "Heading") || !strings.Contains(text, "Some body text.") {
		t.Errorf("Markdown() text = %q", text)
	}
	var foundHeading bool
	for _, s := range spans {
		if s.Tag == "h1" {
			foundHeading = true
		}
	}
	if !foundHeading {
		t.Errorf("Markdown() spans = %+v, want an h1 span", spans)
	}
}

func TestSRT_StripsSequenceAndTimecodeLines(t *testing.T) {
	src := "1\n00:00:01,000 --> 00:00:02,000\nHello there.\n\n2\n00:00:03,000 --> 00:00:04,000\nGeneral Kenobi.\n"
	got := SRT(src)
	want := "Hello there. General Kenobi."
	if got != want {
		t.Errorf("SRT() = %q, want %q", got, want)
	}
}

func TestTagsAt(t *testing.T) {
	spans := []TagSpan{{Start: 0, End: 5, Tag: "h1"}, {Start: 6, End: 10, Tag: "p"}}
	tags := TagsAt(spans, 2, 4)
	if len(tags) != 1 || tags[0] != "h1" {
		t.Errorf("TagsAt() = %v, want [h1]", tags)
	}
}
