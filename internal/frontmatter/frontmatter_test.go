package frontmatter

import "testing"

func TestSplit_NoFrontmatter(t *testing.T) {
	fields, body, present, err := Split("just some text")
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if present {
		t.Error("present = true, want false")
	}
	if body != "just some text" {
		t.Errorf("body = %q, want unchanged source", body)
	}
	if fields != nil {
		t.Errorf("fields = %v, want nil", fields)
	}
}

func TestSplit_ParsesFrontmatterFields(t *testing.T) {
	src := "---\ntitle: My Post\nauthor: Jane\n---\nBody text here."
	fields, body, present, err := Split(src)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if !present {
		t.Fatal("present = false, want true")
	}
	if fields["title"] != "My Post" || fields["author"] != "Jane" {
		t.Errorf("fields = %v", fields)
	}
	if body != "Body text here." {
		t.Errorf("body = %q, want %q", body, "Body text here.")
	}
}

func TestSplit_UnterminatedBlockIsTreatedAsAbsent(t *testing.T) {
	src := "---\ntitle: No closing delimiter\nstill going"
	_, body, present, err := Split(src)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if present {
		t.Error("present = true, want false for unterminated block")
	}
	if body != src {
		t.Errorf("body = %q, want unchanged source", body)
	}
}

func TestSplit_InvalidYAMLReturnsError(t *testing.T) {
	src := "---\n: : : not valid yaml\n---\nBody"
	_, _, present, err := Split(src)
	if !present {
		t.Error("present = false, want true (a block was detected)")
	}
	if err == nil {
		t.Error("Split() error = nil, want a parse error")
	}
}
