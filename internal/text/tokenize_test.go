package text

import (
	"reflect"
	"testing"
)

func TestTokenize_SplitsOnWhitespace(t *testing.T) {
	words := Tokenize("The quick brown fox")
	got := make([]string, len(words))
	for i, w := range words {
		got[i] = w.Text
	}
	want := []string{"the", "quick", "brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_RecordsByteOffsets(t *testing.T) {
	words := Tokenize("hi there")
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].ByteOffset != 0 {
		t.Errorf("words[0].ByteOffset = %d, want 0", words[0].ByteOffset)
	}
	if words[1].ByteOffset != 3 {
		t.Errorf("words[1].ByteOffset = %d, want 3", words[1].ByteOffset)
	}
}

func TestTokenize_StripsSurroundingPunctuationOnly(t *testing.T) {
	words := Tokenize("\"don't\", she said.")
	got := make([]string, len(words))
	for i, w := range words {
		got[i] = w.Text
	}
	want := []string{"don't", "she", "said"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_OffsetAccountsForTrimmedLeadingPunctuation(t *testing.T) {
	words := Tokenize(`"hello" world`)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].Text != "hello" || words[0].ByteOffset != 1 {
		t.Errorf("words[0] = %+v, want {hello 1}", words[0])
	}
}

func TestTokenize_PureWhitespaceOrPunctuationYieldsNoWords(t *testing.T) {
	words := Tokenize("   ...   ---   ")
	if len(words) != 0 {
		t.Errorf("Tokenize() = %v, want empty", words)
	}
}

func TestTokenize_KeepsShortWords(t *testing.T) {
	words := Tokenize("a an I")
	if len(words) != 3 {
		t.Errorf("got %d words, want 3 (no min-length filtering)", len(words))
	}
}

func TestTrimPunctuation(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello", "hello"},
		{"\"hello\"", "hello"},
		{"...hello!!!", "hello"},
		{"don't", "don't"},
		{"...", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := TrimPunctuation(c.in); got != c.want {
			t.Errorf("TrimPunctuation(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
