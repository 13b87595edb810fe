package normalize

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestEmptyInput(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestIdempotent(t *testing.T) {
	samples := []string{
		"ក្រុមហ៊ុននេះ",
		"សួស្តីតbaz", // arbitrary mixed text
		"1,000,000",
		"្ឍ", // coeng-da
		"្ដ្រ",
		"្ឍ្រ", // coeng-da then coeng-ro: fold and reorder compete over the same window
	}
	for _, s := range samples {
		once := Normalize([]byte(s))
		twice := Normalize(once)
		if !bytes.Equal(once, twice) {
			t.Errorf("not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}

func TestCoengDaBecomesCoengTa(t *testing.T) {
	in := []byte("ដ្ឍា")
	out := Normalize(in)
	if bytes.Contains(out, []byte("្ឍ")) {
		t.Errorf("expected coeng-da to be rewritten, got %q", out)
	}
	if !bytes.Contains(out, []byte("្ត")) {
		t.Errorf("expected coeng-ta present, got %q", out)
	}
}

func TestCoengRoReorderedFirst(t *testing.T) {
	// COENG + X + COENG + RO -> COENG + RO + COENG + X
	x := rune(0x1780)
	in := []byte(string(rune(0x17D2)) + string(x) + string(rune(0x17D2)) + string(rune(0x179A)))
	out := Normalize(in)
	want := []byte(string(rune(0x17D2)) + string(rune(0x179A)) + string(rune(0x17D2)) + string(x))
	if !bytes.Equal(out, want) {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestNoSplitCodePoint(t *testing.T) {
	in := []byte("ក្រុមហ៊ុននេះ abc123 $50.00")
	out := Normalize(in)
	if !utf8.Valid(out) {
		t.Errorf("output is not valid UTF-8: %q", out)
	}
}
