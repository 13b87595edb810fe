package scan

import "testing"

func TestDecodeASCII(t *testing.T) {
	cp, size := Decode([]byte("abc"), 0)
	if cp != 'a' || size != 1 {
		t.Fatalf("got (%q, %d)", cp, size)
	}
}

func TestDecodeKhmer(t *testing.T) {
	text := []byte("ក")
	cp, size := Decode(text, 0)
	if cp != 0x1780 || size != 3 {
		t.Fatalf("got (%U, %d)", cp, size)
	}
}

func TestDecodeInvalidLeadByte(t *testing.T) {
	cp, size := Decode([]byte{0xFF, 'a'}, 0)
	if cp != 0 || size != 1 {
		t.Fatalf("got (%d, %d), want (0, 1)", cp, size)
	}
}

func TestClassification(t *testing.T) {
	cases := []struct {
		cp    rune
		class Class
	}{
		{0x1780, KhmerLetter},
		{0x17E5, KhmerDigit},
		{'7', AsciiDigit},
		{'$', Currency},
		{0x17DB, Currency},
		{0x17D4, Separator},
		{' ', Separator},
		{'A', Other},
	}
	for _, c := range cases {
		if got := ClassOf(c.cp); got != c.class {
			t.Errorf("ClassOf(%U) = %v, want %v", c.cp, got, c.class)
		}
	}
}

func TestIsValidSingleBase(t *testing.T) {
	if !IsValidSingleBase(0x1780) {
		t.Error("expected 0x1780 to be a valid single base")
	}
	if IsValidSingleBase(0x17B6) {
		t.Error("0x17B6 is a dependent vowel, not a base")
	}
}

func TestIsConsonantNarrowerThanBase(t *testing.T) {
	if !IsConsonant(0x17A2) {
		t.Error("0x17A2 should be a coeng-eligible consonant")
	}
	if IsConsonant(0x17A6) {
		t.Error("0x17A6 is an independent vowel, not coeng-eligible")
	}
}
