package number

import "testing"

func TestPlainRun(t *testing.T) {
	text := []byte("12345abc")
	if got := Bytes(text, len(text), 0); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestThinSeparators(t *testing.T) {
	text := []byte("1,000,000 dollars")
	if got := Bytes(text, len(text), 0); got != len("1,000,000") {
		t.Fatalf("got %d, want %d", got, len("1,000,000"))
	}
}

func TestTrailingSeparatorNotConsumed(t *testing.T) {
	text := []byte("100, 200")
	// "100," then a space - the comma is immediately followed by a space,
	// not a digit, so the run stops at "100".
	if got := Bytes(text, len(text), 0); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestKhmerDigits(t *testing.T) {
	text := []byte("២០២៤")
	if got := Bytes(text, len(text), 0); got != len(text) {
		t.Fatalf("got %d, want %d", got, len(text))
	}
}

func TestNotADigit(t *testing.T) {
	text := []byte("abc")
	if got := Bytes(text, len(text), 0); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestCurrencyPrefixBytes(t *testing.T) {
	text := []byte("$50.00")
	got := CurrencyPrefixBytes(text, len(text), 0, 1)
	if got != len(text) {
		t.Fatalf("got %d, want %d", got, len(text))
	}
}
