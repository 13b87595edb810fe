// Package normalize canonicalizes raw Khmer text before it reaches the
// Viterbi decoder, so the decoder always sees stable cluster forms. The
// pass is deterministic and idempotent: Normalize(Normalize(x)) == Normalize(x).
package normalize

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/khmer-segmenter/internal/scan"
)

const (
	coeng   = 0x17D2
	coengRo = 0x179A // COENG + RO, the subscript "r" that governs cluster ordering
	coengTa = 0x178F
	coengDa = 0x178D
)

// Normalize applies canonical Unicode normalization (NFC), folds
// halfwidth/fullwidth variants to their standard forms, and reorders or
// substitutes a small set of Khmer-specific legacy sequences. It never
// reads raw as anything but a byte slice and never splits a code point;
// the returned slice is always valid UTF-8.
func Normalize(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	b := norm.NFC.Bytes(raw)
	b = foldWidth(b)
	b = canonicalizeKhmer(b)
	return b
}

func foldWidth(b []byte) []byte {
	return width.Fold.Bytes(b)
}

// window holds up to 4 decoded code points starting at some offset, used
// to match the fixed-length Khmer patterns below without re-decoding.
type window struct {
	cp   [4]rune
	size [4]int
	n    int // number of code points actually decoded (<= 4)
}

func lookahead(b []byte, i int) window {
	var w window
	pos := i
	for w.n < 4 && pos < len(b) {
		cp, size := scan.Decode(b, pos)
		w.cp[w.n] = cp
		w.size[w.n] = size
		w.n++
		pos += size
	}
	return w
}

func (w window) byteLen(upTo int) int {
	total := 0
	for i := 0; i < upTo; i++ {
		total += w.size[i]
	}
	return total
}

// canonicalizeKhmer applies canonicalizePass repeatedly until it reaches a
// fixed point. One pass is not enough: folding COENG+DA to COENG+TA can
// consume the two code points a later window would have needed to see for
// the COENG-RO reorder (and vice versa), so a single left-to-right sweep
// can leave behind a sequence that a second call to Normalize would still
// change. Each rewrite only ever moves a cluster closer to its canonical
// form (RO sorted first, DA folded to TA), so this converges in a small
// number of passes; the iteration count is capped as a safety margin
// against an unforeseen interaction cycling forever.
func canonicalizeKhmer(b []byte) []byte {
	for i := 0; i < len(b)+4; i++ {
		next := canonicalizePass(b)
		if bytes.Equal(next, b) {
			return next
		}
		b = next
	}
	return b
}

// canonicalizePass makes one forward pass:
//  1. COENG + DA (U+178D) is rewritten to COENG + TA (U+178F): these are
//     historically interchangeable subscript spellings in badly-typed
//     Khmer text, and picking one canonical form lets the dictionary and
//     decoder treat them as identical without doubling every lookup.
//  2. A "COENG + X + COENG + RO" sequence (X != RO) is reordered to
//     "COENG + RO + COENG + X" so that a subscript RO always sorts first
//     within a cluster, matching how it is typically keyed and matching
//     dictionary entries that were generated under the same rule.
func canonicalizePass(b []byte) []byte {
	n := len(b)
	out := make([]byte, 0, n)
	i := 0
	for i < n {
		w := lookahead(b, i)

		if w.n >= 2 && scan.IsCoeng(w.cp[0]) && w.cp[1] == coengDa {
			out = append(out, b[i:i+w.size[0]]...)
			out = appendRune(out, coengTa)
			i += w.byteLen(2)
			continue
		}

		if w.n == 4 && scan.IsCoeng(w.cp[0]) && w.cp[1] != coengRo &&
			scan.IsCoeng(w.cp[2]) && w.cp[3] == coengRo {
			firstHalf := w.byteLen(2)
			out = append(out, b[i+firstHalf:i+w.byteLen(4)]...)
			out = append(out, b[i:i+firstHalf]...)
			i += w.byteLen(4)
			continue
		}

		out = append(out, b[i:i+w.size[0]]...)
		i += w.size[0]
	}
	return out
}

func appendRune(b []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(b, buf[:n]...)
}
