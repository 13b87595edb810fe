// Package cluster computes the byte length of the maximal Khmer
// orthographic syllable starting at a given offset:
//
//	CLUSTER := BASE (COENG BASE)* SIGN*
//	BASE    := consonant | independent vowel   ; U+1780..U+17B3
//	COENG   := U+17D2
//	SIGN    := U+17B6..U+17D1 | U+17D3 | U+17DD
//
// A COENG only continues the cluster when the code point after it is a
// consonant (U+1780..U+17A2); independent vowels are never subscripted.
package cluster

import "github.com/khmer-segmenter/internal/scan"

// Bytes returns the byte length of the maximal cluster starting at i. If
// the code point at i is not a valid base, the cluster is just that one
// code point.
func Bytes(text []byte, n, i int) int {
	cp, size := scan.Decode(text, i)
	if !scan.IsValidSingleBase(cp) {
		return size
	}

	pos := i + size
	for pos < n {
		c, clen := scan.Decode(text, pos)

		if scan.IsCoeng(c) {
			if pos+clen < n {
				next, nlen := scan.Decode(text, pos+clen)
				if scan.IsConsonant(next) {
					pos += clen + nlen
					continue
				}
			}
			break
		}

		if scan.IsClusterSign(c) {
			pos += clen
			continue
		}

		break
	}

	return pos - i
}
