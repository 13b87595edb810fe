// Package number recognizes maximal digit runs, including thin
// separators embedded between digits and an optional leading currency
// marker.
package number

import "github.com/khmer-segmenter/internal/scan"

// Bytes returns the byte length of the maximal digit run starting at i, or
// 0 if the code point at i is not a digit. A run may contain at most one
// of ',', '.', ' ' between any two digits, and only when that separator is
// immediately followed by another digit.
func Bytes(text []byte, n, i int) int {
	cp, size := scan.Decode(text, i)
	if !scan.IsDigit(cp) {
		return 0
	}

	pos := i + size
	for pos < n {
		c, clen := scan.Decode(text, pos)
		if scan.IsDigit(c) {
			pos += clen
			continue
		}
		if c == ',' || c == '.' || c == ' ' {
			if pos+clen < n {
				next, nlen := scan.Decode(text, pos+clen)
				if scan.IsDigit(next) {
					pos += clen + nlen
					continue
				}
			}
		}
		break
	}

	return pos - i
}

// CurrencyPrefixBytes returns the byte length of a currency-led numeric
// run starting at i: the currency symbol itself plus the digit run that
// immediately follows it. Callers must already know cp at i is a currency
// marker and that the following code point is a digit.
func CurrencyPrefixBytes(text []byte, n, i, currencyLen int) int {
	return currencyLen + Bytes(text, n, i+currencyLen)
}
