package rules

import (
	"unicode/utf8"

	"github.com/khmer-segmenter/internal/scan"
)

// DefaultRules returns the rule pipeline the facade registers by default,
// adapted from the teacher's heuristics.go: snap stray invalid single
// consonants onto a neighbor, fold the two sign-merge patterns that the
// Viterbi decoder's cluster grammar cannot see across segment boundaries,
// coalesce runs of unknown segments, and finally drop bare single-space
// segments so the joined output matches the default separator convention
// (see SPEC_FULL.md's Open Question decision on S7).
func DefaultRules() []Rule {
	return []Rule{
		snapInvalidSingleConsonantsRule(),
		mergeSignSuffixRule(),
		mergeSignPrefixRule(),
		mergeConsecutiveUnknownsRule(),
		dropPureSeparatorsRule(),
	}
}

func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

func isSeparatorLike(s string) bool {
	if s == " " || s == "​" {
		return true
	}
	r, ok := firstRune(s)
	return ok && scan.IsSeparator(r)
}

func isInvalidSingleConsonant(s string, dict Dictionary) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := firstRune(s)
	// Restricted to the Khmer block: this rule repairs stray broken Khmer
	// consonants, not single unrecognized code points from other scripts
	// (those are left as their own unknown segment, spec.md §8 S2).
	return scan.IsKhmerLetter(r) && !scan.IsValidSingleBase(r) && !dict.Contains(s) && !scan.IsDigit(r) && !scan.IsSeparator(r)
}

// snapInvalidSingleConsonantsRule merges a stray single-code-point
// segment that is neither a valid standalone word, a digit, nor a
// separator into its preceding neighbor, unless that preceding segment is
// itself separator-like (in which case it is left as its own segment; it
// is never merged into the following segment).
func snapInvalidSingleConsonantsRule() Rule {
	return Rule{
		Name: "snap-invalid-single-consonants",
		Match: func(segs []Segment, i int, dict Dictionary) (int, Action) {
			j := i + 1
			if j >= len(segs) || !isInvalidSingleConsonant(segs[j], dict) {
				return 0, Keep
			}

			prevIsSep := isSeparatorLike(segs[i])
			nextIsSep := j+1 >= len(segs) || isSeparatorLike(segs[j+1])

			if prevIsSep && nextIsSep {
				return 0, Keep
			}
			if prevIsSep {
				return 0, Keep
			}
			return 2, Merge
		},
	}
}

// mergeSignSuffixRule folds a consonant followed by a bare tail sign
// (BANTOC U+17CB, KAKABAT U+17CE, AHSDA U+17CF, or the 3-code-point
// vowel sign I + TOANDAKHIAT U+17CD form) into the previous segment, since these signs only make sense attached
// to the word they modify.
func mergeSignSuffixRule() Rule {
	suffixSigns2 := map[rune]bool{0x17CB: true, 0x17CE: true, 0x17CF: true}

	return Rule{
		Name: "merge-sign-suffix",
		Match: func(segs []Segment, i int, dict Dictionary) (int, Action) {
			j := i + 1
			if j >= len(segs) {
				return 0, Keep
			}
			seg := segs[j]
			if dict.Contains(seg) {
				return 0, Keep
			}
			runes := []rune(seg)

			switch len(runes) {
			case 2:
				if scan.IsConsonant(runes[0]) && suffixSigns2[runes[1]] {
					return 2, Merge
				}
			case 3:
				if scan.IsConsonant(runes[0]) && runes[1] == 0x17B7 && runes[2] == 0x17CD {
					return 2, Merge
				}
			}
			return 0, Keep
		},
	}
}

// mergeSignPrefixRule folds a consonant + SAMYOK SANNYA (U+17D0) pair
// into whatever segment follows it, since U+17D0 signals the cluster
// continues into the next orthographic word.
func mergeSignPrefixRule() Rule {
	return Rule{
		Name: "merge-sign-prefix",
		Match: func(segs []Segment, i int, dict Dictionary) (int, Action) {
			if i+1 >= len(segs) {
				return 0, Keep
			}
			runes := []rune(segs[i])
			if len(runes) != 2 || !scan.IsConsonant(runes[0]) || runes[1] != 0x17D0 {
				return 0, Keep
			}
			return 2, Merge
		},
	}
}

// isKnownSegment mirrors the teacher's PostProcessUnknowns classification:
// a segment counts as "known" (and so terminates a run of unknowns) if it
// starts with a digit, is a dictionary word, is a single valid standalone
// word, or starts with a separator. The decoder only ever emits Dict,
// Number, Separator, or Unknown edges (spec.md §4.6), so there is no
// acronym edge for a dotted-fragment branch to catch here; numeric
// dotted runs like "50.00" are already a Number edge and caught by the
// IsDigit case below.
func isKnownSegment(s string, dict Dictionary) bool {
	r, ok := firstRune(s)
	if !ok {
		return true
	}
	switch {
	case scan.IsDigit(r):
		return true
	case dict.Contains(s):
		return true
	case utf8.RuneCountInString(s) == 1 && scan.IsValidSingleBase(r):
		return true
	case scan.IsSeparator(r):
		return true
	default:
		return false
	}
}

// isUnknownKhmerSegment reports whether s is a Khmer-letter segment the
// decoder could only cover with the unknown-cluster fallback edge. This
// is deliberately narrower than "not known": non-Khmer unknown segments
// (e.g. each letter of an unrecognized Latin word) are left as one
// segment per code point, matching spec.md §8 scenario S2.
func isUnknownKhmerSegment(s string, dict Dictionary) bool {
	r, ok := firstRune(s)
	if !ok {
		return false
	}
	return scan.IsKhmerLetter(r) && !isKnownSegment(s, dict)
}

// mergeConsecutiveUnknownsRule coalesces a run of unrecognized Khmer
// cluster segments into one, so a stretch of garbled Khmer doesn't come
// out split one cluster at a time.
func mergeConsecutiveUnknownsRule() Rule {
	return Rule{
		Name: "merge-consecutive-unknowns",
		Match: func(segs []Segment, i int, dict Dictionary) (int, Action) {
			if !isUnknownKhmerSegment(segs[i], dict) {
				return 0, Keep
			}
			run := 1
			for i+run < len(segs) && isUnknownKhmerSegment(segs[i+run], dict) {
				run++
			}
			if run < 2 {
				return 0, Keep
			}
			return run, Merge
		},
	}
}

// dropPureSeparatorsRule removes bare single-space segments before the
// facade joins the list with the caller's separator, per the S7 decision
// in SPEC_FULL.md: "ក ខ" joins to "ក|ខ", not "ក| |ខ".
func dropPureSeparatorsRule() Rule {
	return Rule{
		Name: "drop-pure-separators",
		Match: func(segs []Segment, i int, dict Dictionary) (int, Action) {
			if segs[i] == " " {
				return 1, Drop
			}
			return 0, Keep
		},
	}
}
