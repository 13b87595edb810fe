package rules

import (
	"testing"
)

type fakeDict map[string]bool

func (f fakeDict) Contains(word string) bool { return f[word] }

func TestEngineRunPreservesBytesWithNoMatchingRules(t *testing.T) {
	e := NewEngine()
	segs := []Segment{"a", "b", "c"}
	out := e.Run(segs, fakeDict{})
	if len(out) != 3 {
		t.Fatalf("got %v", out)
	}
}

func TestEngineDropsEmptySegments(t *testing.T) {
	r := Rule{
		Name: "drop-first",
		Match: func(segs []Segment, i int, dict Dictionary) (int, Action) {
			if i == 0 {
				return 1, Drop
			}
			return 0, Keep
		},
	}
	e := NewEngine(r)
	out := e.Run([]Segment{"x", "y"}, fakeDict{})
	if len(out) != 1 || out[0] != "y" {
		t.Fatalf("got %v", out)
	}
}

func TestEngineMergeConcatenatesBytes(t *testing.T) {
	r := Rule{
		Name: "merge-all",
		Match: func(segs []Segment, i int, dict Dictionary) (int, Action) {
			if i == 0 {
				return len(segs), Merge
			}
			return 0, Keep
		},
	}
	e := NewEngine(r)
	out := e.Run([]Segment{"a", "b", "c"}, fakeDict{})
	if len(out) != 1 || out[0] != "abc" {
		t.Fatalf("got %v", out)
	}
}

func TestMergeSignSuffixRule(t *testing.T) {
	rule := mergeSignSuffixRule()
	segs := []Segment{"word", "ក់"} // consonant + U+17CB
	consumed, action := rule.Match(segs, 0, fakeDict{})
	if consumed != 2 || action != Merge {
		t.Fatalf("got consumed=%d action=%v", consumed, action)
	}
}

func TestMergeSignSuffixRuleSkipsDictWords(t *testing.T) {
	rule := mergeSignSuffixRule()
	segs := []Segment{"word", "ក់"}
	consumed, _ := rule.Match(segs, 0, fakeDict{"ក់": true})
	if consumed != 0 {
		t.Fatalf("expected no match for a dictionary word, got consumed=%d", consumed)
	}
}

func TestDropPureSeparatorsRule(t *testing.T) {
	rule := dropPureSeparatorsRule()
	consumed, action := rule.Match([]Segment{" "}, 0, fakeDict{})
	if consumed != 1 || action != Drop {
		t.Fatalf("got consumed=%d action=%v", consumed, action)
	}
}

func TestSnapInvalidSingleConsonantBetweenSeparatorsStaysAlone(t *testing.T) {
	rule := snapInvalidSingleConsonantsRule()
	// previous is a separator, candidate at index 1 is a lone Khmer sign
	// code point (not a valid standalone base), next is a separator.
	segs := []Segment{"។", "់", "។"}
	consumed, _ := rule.Match(segs, 0, fakeDict{})
	if consumed != 0 {
		t.Fatalf("expected invalid single consonant between separators to stay standalone, got consumed=%d", consumed)
	}
}

func TestSnapInvalidSingleConsonantMergesIntoPreviousWord(t *testing.T) {
	rule := snapInvalidSingleConsonantsRule()
	segs := []Segment{"word", "់"}
	consumed, action := rule.Match(segs, 0, fakeDict{})
	if consumed != 2 || action != Merge {
		t.Fatalf("got consumed=%d action=%v", consumed, action)
	}
}
