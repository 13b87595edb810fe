// Package rules implements the pluggable post-processing pipeline
// described in spec.md §4.7: an ordered list of (match, action) rules
// applied to the segment list the Viterbi decoder produces, each in a
// single left-to-right pass. The decoder stays a pure shortest-path
// solver; nothing Khmer-specific lives there.
package rules

// Segment is one owned byte-string token in the list a rule operates on.
type Segment = string

// Action describes how a rule changes the segment list at a match site.
type Action int

const (
	// Keep leaves the current segment (or window) untouched and advances
	// past it: by one segment when nothing matched, by the consumed count
	// otherwise.
	Keep Action = iota
	// Merge combines the matched window into a single segment, byte
	// concatenation, and advances past it.
	Merge
	// Drop removes the matched window entirely (used for rules like
	// stripping bare whitespace segments before the final join).
	Drop
	// Replace substitutes the matched window with the rule's own bytes;
	// unlike Merge this may not preserve the original bytes, and the
	// rule undertaking it documents that.
	Replace
)

// Rule is one step of the pipeline. Match is called with the full
// segment list and a candidate start index; it returns how many leading
// segments (starting at index) it wants to consume and what action to
// take. A consumed count of 0 means "no match at this index" and the
// engine advances by one segment without calling Apply.
type Rule struct {
	Name  string
	Match func(segs []Segment, i int, dict Dictionary) (consumed int, action Action)
	// Apply is only called when Match returns a non-zero consumed count
	// and action is Replace; it must return the replacement text for the
	// consumed window. Merge never calls Apply: the engine concatenates
	// the window itself.
	Apply func(window []Segment) Segment
}

// Dictionary is the minimal surface a rule needs from pkg/khmer.Dictionary,
// kept as a small interface here so this package has no dependency on the
// concrete dictionary type (and so rules can be unit-tested against a fake).
type Dictionary interface {
	Contains(word string) bool
}

// Engine runs an ordered pipeline of rules over a segment list. It never
// shares the input list after a call to Run: the returned slice is always
// a fresh one, and the final list contains only non-empty segments.
type Engine struct {
	rules []Rule
}

// NewEngine builds a pipeline from the given rules, applied in order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Run applies every rule in order, each in a single left-to-right pass
// over the list produced by the previous rule.
func (e *Engine) Run(segs []Segment, dict Dictionary) []Segment {
	current := make([]Segment, len(segs))
	copy(current, segs)

	for _, r := range e.rules {
		current = runOne(r, current, dict)
	}
	return dropEmpty(current)
}

func runOne(r Rule, segs []Segment, dict Dictionary) []Segment {
	out := make([]Segment, 0, len(segs))
	i := 0
	for i < len(segs) {
		consumed, action := r.Match(segs, i, dict)
		if consumed <= 0 {
			out = append(out, segs[i])
			i++
			continue
		}

		window := segs[i : i+consumed]
		switch action {
		case Drop:
			// contributes nothing to out
		case Merge:
			joined := ""
			for _, w := range window {
				joined += w
			}
			out = append(out, joined)
		case Replace:
			out = append(out, r.Apply(window))
		default:
			out = append(out, window...)
		}
		i += consumed
	}
	return out
}

func dropEmpty(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
