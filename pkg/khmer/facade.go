// Package khmer segments Khmer-script text into word-like units. It
// normalizes raw UTF-8 input, runs a byte-offset Viterbi decoder over a
// dictionary plus number/separator/cluster recognizers, and post-processes
// the resulting segment list through an ordered rule pipeline.
package khmer

import (
	"strings"

	"github.com/khmer-segmenter/internal/normalize"
	"github.com/khmer-segmenter/pkg/khmer/rules"
)

// Segmenter owns an immutable dictionary, cost configuration, and rule
// engine. It is safe to call Segment concurrently from any number of
// goroutines: nothing it touches after construction is ever written to
// again, and every call to Segment allocates its own DP array and
// segment list.
type Segmenter struct {
	dict   *Dictionary
	cfg    Config
	engine *rules.Engine
}

// Init loads the dictionary at dictPath with the default cost model and
// the default rule pipeline. freqPath is accepted for interface symmetry
// with the reference API (spec.md §6) but is not read; every dictionary
// word costs Config.DefaultCost.
func Init(dictPath, freqPath string) (*Segmenter, error) {
	return New(dictPath, freqPath, DefaultConfig())
}

// New is Init with an explicit cost configuration, for callers that want
// to tune the edge-class competition described in spec.md §4.6.
func New(dictPath, freqPath string, cfg Config) (*Segmenter, error) {
	_ = freqPath
	dict, err := LoadDictionary(dictPath, cfg.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Segmenter{
		dict:   dict,
		cfg:    cfg,
		engine: rules.NewEngine(rules.DefaultRules()...),
	}, nil
}

// Segment normalizes text, runs the Viterbi decoder and rule pipeline,
// and joins the resulting words with the default separator
// (DefaultSeparator, U+200B).
func (s *Segmenter) Segment(text string) string {
	return s.SegmentWithSeparator(text, DefaultSeparator)
}

// SegmentWithSeparator is Segment with an explicit join separator, which
// may be any UTF-8 byte string including the empty string.
func (s *Segmenter) SegmentWithSeparator(text, separator string) string {
	if text == "" {
		return ""
	}

	normalized := normalize.Normalize([]byte(text))
	if len(normalized) == 0 {
		return ""
	}

	segs := viterbiSegments(normalized, s.dict, s.cfg)
	segs = s.engine.Run(segs, s.dict)

	return strings.Join(segs, separator)
}

// Close releases the segmenter's dictionary and rule engine. A Segmenter
// must not be used again after Close, and Close must not be called while
// any Segment call on it is still in flight.
func (s *Segmenter) Close() error {
	s.dict = nil
	s.engine = nil
	return nil
}
