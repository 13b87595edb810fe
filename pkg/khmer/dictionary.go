package khmer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unsafe"

	"github.com/khmer-segmenter/internal/normalize"
)

// ErrDictionaryUnavailable is returned (wrapped, so errors.Is matches it)
// when the dictionary file cannot be opened or read.
var ErrDictionaryUnavailable = errors.New("khmer: dictionary file unavailable")

// Dictionary is an immutable word -> cost mapping built once at startup
// and queried by byte slice during every Viterbi step. Lookups never
// allocate: the candidate span is turned into a map key with a zero-copy
// conversion rather than a fresh string.
type Dictionary struct {
	words         map[string]float64
	maxWordLength int // longest key, in bytes
}

// NewDictionary returns an empty dictionary. LoadDictionary starts from
// one; on its own it serves as the "no dictionary available" fallback
// described in spec.md §7.
func NewDictionary() *Dictionary {
	return &Dictionary{words: make(map[string]float64)}
}

// MaxWordLength returns the longest dictionary entry in bytes.
func (d *Dictionary) MaxWordLength() int { return d.maxWordLength }

// Len returns the number of distinct words held by the dictionary.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether word is present verbatim (exact byte equality,
// not case- or variant-folded).
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Lookup returns the cost of the byte span text[start:end] if it is a
// dictionary word. It performs no allocation: the candidate span is
// reinterpreted as a string header pointing at the same backing array,
// which is safe here because the caller (the Viterbi decoder) never
// mutates the normalized text buffer for the lifetime of the call and the
// map is never written to concurrently with a read.
func (d *Dictionary) Lookup(text []byte, start, end int) (float64, bool) {
	if start >= end {
		return 0, false
	}
	key := unsafe.String(unsafe.SliceData(text[start:end]), end-start)
	cost, ok := d.words[key]
	return cost, ok
}

// LoadDictionary reads path, one word per line (CR/LF trimmed, empty
// lines skipped), normalizes each word the same way input text is
// normalized, and inserts it at defaultCost. It then runs the
// compound-word pruning pass described below and recomputes
// maxWordLength. No frequency file is read: every word gets defaultCost.
func LoadDictionary(path string, defaultCost float64) (*Dictionary, error) {
	d := NewDictionary()
	if err := d.loadWords(path, defaultCost); err != nil {
		return nil, err
	}
	d.pruneCompounds()
	d.recomputeMaxWordLength()
	return d, nil
}

func (d *Dictionary) loadWords(path string, defaultCost float64) error {
	start := time.Now()
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDictionaryUnavailable, path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// spec.md §6 requires accepting at least 255 bytes per word; give
	// ourselves headroom for longer compounds and multi-byte Khmer runs.
	buf := make([]byte, 0, 4096)
	scanner.Buffer(buf, 64*1024)

	count := 0
	for scanner.Scan() {
		raw := strings.TrimRight(scanner.Text(), "\r")
		if raw == "" {
			continue
		}
		word := string(normalize.Normalize([]byte(raw)))
		if word == "" {
			continue
		}
		d.words[word] = defaultCost
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDictionaryUnavailable, path, err)
	}

	logger.Info().
		Str("path", path).
		Int("words", count).
		Dur("elapsed", time.Since(start)).
		Msg("loaded dictionary")
	return nil
}

// pruneCompounds removes entries that are artifacts of naive word-list
// construction rather than real standalone words: words built purely by
// concatenating two already-dictionary words across the "ឬ" (OR)
// conjunction, words containing the repetition mark (U+17D7), and stray
// entries that start with a bare COENG (which can never begin a valid
// cluster). Adapted from the teacher's loadDictionary post-processing.
func (d *Dictionary) pruneCompounds() {
	const (
		or           = "ឬ"
		repetition   = "ៗ"
		leadingCoeng = "្"
	)

	toRemove := make(map[string]bool)
	for word := range d.words {
		if strings.Contains(word, or) && len([]rune(word)) > 1 {
			switch {
			case strings.HasPrefix(word, or):
				if _, ok := d.words[strings.TrimPrefix(word, or)]; ok {
					toRemove[word] = true
				}
			case strings.HasSuffix(word, or):
				if _, ok := d.words[strings.TrimSuffix(word, or)]; ok {
					toRemove[word] = true
				}
			default:
				allKnown := true
				for _, part := range strings.Split(word, or) {
					if part == "" {
						continue
					}
					if _, ok := d.words[part]; !ok {
						allKnown = false
						break
					}
				}
				if allKnown {
					toRemove[word] = true
				}
			}
		}

		if strings.Contains(word, repetition) {
			toRemove[word] = true
		}
		if strings.HasPrefix(word, leadingCoeng) {
			toRemove[word] = true
		}
	}

	for word := range toRemove {
		delete(d.words, word)
	}
	delete(d.words, repetition)
}

func (d *Dictionary) recomputeMaxWordLength() {
	d.maxWordLength = 0
	for word := range d.words {
		if len(word) > d.maxWordLength {
			d.maxWordLength = len(word)
		}
	}
}
