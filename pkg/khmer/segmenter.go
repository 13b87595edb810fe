package khmer

import (
	"math"

	"github.com/khmer-segmenter/internal/cluster"
	"github.com/khmer-segmenter/internal/number"
	"github.com/khmer-segmenter/internal/scan"
)

// viterbiSegments runs the shortest-path cover over text (already
// normalized) and returns the byte spans of the chosen path as owned
// strings, in order. It allocates its DP array and backtrack buffer fresh
// on every call; nothing here is shared across goroutines, which is what
// lets Segment be called concurrently on one Segmenter (spec.md §5).
func viterbiSegments(text []byte, dict *Dictionary, cfg Config) []string {
	n := len(text)
	if n == 0 {
		return nil
	}

	cost := make([]float64, n+1)
	prev := make([]int, n+1)
	for i := range cost {
		cost[i] = math.Inf(1)
		prev[i] = -1
	}
	cost[0] = 0

	maxWordLen := dict.MaxWordLength()

	for i := 0; i < n; i++ {
		if math.IsInf(cost[i], 1) {
			continue
		}
		cur := cost[i]
		cp, size := scan.Decode(text, i)

		relax := func(target int, edgeCost float64) {
			if target > n {
				return
			}
			nc := cur + edgeCost
			if nc < cost[target] {
				cost[target] = nc
				prev[target] = i
			}
		}

		// Edges 1/2 are alternatives: a number (or currency-led number)
		// run takes precedence; only if that doesn't apply do we try a
		// separator edge.
		tookNumberEdge := false
		if scan.IsDigit(cp) {
			relax(i+number.Bytes(text, n, i), cfg.NumberCost)
			tookNumberEdge = true
		} else if scan.IsCurrency(cp) && i+size < n {
			if next, _ := scan.Decode(text, i+size); scan.IsDigit(next) {
				relax(i+number.CurrencyPrefixBytes(text, n, i, size), cfg.NumberCost)
				tookNumberEdge = true
			}
		}
		if !tookNumberEdge && scan.IsSeparator(cp) {
			relax(i+size, cfg.SeparatorCost)
		}

		// Edge 3: every dictionary word starting at i.
		limit := i + maxWordLen
		if limit > n {
			limit = n
		}
		for j := i + 1; j <= limit; j++ {
			if wordCost, ok := dict.Lookup(text, i, j); ok {
				relax(j, wordCost)
			}
		}

		// Edge 4: unknown fallback, always evaluated.
		if scan.IsKhmerLetter(cp) {
			clusterLen := cluster.Bytes(text, n, i)
			edgeCost := cfg.UnknownCost
			if clusterLen == size && !scan.IsValidSingleBase(cp) {
				edgeCost += cfg.UnknownInvalidBasePenalty
			}
			relax(i+clusterLen, edgeCost)
		} else {
			relax(i+size, cfg.UnknownCost)
		}
	}

	if prev[n] == -1 {
		// No path reached the end (spec.md §9's fallback): hand back the
		// whole normalized text as a single segment rather than nothing.
		return []string{string(text)}
	}

	var spans [][2]int
	curr := n
	for curr > 0 {
		p := prev[curr]
		if p == -1 {
			return []string{string(text)}
		}
		spans = append(spans, [2]int{p, curr})
		curr = p
	}

	segments := make([]string, len(spans))
	for i, sp := range spans {
		segments[len(spans)-1-i] = string(text[sp[0]:sp[1]])
	}
	return segments
}
