package sparse

import "slices"

// ChainResult holds the best chain found by Chain: the indices of the
// chained seeds (in chain order) and the score of the chain.
type ChainResult struct {
	Path  []int
	Score int
}

// Chain finds the highest-scoring chain of co-linear seeds. Each seed
// contributes k*weight to the score; linking two seeds on different
// diagonals costs gapOpen + gapExtend per diagonal step. Seeds must be
// sorted by X then Y, as produced by FindKmerMatches. Two chained
// seeds may overlap only as an exact diagonal continuation.
func Chain(seeds []Seed, k, weight, gapOpen, gapExtend int) ChainResult {
	if len(seeds) == 0 {
		return ChainResult{}
	}

	score := make([]int, len(seeds))
	prev := make([]int, len(seeds))
	best := 0
	for i, s := range seeds {
		score[i] = k * weight
		prev[i] = -1
		for j := 0; j < i; j++ {
			t := seeds[j]
			if t.X >= s.X || t.Y >= s.Y {
				continue
			}
			dx := int(s.X - t.X)
			dy := int(s.Y - t.Y)
			if dx != dy && (dx < k || dy < k) {
				// an off-diagonal link must not overlap the seed
				continue
			}
			gap := dx - dy
			if gap < 0 {
				gap = -gap
			}
			cand := score[j] + k*weight
			if gap > 0 {
				cand += gapOpen + gapExtend*gap
			}
			if cand > score[i] {
				score[i] = cand
				prev[i] = j
			}
		}
		if score[i] > score[best] {
			best = i
		}
	}

	var path []int
	for at := best; at != -1; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)
	return ChainResult{Path: path, Score: score[best]}
}
