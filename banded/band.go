package banded

import (
	"github.com/katalvlaran/bioseq/pairwise"
	"github.com/katalvlaran/bioseq/sparse"
)

// colRange is the row interval [start, end) banded in one column. A
// fresh column holds the inverted sentinel (rows, 0), which every
// widening operation shrinks towards a proper interval; the sentinel
// itself is never observable through the Band API.
type colRange struct {
	start, end int
}

func (r *colRange) growStart(i int) {
	if i < r.start {
		r.start = i
	}
}

func (r *colRange) growEnd(i int) {
	if i > r.end {
		r.end = i
	}
}

func (r colRange) isEmpty() bool { return r.start >= r.end }

func (r colRange) size() int {
	if r.isEmpty() {
		return 0
	}
	return r.end - r.start
}

// Band is the set of DP cells evaluated by the banded aligner, stored
// as one row range per column of the (m+1)×(n+1) matrix. All methods
// only ever widen the band.
type Band struct {
	rows, cols int
	ranges     []colRange
}

// NewBand returns an empty band for sequences of length m and n.
func NewBand(m, n int) *Band {
	b := &Band{rows: m + 1, cols: n + 1}
	b.ranges = make([]colRange, b.cols)
	for j := range b.ranges {
		b.ranges[j] = colRange{start: b.rows, end: 0}
	}
	return b
}

// Range returns the banded row interval [start, end) of column j, with
// ok=false for a column without any banded cell.
func (b *Band) Range(j int) (start, end int, ok bool) {
	r := b.ranges[j]
	if r.isEmpty() {
		return 0, 0, false
	}
	return r.start, r.end, true
}

// NumCells returns the total number of cells in the band.
func (b *Band) NumCells() int {
	cells := 0
	for _, r := range b.ranges {
		cells += r.size()
	}
	return cells
}

// FullMatrix widens the band to the whole matrix.
func (b *Band) FullMatrix() {
	for j := range b.ranges {
		b.ranges[j] = colRange{start: 0, end: b.rows}
	}
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// AddEntry adds the cells within w of pos in either direction.
func (b *Band) AddEntry(pos sparse.Seed, w int) {
	r, c := int(pos.X), int(pos.Y)

	istart := satSub(r, w)
	iend := min(r+w+1, b.rows)
	for j := satSub(c, w); j < min(c+w+1, b.cols); j++ {
		b.ranges[j].growStart(istart)
		b.ranges[j].growEnd(iend)
	}
}

// AddKmer adds the cells within w of the diagonal run of length k
// starting at start.
func (b *Band) AddKmer(start sparse.Seed, k, w int) {
	r, c := int(start.X), int(start.Y)
	if k == 0 {
		return
	}

	i := satSub(r, w)
	for j := satSub(c, w); j < min(c+w+1, b.cols); j++ {
		b.ranges[j].growStart(i)
	}

	i = satSub(r, w)
	for j := min(c+w, b.cols); j < min(c+k+w, b.cols); j++ {
		b.ranges[j].growStart(i)
		i++
	}

	i = r + w + k
	j := satSub(c+k-1, w)
	for j > satSub(c, w) {
		j--
		i--
		b.ranges[j].growEnd(min(i, b.rows))
	}

	i = min(r+w+k, b.rows)
	for j := satSub(c+k-1, w); j < min(c+k+w, b.cols); j++ {
		b.ranges[j].growEnd(i)
	}
}

// AddGap adds entries along the interpolated diagonal from start to
// end, each padded by w. start must not exceed end in either
// coordinate.
func (b *Band) AddGap(start, end sparse.Seed, w int) {
	sr, sc := int(start.X), int(start.Y)
	er, ec := int(end.X), int(end.Y)

	if er-sr > ec-sc {
		for r := sr; r < er; r++ {
			c := sc + (ec-sc)*(r-sr)/(er-sr)
			b.AddEntry(sparse.Seed{X: uint32(r), Y: uint32(c)}, w)
		}
	} else {
		for c := sc; c < ec; c++ {
			r := sr + (er-sr)*(c-sc)/(ec-sc)
			b.AddEntry(sparse.Seed{X: uint32(r), Y: uint32(c)}, w)
		}
	}
}

// setBoundaries extends the band so that it starts either at (0,0) or
// at a cell reachable from (0,0) at zero cost under the given clip
// penalties, and symmetrically for the end at (m,n). Irrespective of
// those scores the band is extended diagonally by 2k cells (or until
// it hits a corner) beyond the first and last chained seed.
func (b *Band) setBoundaries(start, end sparse.Seed, k, w int, scoring pairwise.Scoring) {
	lazyExtend := 2 * k

	// Start boundary.
	r, c := int(start.X), int(start.Y)
	if !(r == 0 && c == 0) {
		scoreToStart := 0
		if r > 0 {
			scoreToStart += scoring.XClipPrefix
		}
		if c > 0 {
			scoreToStart += scoring.YClipPrefix
		}

		if scoreToStart == 0 {
			d := min(lazyExtend, min(r, c))
			b.AddKmer(sparse.Seed{X: uint32(r - d), Y: uint32(c - d)}, d, w)
			// in case an edge was hit before completing the extension
			b.AddGap(
				sparse.Seed{X: uint32(satSub(r, lazyExtend)), Y: uint32(satSub(c, lazyExtend))},
				sparse.Seed{X: uint32(r - d), Y: uint32(c - d)},
				w)
		} else {
			// find a zero cost cell, trying the diagonal first
			var diagonalScore int
			switch {
			case r > c:
				diagonalScore = scoring.XClipPrefix // hits (r-c, 0)
			case c > r:
				diagonalScore = scoring.YClipPrefix // hits (0, c-r)
			default:
				diagonalScore = 0
			}

			if diagonalScore == 0 {
				d := min(r, c)
				b.AddKmer(sparse.Seed{X: uint32(r - d), Y: uint32(c - d)}, d, w)
				gs := sparse.Seed{X: uint32(satSub(r, lazyExtend)), Y: uint32(satSub(c, lazyExtend))}
				ge := sparse.Seed{X: uint32(r - d), Y: uint32(c - d)}
				if gs.X <= ge.X && gs.Y <= ge.Y {
					b.AddGap(gs, ge, w)
				}
			} else {
				// band all the way to the origin
				b.AddGap(sparse.Seed{}, start, w)
			}
		}
	}

	// End boundary.
	r, c = int(end.X)+k, int(end.Y)+k
	if !(r == b.rows && c == b.cols) {
		scoreFromEnd := 0
		if r != b.rows {
			scoreFromEnd += scoring.XClipSuffix
		}
		if c != b.cols {
			scoreFromEnd += scoring.YClipSuffix
		}

		if scoreFromEnd == 0 {
			d := min(lazyExtend, min(b.rows-r, b.cols-c))
			b.AddKmer(sparse.Seed{X: uint32(r), Y: uint32(c)}, d, w)

			r1 := min(b.rows, r+d) - 1
			c1 := min(b.cols, c+d) - 1
			r2 := min(b.rows, r+lazyExtend)
			c2 := min(b.cols, c+lazyExtend)
			if r1 <= r2 && c1 <= c2 {
				b.AddGap(
					sparse.Seed{X: uint32(r1), Y: uint32(c1)},
					sparse.Seed{X: uint32(r2), Y: uint32(c2)},
					w)
			}
		} else {
			dr := b.rows - r
			dc := b.cols - c
			var diagonalScore int
			switch {
			case dr > dc:
				diagonalScore = scoring.XClipSuffix // hits (r+dc, n+1)
			case dc > dr:
				diagonalScore = scoring.YClipSuffix // hits (m+1, c+dr)
			default:
				diagonalScore = 0 // hits the corner
			}

			if diagonalScore == 0 {
				d := min(dr, dc)
				b.AddKmer(sparse.Seed{X: uint32(r), Y: uint32(c)}, d, w)
				r1 := min(b.rows, r+d) - 1
				c1 := min(b.cols, c+d) - 1
				r2 := min(b.rows, r+lazyExtend)
				c2 := min(b.cols, c+lazyExtend)
				if r1 <= r2 && c1 <= c2 {
					b.AddGap(
						sparse.Seed{X: uint32(r1), Y: uint32(c1)},
						sparse.Seed{X: uint32(r2), Y: uint32(c2)},
						w)
				}
			} else {
				// band to the lower right corner
				b.AddGap(
					sparse.Seed{X: uint32(r), Y: uint32(c)},
					sparse.Seed{X: uint32(b.rows), Y: uint32(b.cols)},
					w)
			}
		}
	}
}

// chainWeight is the per-base seed weight used when chaining seeds for
// band construction.
const chainWeight = 2

// buildBand constructs the band for aligning x against y from the
// given seed matches. Without seeds the whole matrix is banded.
func buildBand(x, y []byte, k, w int, scoring pairwise.Scoring, seeds []sparse.Seed) *Band {
	band := NewBand(len(x), len(y))
	if len(seeds) == 0 {
		band.FullMatrix()
		return band
	}

	res := sparse.Chain(seeds, k, chainWeight, scoring.GapOpen, scoring.GapExtend)
	first := seeds[res.Path[0]]
	last := seeds[res.Path[len(res.Path)-1]]
	band.setBoundaries(first, last, k, w, scoring)

	havePrev := false
	var prev sparse.Seed
	for _, idx := range res.Path {
		curr := seeds[idx]
		if havePrev && curr.X == prev.X+1 && curr.Y == prev.Y+1 {
			band.AddEntry(sparse.Seed{X: prev.X + uint32(k), Y: prev.Y + uint32(k)}, w)
		} else {
			if havePrev {
				band.AddGap(sparse.Seed{X: prev.X + uint32(k) - 1, Y: prev.Y + uint32(k) - 1}, curr, w)
			}
			band.AddKmer(curr, k, w)
		}
		prev = curr
		havePrev = true
	}
	return band
}
