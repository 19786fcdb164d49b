package banded

import (
	"errors"
	"slices"

	"github.com/katalvlaran/bioseq/align"
	"github.com/katalvlaran/bioseq/pairwise"
	"github.com/katalvlaran/bioseq/sparse"
)

// DefaultMaxCells is the band size limit beyond which alignment is
// refused and the sentinel alignment returned.
const DefaultMaxCells = 100000

// Construction errors returned by New and WithScoring.
var (
	// ErrNonPositiveK is returned for a seed length below one.
	ErrNonPositiveK = errors.New("banded: kmer length k must be > 0")
	// ErrNonPositiveW is returned for a band width below one.
	ErrNonPositiveW = errors.New("banded: band width w must be > 0")
)

type config struct {
	maxCells int
}

// Option configures an Aligner.
type Option func(*config)

// MaxCells overrides the band size limit.
func MaxCells(n int) Option {
	return func(c *config) { c.maxCells = n }
}

// Aligner computes banded alignments under a Scoring. It owns reusable
// scratch buffers, so one Aligner must not be shared between
// goroutines.
type Aligner struct {
	scoring  pairwise.Scoring
	k, w     int
	maxCells int

	s, ins, del [2][]int
	lx, ly, sn  []int
	tb          pairwise.Matrix
}

// New returns an Aligner with the given gap penalties and substitution
// function. k is the seed length used to build the band, w the padding
// around the seed chain. All clip penalties are forbidden until a mode
// or a custom Scoring decides otherwise.
func New(gapOpen, gapExtend int, matchFn pairwise.MatchFunc, k, w int, opts ...Option) (*Aligner, error) {
	return WithScoring(pairwise.NewScoring(gapOpen, gapExtend, matchFn), k, w, opts...)
}

// WithScoring returns an Aligner using the given Scoring, including its
// clip penalties for Custom alignments.
func WithScoring(scoring pairwise.Scoring, k, w int, opts ...Option) (*Aligner, error) {
	if err := scoring.Validate(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, ErrNonPositiveK
	}
	if w <= 0 {
		return nil, ErrNonPositiveW
	}
	cfg := config{maxCells: DefaultMaxCells}
	for _, o := range opts {
		o(&cfg)
	}
	return &Aligner{scoring: scoring, k: k, w: w, maxCells: cfg.maxCells}, nil
}

// Scoring returns the aligner's scoring configuration.
func (a *Aligner) Scoring() pairwise.Scoring { return a.scoring }

// Custom aligns x against y under the aligner's clip penalties. Clipped
// regions appear as XClip/YClip operations in the result.
func (a *Aligner) Custom(x, y []byte) align.Alignment {
	return a.align(x, y, a.scoring, sparse.FindKmerMatches(x, y, a.k))
}

// CustomPrehashed is Custom with y pre-indexed by sparse.HashKmers.
// The index must have been built with the aligner's k.
func (a *Aligner) CustomPrehashed(x, y []byte, yIdx *sparse.KmerIndex) align.Alignment {
	return a.align(x, y, a.scoring, sparse.FindKmerMatchesPrehashed(x, yIdx))
}

// Global aligns all of x against all of y.
func (a *Aligner) Global(x, y []byte) align.Alignment {
	scoring := a.scoring.WithClips(pairwise.MinScore, pairwise.MinScore, pairwise.MinScore, pairwise.MinScore)
	aln := a.align(x, y, scoring, sparse.FindKmerMatches(x, y, a.k))
	aln.Mode = align.Global
	return aln
}

// Semiglobal aligns all of x against a substring of y.
func (a *Aligner) Semiglobal(x, y []byte) align.Alignment {
	scoring := a.scoring.WithClips(pairwise.MinScore, pairwise.MinScore, 0, 0)
	aln := a.align(x, y, scoring, sparse.FindKmerMatches(x, y, a.k))
	aln.Mode = align.Semiglobal
	aln.FilterClips()
	return aln
}

// SemiglobalPrehashed is Semiglobal with y pre-indexed by
// sparse.HashKmers. This saves rehashing the reference when many
// queries are aligned against it. The index must have been built with
// the aligner's k.
func (a *Aligner) SemiglobalPrehashed(x, y []byte, yIdx *sparse.KmerIndex) align.Alignment {
	scoring := a.scoring.WithClips(pairwise.MinScore, pairwise.MinScore, 0, 0)
	aln := a.align(x, y, scoring, sparse.FindKmerMatchesPrehashed(x, yIdx))
	aln.Mode = align.Semiglobal
	aln.FilterClips()
	return aln
}

// Local aligns a substring of x against a substring of y.
func (a *Aligner) Local(x, y []byte) align.Alignment {
	scoring := a.scoring.WithClips(0, 0, 0, 0)
	aln := a.align(x, y, scoring, sparse.FindKmerMatches(x, y, a.k))
	aln.Mode = align.Local
	aln.FilterClips()
	return aln
}

func (a *Aligner) align(x, y []byte, scoring pairwise.Scoring, seeds []sparse.Seed) align.Alignment {
	band := buildBand(x, y, a.k, a.w, scoring, seeds)
	return a.compute(x, y, scoring, band)
}

// fill resizes buf to n elements all set to v, reusing its capacity.
func fill(buf []int, n, v int) []int {
	if cap(buf) >= n {
		buf = buf[:n]
	} else {
		buf = make([]int, n)
	}
	for i := range buf {
		buf[i] = v
	}
	return buf
}

// compute runs the three-layer affine-gap DP inside the band and
// returns the traceback as an Alignment in Custom mode. A traceback
// that leaves the band is closed with forced clips.
func (a *Aligner) compute(x, y []byte, scoring pairwise.Scoring, band *Band) align.Alignment {
	if band.NumCells() > a.maxCells {
		// The band is too large to evaluate.
		return align.Alignment{Score: pairwise.MinScore, Mode: align.Custom}
	}

	m, n := len(x), len(y)
	a.tb.Init(m, n)

	for k := 0; k < 2; k++ {
		a.s[k] = fill(a.s[k], m+1, pairwise.MinScore)
		a.ins[k] = fill(a.ins[k], m+1, pairwise.MinScore)
		a.del[k] = fill(a.del[k], m+1, pairwise.MinScore)
	}
	a.lx = fill(a.lx, n+1, 0)
	a.ly = fill(a.ly, m+1, 0)
	a.sn = fill(a.sn, m+1, pairwise.MinScore)

	// Column j = 0: only insertions and x clips are possible.
	{
		const curr = 0
		iStart := band.ranges[0].start
		iEnd := band.ranges[0].end
		if iStart == 0 {
			a.s[curr][0] = 0
		}

		for i := max(1, iStart); i < iEnd; i++ {
			var tb pairwise.Cell
			if i == 1 {
				a.ins[curr][i] = scoring.GapOpen + scoring.GapExtend
			} else {
				iScore := scoring.GapOpen + scoring.GapExtend*i
				cScore := scoring.XClipPrefix + scoring.GapOpen + scoring.GapExtend
				if iScore > cScore {
					a.ins[curr][i] = iScore
					tb.SetI(pairwise.TagIns)
				} else {
					a.ins[curr][i] = cScore
					tb.SetI(pairwise.TagXClipPrefix)
				}
			}

			if i == m {
				tb.SetS(pairwise.TagXClipSuffix)
			}

			if a.ins[curr][i] > a.s[curr][i] {
				a.s[curr][i] = a.ins[curr][i]
				tb.SetS(pairwise.TagIns)
			}
			if scoring.XClipPrefix > a.s[curr][i] {
				a.s[curr][i] = scoring.XClipPrefix
				tb.SetS(pairwise.TagXClipPrefix)
			}

			// Track the score of an x suffix clip after this character.
			if a.s[curr][i]+scoring.XClipSuffix > a.s[curr][m] {
				a.s[curr][m] = a.s[curr][i] + scoring.XClipSuffix
				a.lx[0] = m - i
			}

			a.tb.Set(i, 0, tb)
		}

		// Cells the next column reads but this band never wrote.
		for i := iEnd; i < min(m+1, band.ranges[min(n, 1)].end); i++ {
			a.s[curr][i] = pairwise.MinScore
			a.ins[curr][i] = pairwise.MinScore
		}
		if iEnd < m+1 {
			a.s[curr][m] = pairwise.MinScore
		}
	}

	for j := 1; j <= n; j++ {
		curr := j % 2
		prev := 1 - curr

		iStart := band.ranges[j].start
		iEnd := band.ranges[j].end

		// Row i = 0: only deletions and y clips are possible.
		if iStart == 0 {
			var tb pairwise.Cell
			a.ins[curr][0] = pairwise.MinScore

			if j == 1 {
				a.del[curr][0] = scoring.GapOpen + scoring.GapExtend
			} else {
				dScore := scoring.GapOpen + scoring.GapExtend*j
				cScore := scoring.YClipPrefix + scoring.GapOpen + scoring.GapExtend
				if dScore > cScore {
					a.del[curr][0] = dScore
					tb.SetD(pairwise.TagDel)
				} else {
					a.del[curr][0] = cScore
					tb.SetD(pairwise.TagYClipPrefix)
				}
			}

			if a.del[curr][0] > scoring.YClipPrefix {
				a.s[curr][0] = a.del[curr][0]
				tb.SetS(pairwise.TagDel)
			} else {
				a.s[curr][0] = scoring.YClipPrefix
				tb.SetS(pairwise.TagYClipPrefix)
			}

			// Track the score of a y suffix clip from here.
			if a.s[curr][0]+scoring.YClipSuffix > a.sn[0] {
				a.sn[0] = a.s[curr][0] + scoring.YClipSuffix
				a.ly[0] = n - j
			}
			a.tb.Set(0, j, tb)
		}

		// The cell just above the band start carries stale scores from
		// two columns ago.
		for i := satSub(iStart, 1); i < iStart; i++ {
			a.s[curr][i] = pairwise.MinScore
			a.ins[curr][i] = pairwise.MinScore
			a.del[curr][i] = pairwise.MinScore
		}
		a.s[curr][m] = pairwise.MinScore

		q := y[j-1]
		xclipScore := scoring.XClipPrefix +
			max(scoring.YClipPrefix, scoring.GapOpen+scoring.GapExtend*j)

		for i := max(1, iStart); i < iEnd; i++ {
			p := x[i-1]
			var tb pairwise.Cell

			mScore := a.s[prev][i-1] + scoring.MatchFn(p, q)

			iScore := a.ins[curr][i-1] + scoring.GapExtend
			sScore := a.s[curr][i-1] + scoring.GapOpen + scoring.GapExtend
			var bestI int
			if iScore > sScore {
				bestI = iScore
				tb.SetI(pairwise.TagIns)
			} else {
				bestI = sScore
				tb.SetI(a.tb.Get(i-1, j).S())
			}

			dScore := a.del[prev][i] + scoring.GapExtend
			sScore = a.s[prev][i] + scoring.GapOpen + scoring.GapExtend
			var bestD int
			if dScore > sScore {
				bestD = dScore
				tb.SetD(pairwise.TagDel)
			} else {
				bestD = sScore
				tb.SetD(a.tb.Get(i, j-1).S())
			}

			if i == m {
				tb.SetS(pairwise.TagXClipSuffix)
			} else {
				a.s[curr][i] = pairwise.MinScore
			}
			bestS := a.s[curr][i]

			if mScore > bestS {
				bestS = mScore
				if p == q {
					tb.SetS(pairwise.TagMatch)
				} else {
					tb.SetS(pairwise.TagSubst)
				}
			}
			if bestI > bestS {
				bestS = bestI
				tb.SetS(pairwise.TagIns)
			}
			if bestD > bestS {
				bestS = bestD
				tb.SetS(pairwise.TagDel)
			}
			if xclipScore > bestS {
				bestS = xclipScore
				tb.SetS(pairwise.TagXClipPrefix)
			}
			yclipScore := scoring.YClipPrefix + scoring.GapOpen + scoring.GapExtend*i
			if yclipScore > bestS {
				bestS = yclipScore
				tb.SetS(pairwise.TagYClipPrefix)
			}

			a.s[curr][i] = bestS
			a.ins[curr][i] = bestI
			a.del[curr][i] = bestD

			// Track the scores of x / y suffix clips from here.
			if a.s[curr][i]+scoring.XClipSuffix > a.s[curr][m] {
				a.s[curr][m] = a.s[curr][i] + scoring.XClipSuffix
				a.lx[j] = m - i
			}
			if a.s[curr][i]+scoring.YClipSuffix > a.sn[i] {
				a.sn[i] = a.s[curr][i] + scoring.YClipSuffix
				a.ly[i] = n - j
			}

			a.tb.Set(i, j, tb)
		}

		// Suffix clip (y) from i = m, then reset S[curr][m] if the band
		// does not reach the last row.
		if a.s[curr][m]+scoring.YClipSuffix > a.sn[m] {
			a.sn[m] = a.s[curr][m] + scoring.YClipSuffix
			a.ly[m] = n - j
		}
		if iEnd < m+1 {
			a.tb.SetS(m, j, pairwise.TagXClipSuffix)
			a.s[curr][m] = pairwise.MinScore
		}

		// Cells the next column reads but this band never wrote.
		for i := iEnd; i < min(m+1, band.ranges[min(n, j+1)].end); i++ {
			a.s[curr][i] = pairwise.MinScore
			a.ins[curr][i] = pairwise.MinScore
			a.del[curr][i] = pairwise.MinScore
		}
	}

	curr := n % 2

	// Apply pending y suffix clips in the last column.
	for i := 0; i <= m; i++ {
		if a.sn[i] > a.s[curr][i] {
			a.s[curr][i] = a.sn[i]
			a.tb.SetS(i, n, pairwise.TagYClipSuffix)
		}
		if a.s[curr][i]+scoring.XClipSuffix > a.s[curr][m] {
			a.s[curr][m] = a.s[curr][i] + scoring.XClipSuffix
			a.lx[n] = m - i
			a.tb.SetS(m, n, pairwise.TagXClipSuffix)
		}
	}

	// The change above can improve the last column of I as well.
	for i := max(1, band.ranges[n].start); i < band.ranges[n].end; i++ {
		sScore := a.s[curr][i-1] + scoring.GapOpen + scoring.GapExtend
		if sScore > a.ins[curr][i] {
			a.ins[curr][i] = sScore
			a.tb.SetI(i, n, a.tb.Get(i-1, n).S())
		}
		if sScore > a.s[curr][i] {
			a.s[curr][i] = sScore
			a.tb.SetS(i, n, pairwise.TagIns)
			if a.s[curr][i]+scoring.XClipSuffix > a.s[curr][m] {
				a.s[curr][m] = a.s[curr][i] + scoring.XClipSuffix
				a.lx[n] = m - i
				a.tb.SetS(m, n, pairwise.TagXClipSuffix)
			}
		}
	}

	i, j := m, n
	ops := make([]align.Op, 0, m)
	xstart, ystart := 0, 0
	xend, yend := m, n

	last := a.tb.Get(i, j).S()
	for last != pairwise.TagStart {
		var next pairwise.Tag
		switch last {
		case pairwise.TagIns:
			ops = append(ops, align.Ins)
			next = a.tb.Get(i, j).I()
			i--
		case pairwise.TagDel:
			ops = append(ops, align.Del)
			next = a.tb.Get(i, j).D()
			j--
		case pairwise.TagMatch:
			ops = append(ops, align.Match)
			next = a.tb.Get(i-1, j-1).S()
			i--
			j--
		case pairwise.TagSubst:
			ops = append(ops, align.Subst)
			next = a.tb.Get(i-1, j-1).S()
			i--
			j--
		case pairwise.TagXClipPrefix:
			ops = append(ops, align.XClip(i))
			xstart = i
			i = 0
			next = a.tb.Get(0, j).S()
		case pairwise.TagXClipSuffix:
			ops = append(ops, align.XClip(a.lx[j]))
			i -= a.lx[j]
			xend = i
			next = a.tb.Get(i, j).S()
		case pairwise.TagYClipPrefix:
			ops = append(ops, align.YClip(j))
			ystart = j
			j = 0
			next = a.tb.Get(i, 0).S()
		case pairwise.TagYClipSuffix:
			ops = append(ops, align.YClip(a.ly[i]))
			j -= a.ly[i]
			yend = j
			next = a.tb.Get(i, j).S()
		default:
			panic("banded: corrupt traceback cell")
		}
		last = next
	}

	// The traceback can leave the band before reaching (0, 0); close
	// the alignment with forced clips.
	if i != 0 {
		ops = append(ops, align.XClip(i))
		xstart = i
	}
	if j != 0 {
		ops = append(ops, align.YClip(j))
		ystart = j
	}

	slices.Reverse(ops)
	return align.Alignment{
		Score:  a.s[curr][m],
		XStart: xstart, XEnd: xend, XLen: m,
		YStart: ystart, YEnd: yend, YLen: n,
		Operations: ops,
		Mode:       align.Custom,
	}
}
