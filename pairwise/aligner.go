package pairwise

import (
	"slices"

	"github.com/katalvlaran/bioseq/align"
)

// Aligner computes full-matrix alignments under a Scoring. It owns
// reusable scratch buffers, so one Aligner must not be shared between
// goroutines.
type Aligner struct {
	scoring Scoring

	// Score layers, rolled over two columns: s is the best score, ins
	// scores ending in a gap in y (x insertion), del in a gap in x.
	s, ins, del [2][]int
	// lx[j] / ly[i] hold the suffix-clip lengths chosen for column j /
	// row i; sn[i] tracks the best score with a y suffix clip from row i.
	lx, ly, sn []int
	tb         Matrix
}

// New returns an Aligner with the given gap penalties and substitution
// function, with all clip penalties forbidden until a mode or a custom
// Scoring decides otherwise.
func New(gapOpen, gapExtend int, matchFn MatchFunc) (*Aligner, error) {
	return WithScoring(NewScoring(gapOpen, gapExtend, matchFn))
}

// WithScoring returns an Aligner using the given Scoring, including its
// clip penalties for Custom alignments.
func WithScoring(scoring Scoring) (*Aligner, error) {
	if err := scoring.Validate(); err != nil {
		return nil, err
	}
	return &Aligner{scoring: scoring}, nil
}

// Scoring returns the aligner's scoring configuration.
func (a *Aligner) Scoring() Scoring { return a.scoring }

// Custom aligns x against y under the aligner's clip penalties. Clipped
// regions appear as XClip/YClip operations in the result.
func (a *Aligner) Custom(x, y []byte) align.Alignment {
	return a.compute(x, y, a.scoring)
}

// Global aligns all of x against all of y.
func (a *Aligner) Global(x, y []byte) align.Alignment {
	scoring := a.scoring.WithClips(MinScore, MinScore, MinScore, MinScore)
	aln := a.compute(x, y, scoring)
	aln.Mode = align.Global
	return aln
}

// Semiglobal aligns all of x against a substring of y.
func (a *Aligner) Semiglobal(x, y []byte) align.Alignment {
	scoring := a.scoring.WithClips(MinScore, MinScore, 0, 0)
	aln := a.compute(x, y, scoring)
	aln.Mode = align.Semiglobal
	aln.FilterClips()
	return aln
}

// Local aligns a substring of x against a substring of y.
func (a *Aligner) Local(x, y []byte) align.Alignment {
	scoring := a.scoring.WithClips(0, 0, 0, 0)
	aln := a.compute(x, y, scoring)
	aln.Mode = align.Local
	aln.FilterClips()
	return aln
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

// compute runs the three-layer affine-gap DP column by column and
// returns the traceback as an Alignment in Custom mode.
func (a *Aligner) compute(x, y []byte, scoring Scoring) align.Alignment {
	m, n := len(x), len(y)
	a.tb.Init(m, n)

	for k := 0; k < 2; k++ {
		a.s[k] = fill(a.s[k], m+1, MinScore)
		a.ins[k] = fill(a.ins[k], m+1, MinScore)
		a.del[k] = fill(a.del[k], m+1, MinScore)
	}
	a.lx = fill(a.lx, n+1, 0)
	a.ly = fill(a.ly, m+1, 0)
	a.sn = fill(a.sn, m+1, MinScore)

	// Column j = 0: only insertions and x clips are possible.
	{
		const curr = 0
		a.s[curr][0] = 0

		for i := 1; i <= m; i++ {
			var tb Cell
			if i == 1 {
				a.ins[curr][i] = scoring.GapOpen + scoring.GapExtend
			} else {
				iScore := scoring.GapOpen + scoring.GapExtend*i
				cScore := scoring.XClipPrefix + scoring.GapOpen + scoring.GapExtend
				if iScore > cScore {
					a.ins[curr][i] = iScore
					tb.SetI(TagIns)
				} else {
					a.ins[curr][i] = cScore
					tb.SetI(TagXClipPrefix)
				}
			}

			if i == m {
				tb.SetS(TagXClipSuffix)
			}

			if a.ins[curr][i] > a.s[curr][i] {
				a.s[curr][i] = a.ins[curr][i]
				tb.SetS(TagIns)
			}
			if scoring.XClipPrefix > a.s[curr][i] {
				a.s[curr][i] = scoring.XClipPrefix
				tb.SetS(TagXClipPrefix)
			}

			// Track the score of an x suffix clip after this character.
			if a.s[curr][i]+scoring.XClipSuffix > a.s[curr][m] {
				a.s[curr][m] = a.s[curr][i] + scoring.XClipSuffix
				a.lx[0] = m - i
			}

			a.tb.Set(i, 0, tb)
		}
	}

	for j := 1; j <= n; j++ {
		curr := j % 2
		prev := 1 - curr

		// Row i = 0: only deletions and y clips are possible.
		{
			var tb Cell
			a.ins[curr][0] = MinScore

			if j == 1 {
				a.del[curr][0] = scoring.GapOpen + scoring.GapExtend
			} else {
				dScore := scoring.GapOpen + scoring.GapExtend*j
				cScore := scoring.YClipPrefix + scoring.GapOpen + scoring.GapExtend
				if dScore > cScore {
					a.del[curr][0] = dScore
					tb.SetD(TagDel)
				} else {
					a.del[curr][0] = cScore
					tb.SetD(TagYClipPrefix)
				}
			}

			if a.del[curr][0] > scoring.YClipPrefix {
				a.s[curr][0] = a.del[curr][0]
				tb.SetS(TagDel)
			} else {
				a.s[curr][0] = scoring.YClipPrefix
				tb.SetS(TagYClipPrefix)
			}

			// Track the score of a y suffix clip from here.
			if a.s[curr][0]+scoring.YClipSuffix > a.sn[0] {
				a.sn[0] = a.s[curr][0] + scoring.YClipSuffix
				a.ly[0] = n - j
			}
			a.tb.Set(0, j, tb)
		}

		a.s[curr][m] = MinScore

		q := y[j-1]
		xclipScore := scoring.XClipPrefix +
			max(scoring.YClipPrefix, scoring.GapOpen+scoring.GapExtend*j)

		for i := 1; i <= m; i++ {
			p := x[i-1]
			var tb Cell

			mScore := a.s[prev][i-1] + scoring.MatchFn(p, q)

			iScore := a.ins[curr][i-1] + scoring.GapExtend
			sScore := a.s[curr][i-1] + scoring.GapOpen + scoring.GapExtend
			var bestI int
			if iScore > sScore {
				bestI = iScore
				tb.SetI(TagIns)
			} else {
				bestI = sScore
				tb.SetI(a.tb.Get(i-1, j).S())
			}

			dScore := a.del[prev][i] + scoring.GapExtend
			sScore = a.s[prev][i] + scoring.GapOpen + scoring.GapExtend
			var bestD int
			if dScore > sScore {
				bestD = dScore
				tb.SetD(TagDel)
			} else {
				bestD = sScore
				tb.SetD(a.tb.Get(i, j-1).S())
			}

			if i == m {
				tb.SetS(TagXClipSuffix)
			} else {
				a.s[curr][i] = MinScore
			}
			bestS := a.s[curr][i]

			if mScore > bestS {
				bestS = mScore
				if p == q {
					tb.SetS(TagMatch)
				} else {
					tb.SetS(TagSubst)
				}
			}
			if bestI > bestS {
				bestS = bestI
				tb.SetS(TagIns)
			}
			if bestD > bestS {
				bestS = bestD
				tb.SetS(TagDel)
			}
			if xclipScore > bestS {
				bestS = xclipScore
				tb.SetS(TagXClipPrefix)
			}
			yclipScore := scoring.YClipPrefix + scoring.GapOpen + scoring.GapExtend*i
			if yclipScore > bestS {
				bestS = yclipScore
				tb.SetS(TagYClipPrefix)
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

		// Suffix clip (y) from i = m.
		if a.s[curr][m]+scoring.YClipSuffix > a.sn[m] {
			a.sn[m] = a.s[curr][m] + scoring.YClipSuffix
			a.ly[m] = n - j
		}
	}

	curr := n % 2

	// Apply pending y suffix clips in the last column.
	for i := 0; i <= m; i++ {
		if a.sn[i] > a.s[curr][i] {
			a.s[curr][i] = a.sn[i]
			a.tb.SetS(i, n, TagYClipSuffix)
		}
		if a.s[curr][i]+scoring.XClipSuffix > a.s[curr][m] {
			a.s[curr][m] = a.s[curr][i] + scoring.XClipSuffix
			a.lx[n] = m - i
			a.tb.SetS(m, n, TagXClipSuffix)
		}
	}

	// The change above can improve the last column of I as well.
	for i := 1; i <= m; i++ {
		sScore := a.s[curr][i-1] + scoring.GapOpen + scoring.GapExtend
		if sScore > a.ins[curr][i] {
			a.ins[curr][i] = sScore
			a.tb.SetI(i, n, a.tb.Get(i-1, n).S())
		}
		if sScore > a.s[curr][i] {
			a.s[curr][i] = sScore
			a.tb.SetS(i, n, TagIns)
			if a.s[curr][i]+scoring.XClipSuffix > a.s[curr][m] {
				a.s[curr][m] = a.s[curr][i] + scoring.XClipSuffix
				a.lx[n] = m - i
				a.tb.SetS(m, n, TagXClipSuffix)
			}
		}
	}

	i, j := m, n
	ops := make([]align.Op, 0, m)
	xstart, ystart := 0, 0
	xend, yend := m, n

	last := a.tb.Get(i, j).S()
	for last != TagStart {
		var next Tag
		switch last {
		case TagIns:
			ops = append(ops, align.Ins)
			next = a.tb.Get(i, j).I()
			i--
		case TagDel:
			ops = append(ops, align.Del)
			next = a.tb.Get(i, j).D()
			j--
		case TagMatch:
			ops = append(ops, align.Match)
			next = a.tb.Get(i-1, j-1).S()
			i--
			j--
		case TagSubst:
			ops = append(ops, align.Subst)
			next = a.tb.Get(i-1, j-1).S()
			i--
			j--
		case TagXClipPrefix:
			ops = append(ops, align.XClip(i))
			xstart = i
			i = 0
			next = a.tb.Get(0, j).S()
		case TagXClipSuffix:
			ops = append(ops, align.XClip(a.lx[j]))
			i -= a.lx[j]
			xend = i
			next = a.tb.Get(i, j).S()
		case TagYClipPrefix:
			ops = append(ops, align.YClip(j))
			ystart = j
			j = 0
			next = a.tb.Get(i, 0).S()
		case TagYClipSuffix:
			ops = append(ops, align.YClip(a.ly[i]))
			j -= a.ly[i]
			yend = j
			next = a.tb.Get(i, j).S()
		default:
			panic("pairwise: corrupt traceback cell")
		}
		last = next
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
