package myers

import (
	"github.com/katalvlaran/bioseq/align"
)

// Matches iterates over the (end, distance) pairs produced by
// FindAllEnd. End positions are 0-based and inclusive, strictly
// increasing, with at most one hit per position.
type Matches[T BitVec] struct {
	my      *Myers[T]
	s       state[T]
	text    []byte
	i       int
	maxDist int
}

// Next returns the next qualifying end position and its distance.
// ok is false once the text is exhausted.
func (m *Matches[T]) Next() (end, dist int, ok bool) {
	for m.i < len(m.text) {
		a := m.text[m.i]
		end = m.i
		m.i++
		m.my.step(&m.s, a)
		if m.s.dist <= m.maxDist {
			return end, m.s.dist, true
		}
	}
	return 0, 0, false
}

// FullMatches iterates over matches with start positions and alignment
// paths, produced by FindAll and FindAllRemember. It borrows the
// traceback buffer of its Myers value, so only the most recently
// created FullMatches per Myers value is valid.
type FullMatches[T BitVec] struct {
	my      *Myers[T]
	s       state[T]
	text    []byte
	i       int
	maxDist int
	pos     int // end position of the current hit
	started bool
}

// NextEnd searches the next match and returns its inclusive end
// position and distance. This involves no start-position search and is
// faster than Next.
func (f *FullMatches[T]) NextEnd() (end, dist int, ok bool) {
	for f.i < len(f.text) {
		a := f.text[f.i]
		f.pos = f.i
		f.started = true
		f.i++
		f.my.stepTrace(&f.s, a)
		if f.s.dist <= f.maxDist {
			return f.pos, f.s.dist, true
		}
	}
	return 0, 0, false
}

// Next searches the next match and returns its start position,
// exclusive end position and distance.
func (f *FullMatches[T]) Next() (start, end, dist int, ok bool) {
	e, d, ok := f.NextEnd()
	if !ok {
		return 0, 0, 0, false
	}
	return f.Start(), e + 1, d, true
}

// NextPath is like Next, additionally storing the alignment path of the
// hit in *ops (replacing its contents).
func (f *FullMatches[T]) NextPath(ops *[]align.Op) (start, end, dist int, ok bool) {
	e, d, ok := f.NextEnd()
	if !ok {
		return 0, 0, 0, false
	}
	return f.Path(ops), e + 1, d, true
}

// NextAlignment searches the next match and fills aln with its
// positions and path; the distance is stored in aln.Score. When no
// further hit exists, false is returned and aln is left unchanged.
func (f *FullMatches[T]) NextAlignment(aln *align.Alignment) bool {
	if _, _, ok := f.NextEnd(); !ok {
		return false
	}
	f.Alignment(aln)
	return true
}

// Start returns the starting position of the current hit. Two corner
// cases have documented 'unexpected' values: before any text position
// was searched, 0 is returned; after an exhausted search without a hit,
// the start of the alignment ending at the last text position is
// returned, regardless of its distance.
func (f *FullMatches[T]) Start() int {
	if !f.started {
		return 0
	}
	length, _ := f.my.tb.traceback(nil)
	return f.pos + 1 - length
}

// Path stores the alignment path of the current hit in *ops and returns
// the starting position. See Start for the corner cases.
func (f *FullMatches[T]) Path(ops *[]align.Op) int {
	if !f.started {
		if ops != nil {
			*ops = (*ops)[:0]
		}
		return 0
	}
	length, _ := f.my.tb.traceback(ops)
	return f.pos + 1 - length
}

// Alignment fills aln with the position and path of the current hit;
// the distance is stored in aln.Score.
func (f *FullMatches[T]) Alignment(aln *align.Alignment) {
	length, _ := f.my.tb.traceback(&aln.Operations)
	f.fillAlignment(f.pos, length, f.s.dist, aln)
}

// HitAt returns the start position and distance of the alignment ending
// at the given searched end position (0-based, as returned by NextEnd).
// ok is false when the position was not searched yet or the traceback
// window no longer covers it; searches started with FindAllRemember
// cover every searched position.
func (f *FullMatches[T]) HitAt(end int) (start, dist int, ok bool) {
	length, d, ok := f.my.tb.tracebackAt(end, nil)
	if !ok {
		return 0, 0, false
	}
	return end + 1 - length, d, true
}

// PathAt is like HitAt, additionally storing the alignment path in *ops.
func (f *FullMatches[T]) PathAt(end int, ops *[]align.Op) (start, dist int, ok bool) {
	length, d, ok := f.my.tb.tracebackAt(end, ops)
	if !ok {
		return 0, 0, false
	}
	return end + 1 - length, d, true
}

// AlignmentAt fills aln with the position and path of the alignment
// ending at the given searched end position. It reports false, leaving
// aln unchanged, when the position is unavailable.
func (f *FullMatches[T]) AlignmentAt(end int, aln *align.Alignment) bool {
	length, d, ok := f.my.tb.tracebackAt(end, &aln.Operations)
	if !ok {
		return false
	}
	f.fillAlignment(end, length, d, aln)
	return true
}

func (f *FullMatches[T]) fillAlignment(end, length, dist int, aln *align.Alignment) {
	aln.XStart = 0
	aln.XEnd = f.my.m
	aln.XLen = f.my.m
	aln.YLen = len(f.text)
	aln.YEnd = end + 1
	aln.YStart = aln.YEnd - length
	aln.Mode = align.Semiglobal
	aln.Score = dist
}
