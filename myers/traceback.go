package myers

import (
	"math/bits"
	"slices"

	"github.com/katalvlaran/bioseq/align"
)

// traceback is a ring buffer of automaton states that allows
// reconstructing the alignment path of recently visited end positions.
//
// Slot layout: the first state added is a sentinel "impossible" column
// (all pv bits set, huge distance) which bounds the backward walk when
// the text is shorter than the pattern; the second is the initial
// column. The state of text position i therefore lives at ring index
// (i+2) % len(states).
type traceback[T BitVec] struct {
	states []state[T]
	pos    int // ring index of the most recently added state
	added  int // total states added since init
	m      int
}

func (tb *traceback[T]) init(initial state[T], numCols, m int) {
	numCols += 2
	if cap(tb.states) >= numCols {
		tb.states = tb.states[:numCols]
		clear(tb.states)
	} else {
		tb.states = make([]state[T], numCols)
	}
	tb.pos = numCols - 1 // first add lands on slot 0
	tb.added = 0
	tb.m = m

	tb.add(state[T]{pv: ^T(0), dist: sentinelDist})
	tb.add(initial)
}

func (tb *traceback[T]) add(s state[T]) {
	tb.pos++
	if tb.pos == len(tb.states) {
		tb.pos = 0
	}
	tb.states[tb.pos] = s
	tb.added++
}

// avail returns the number of ring slots still holding valid history at
// or before absolute position p (the oldest slots are overwritten once
// the ring wraps).
func (tb *traceback[T]) avail(p int) int {
	return p + 1 - max(0, tb.added-len(tb.states))
}

// traceback reconstructs the path ending at the most recent state. It
// returns the length of the match in the text and its distance; if ops
// is non-nil the operations are appended to it (after clearing).
func (tb *traceback[T]) traceback(ops *[]align.Op) (length, dist int) {
	length, dist, _ = tb.walk(tb.pos, tb.avail(tb.added-1), ops)
	return length, dist
}

// tracebackAt reconstructs the path for the given 0-based end position.
// It reports ok=false when the position has not been searched yet or
// when the ring no longer holds all states the backward walk reads;
// ops is left untouched in that case.
func (tb *traceback[T]) tracebackAt(end int, ops *[]align.Op) (length, dist int, ok bool) {
	p := end + 2
	if p < 0 || p >= tb.added {
		return 0, 0, false
	}
	// Dry run first: the walk length is not known up front, so whether
	// the history suffices only surfaces while walking.
	length, dist, ok = tb.walk(p%len(tb.states), tb.avail(p), nil)
	if !ok {
		return 0, 0, false
	}
	if ops != nil {
		tb.walk(p%len(tb.states), tb.avail(p), ops)
	}
	return length, dist, true
}

// walk reconstructs the alignment path backwards from the state at ring
// index ringPos, returning the match length in the text and the hit
// distance. At most avail states (at or before ringPos) are read; a
// walk that needs more returns ok=false instead of wrapping into
// overwritten slots. Operations are emitted right to left and reversed
// at the end.
func (tb *traceback[T]) walk(ringPos, avail int, ops *[]align.Op) (int, int, bool) {
	n := len(tb.states)
	idx := ringPos
	short := false
	next := func() state[T] {
		if avail == 0 {
			short = true
			return state[T]{}
		}
		avail--
		s := tb.states[idx]
		idx--
		if idx < 0 {
			idx = n - 1
		}
		return s
	}

	if ops != nil {
		*ops = (*ops)[:0]
	}

	// Mask selecting the current pattern row in pv/mv; shifted down as
	// the walk moves up.
	curMask := T(1) << (tb.m - 1)
	hOffset := 0 // columns walked to the left
	vOffset := 0 // rows walked up from the bottom

	moveUpOne := func(s *state[T], mask T) {
		if s.pv&mask != 0 {
			s.dist--
		} else if s.mv&mask != 0 {
			s.dist++
		}
	}
	// moveUpMany adjusts the distance of s as if moved up k rows, using
	// popcounts over the covered bit range.
	moveUpMany := func(s *state[T], k int) {
		// ^(^T(0)<<k) is all ones when k equals the word width.
		mask := ^(^T(0) << k) << (tb.m - k)
		s.dist += bits.OnesCount64(uint64(s.mv&mask)) - bits.OnesCount64(uint64(s.pv&mask))
	}

	st := next()
	dist := st.dist
	lst := next()
	if short {
		return 0, 0, false
	}
	// The cursor of the left state is kept in the diagonal position so
	// that a substitution shows as a simple distance comparison.
	moveUpOne(&lst, curMask)

	moveUp := func() {
		vOffset++
		moveUpOne(&st, curMask)
		curMask >>= 1
		moveUpOne(&lst, curMask)
	}
	moveLeft := func() {
		hOffset++
		st = lst
		lst = next()
		if vOffset != tb.m {
			moveUpMany(&lst, vOffset+1)
		}
	}

	for vOffset < tb.m {
		if short {
			return 0, 0, false
		}
		var op align.Op
		switch {
		case lst.dist+1 == st.dist:
			vOffset++
			curMask >>= 1
			moveLeft()
			op = align.Subst
		case st.pv&curMask != 0:
			moveUp()
			op = align.Ins
		case lst.mv&curMask != 0:
			moveLeft()
			st.dist--
			op = align.Del
		default:
			vOffset++
			curMask >>= 1
			moveLeft()
			op = align.Match
		}
		if ops != nil {
			*ops = append(*ops, op)
		}
	}

	if ops != nil {
		slices.Reverse(*ops)
	}
	return hOffset, dist, true
}
