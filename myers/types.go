package myers

import (
	"errors"
	"math"
	"math/bits"
)

// Construction errors returned by New.
var (
	// ErrEmptyPattern is returned for a zero-length pattern.
	ErrEmptyPattern = errors.New("myers: pattern is empty")
	// ErrPatternTooLong is returned when the pattern does not fit the
	// bit width of the chosen word type.
	ErrPatternTooLong = errors.New("myers: pattern longer than bit-vector width")
)

// BitVec constrains the unsigned word types usable as pattern bit
// vectors. The bit width of the chosen type bounds the maximum pattern
// length: 8, 16, 32 or 64 symbols.
type BitVec interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// width reports the bit width of T.
func width[T BitVec]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// sentinelDist marks the distance of the sentinel traceback column. It
// is a large finite value so that dist+1 comparisons cannot overflow.
const sentinelDist = math.MaxInt32

// state is the automaton state after consuming some text prefix: the
// vertical positive/negative delta words and the edit distance of the
// full pattern at the current column.
type state[T BitVec] struct {
	pv   T
	mv   T
	dist int
}

// initState returns the state of the leftmost column, where the
// distance grows by one per pattern row.
func initState[T BitVec](m int) state[T] {
	// T(1)<<m - 1 wraps to all ones when m equals the word width.
	return state[T]{pv: T(1)<<m - 1, dist: m}
}

// Option customizes pattern compilation.
type Option func(*config)

type config struct {
	ambigs    map[byte][]byte
	wildcards []byte
}

// Ambig declares the pattern symbol sym to additionally match each of
// the given text bytes. Repeated options for the same symbol accumulate.
func Ambig(sym byte, equivalents []byte) Option {
	return func(c *config) {
		if c.ambigs == nil {
			c.ambigs = make(map[byte][]byte)
		}
		c.ambigs[sym] = append(c.ambigs[sym], equivalents...)
	}
}

// TextWildcard declares a text byte that every pattern position matches.
func TextWildcard(w byte) Option {
	return func(c *config) {
		c.wildcards = append(c.wildcards, w)
	}
}
