package banded

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bioseq/sparse"
)

// rng is shorthand for an expected column range.
func rng(start, end int) colRange { return colRange{start: start, end: end} }

// none is the expected empty column of an 11-row band.
var none = rng(11, 0)

// TestBandAddEntry checks the exact column ranges produced by widening
// an 11x11 band around single positions, including the corners.
func TestBandAddEntry(t *testing.T) {
	b := NewBand(10, 10)
	b.AddEntry(sparse.Seed{X: 3, Y: 3}, 3)
	assert.Equal(t, []colRange{
		rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7),
		none, none, none, none,
	}, b.ranges)

	b.AddEntry(sparse.Seed{X: 9, Y: 9}, 2)
	assert.Equal(t, []colRange{
		rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 7),
		rng(7, 11), rng(7, 11), rng(7, 11), rng(7, 11),
	}, b.ranges)

	b.AddEntry(sparse.Seed{X: 7, Y: 5}, 2)
	assert.Equal(t, []colRange{
		rng(0, 7), rng(0, 7), rng(0, 7), rng(0, 10), rng(0, 10), rng(0, 10), rng(0, 10),
		rng(5, 11), rng(7, 11), rng(7, 11), rng(7, 11),
	}, b.ranges)

	b = NewBand(10, 10)
	b.AddEntry(sparse.Seed{X: 0, Y: 0}, 2)
	assert.Equal(t, []colRange{
		rng(0, 3), rng(0, 3), rng(0, 3),
		none, none, none, none, none, none, none, none,
	}, b.ranges)

	b = NewBand(10, 10)
	b.AddEntry(sparse.Seed{X: 10, Y: 10}, 2)
	assert.Equal(t, []colRange{
		none, none, none, none, none, none, none, none,
		rng(8, 11), rng(8, 11), rng(8, 11),
	}, b.ranges)

	b = NewBand(10, 10)
	b.AddEntry(sparse.Seed{X: 10, Y: 0}, 2)
	assert.Equal(t, []colRange{
		rng(8, 11), rng(8, 11), rng(8, 11),
		none, none, none, none, none, none, none, none,
	}, b.ranges)

	b = NewBand(10, 10)
	b.AddEntry(sparse.Seed{X: 0, Y: 10}, 2)
	assert.Equal(t, []colRange{
		none, none, none, none, none, none, none, none,
		rng(0, 3), rng(0, 3), rng(0, 3),
	}, b.ranges)
}

// assertKmerMatchesEntries checks that AddKmer equals AddEntry applied
// to every position of the diagonal run.
func assertKmerMatchesEntries(t *testing.T, start sparse.Seed, k, w, m, n int) {
	t.Helper()

	b1 := NewBand(m, n)
	b1.AddKmer(start, k, w)

	b2 := NewBand(m, n)
	for i := 0; i < k; i++ {
		b2.AddEntry(sparse.Seed{X: start.X + uint32(i), Y: start.Y + uint32(i)}, w)
	}
	assert.Equal(t, b2.ranges, b1.ranges)
}

func TestBandAddKmer(t *testing.T) {
	assertKmerMatchesEntries(t, sparse.Seed{X: 3, Y: 3}, 4, 2, 10, 10)
	assertKmerMatchesEntries(t, sparse.Seed{X: 3, Y: 3}, 8, 2, 10, 10)
	assertKmerMatchesEntries(t, sparse.Seed{X: 5, Y: 0}, 6, 3, 10, 10)
}

// TestBandWideningIdempotent repeats every widening operation and
// checks the band does not change.
func TestBandWideningIdempotent(t *testing.T) {
	b := NewBand(10, 10)
	b.AddKmer(sparse.Seed{X: 2, Y: 2}, 4, 2)
	b.AddGap(sparse.Seed{X: 5, Y: 5}, sparse.Seed{X: 8, Y: 9}, 1)
	b.AddEntry(sparse.Seed{X: 9, Y: 9}, 1)
	before := append([]colRange(nil), b.ranges...)

	b.AddKmer(sparse.Seed{X: 2, Y: 2}, 4, 2)
	b.AddGap(sparse.Seed{X: 5, Y: 5}, sparse.Seed{X: 8, Y: 9}, 1)
	b.AddEntry(sparse.Seed{X: 9, Y: 9}, 1)
	assert.Equal(t, before, b.ranges)
}

// TestBandRangeNumCells covers the accessors on an empty band, a
// partially filled band and the full matrix.
func TestBandRangeNumCells(t *testing.T) {
	b := NewBand(10, 10)
	assert.Equal(t, 0, b.NumCells())
	_, _, ok := b.Range(0)
	assert.False(t, ok)

	b.AddEntry(sparse.Seed{X: 3, Y: 3}, 3)
	start, end, ok := b.Range(3)
	assert.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)
	assert.Equal(t, 49, b.NumCells())

	b.FullMatrix()
	assert.Equal(t, 121, b.NumCells())
}
