package sparse

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Seed is an exact k-mer match anchoring position X in the query to
// position Y in the reference.
type Seed struct {
	X, Y uint32
}

// KmerIndex maps every k-length window of a sequence to the positions
// it occurs at. Build it once with HashKmers and reuse it across
// queries.
type KmerIndex struct {
	k   int
	seq []byte
	pos map[uint64][]uint32
}

// HashKmers indexes all k-mers of seq. The index keeps a reference to
// seq for collision verification, so seq must not be mutated while the
// index is in use.
func HashKmers(seq []byte, k int) *KmerIndex {
	idx := &KmerIndex{k: k, seq: seq, pos: make(map[uint64][]uint32)}
	if k <= 0 {
		return idx
	}
	for i := 0; i+k <= len(seq); i++ {
		h := xxhash.Sum64(seq[i : i+k])
		idx.pos[h] = append(idx.pos[h], uint32(i))
	}
	return idx
}

// K returns the k-mer length the index was built with.
func (ix *KmerIndex) K() int { return ix.k }

// Lookup returns the positions at which kmer occurs in the indexed
// sequence, in ascending order. A kmer of the wrong length matches
// nothing.
func (ix *KmerIndex) Lookup(kmer []byte) []uint32 {
	if len(kmer) != ix.k {
		return nil
	}
	var out []uint32
	for _, p := range ix.pos[xxhash.Sum64(kmer)] {
		if bytes.Equal(ix.seq[p:int(p)+ix.k], kmer) {
			out = append(out, p)
		}
	}
	return out
}

// FindKmerMatches returns all exact k-mer matches between x and y as
// seeds sorted by X, then Y. The shorter sequence is indexed, the
// longer one is scanned.
func FindKmerMatches(x, y []byte, k int) []Seed {
	if k <= 0 || k > len(x) || k > len(y) {
		return nil
	}
	if len(x) <= len(y) {
		idx := HashKmers(x, k)
		var out []Seed
		for j := 0; j+k <= len(y); j++ {
			for _, p := range idx.Lookup(y[j : j+k]) {
				out = append(out, Seed{X: p, Y: uint32(j)})
			}
		}
		sortSeeds(out)
		return out
	}
	return FindKmerMatchesPrehashed(x, HashKmers(y, k))
}

// FindKmerMatchesPrehashed scans x against a prebuilt index of the
// reference sequence, returning seeds sorted by X, then Y.
func FindKmerMatchesPrehashed(x []byte, yIdx *KmerIndex) []Seed {
	k := yIdx.k
	if k <= 0 || k > len(x) {
		return nil
	}
	var out []Seed
	for i := 0; i+k <= len(x); i++ {
		for _, p := range yIdx.Lookup(x[i : i+k]) {
			out = append(out, Seed{X: uint32(i), Y: p})
		}
	}
	return out
}

func sortSeeds(seeds []Seed) {
	slices.SortFunc(seeds, func(a, b Seed) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
}
