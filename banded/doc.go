// Package banded implements banded pairwise alignment: the affine-gap
// DP of package pairwise restricted to a band around chained k-mer
// seed matches, for long sequences where the full matrix is too big.
//
// 🚀 How it works
//
//	1. Seed    — exact k-mer matches between x and y (package sparse)
//	2. Chain   — the best co-linear chain of those seeds
//	3. Band    — per-column row ranges covering the chain backbone,
//	             each seed padded by w cells, gaps bridged along the
//	             interpolated diagonal, and the band extended to valid
//	             start/end boundaries for the requested clip penalties
//	4. Align   — the three-layer DP evaluated inside the band only;
//	             a traceback leaving the band is clipped
//
// Without any seed match the band falls back to the full matrix, so
// results stay correct (just not fast). A band whose cell count
// exceeds MaxCells is not aligned at all: the sentinel alignment with
// Score == pairwise.MinScore and no operations is returned instead.
//
// ✨ Quick start
//
//	score := func(a, b byte) int {
//	    if a == b { return 1 }
//	    return -1
//	}
//	al, err := banded.New(-5, -1, score, 10, 10)
//	if err != nil { ... }
//	aln := al.Semiglobal(x, y)
//
// The k and w parameters trade sensitivity for speed: k is the seed
// length (larger k, fewer seeds), w is the band padding around the
// seed chain (larger w, wider band). The *Prehashed variants accept a
// sparse.KmerIndex of y for repeated queries against one reference.
package banded
