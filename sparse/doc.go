// Package sparse finds and chains exact k-mer matches between two byte
// sequences. Its seeds drive the band construction of package banded.
//
// 🚀 What does sparse provide?
//
//	• HashKmers — an index of every k-length window of a sequence,
//	  keyed by xxHash64 with byte-level verification on lookup, so hash
//	  collisions can never produce phantom seeds
//	• FindKmerMatches / FindKmerMatchesPrehashed — all exact k-mer
//	  matches between two sequences as sorted (x, y) position pairs;
//	  the prehashed variant reuses one index across many queries
//	  against the same reference
//	• Chain — the best chain of co-linear seeds under affine gap costs
//	  on the diagonal difference, returned as indices into the seed
//	  slice plus the chain score
//
// Matching is exact and case-sensitive; normalize sequences before
// indexing if needed.
package sparse
