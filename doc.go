// Package bioseq is an in-memory toolbox for approximate string matching
// and pairwise sequence alignment over byte sequences (DNA, protein, or
// any other small alphabet).
//
// 🚀 What is bioseq?
//
//	A pure-Go library of performance-oriented alignment kernels:
//		• Bit-parallel matching: Myers' edit-distance automaton with full
//		  traceback (myers/)
//		• Pairwise alignment: affine-gap Smith-Waterman / Needleman-Wunsch
//		  with configurable clip penalties (pairwise/)
//		• Banded alignment: sparse-seed band construction around k-mer
//		  anchors for long sequences (banded/)
//		• Seed finding: k-mer hashing and sparse chain DP (sparse/)
//		• Shared value objects: Alignment, edit operations, modes (align/)
//
// ✨ Why choose bioseq?
//
//   - Deterministic – identical inputs always produce identical outputs
//   - Allocation-aware – aligner instances reuse their scratch buffers
//   - Pure Go – no cgo, machine-word bit tricks only where they pay off
//   - Composable – scoring functions and k-mer indexes are injected by you
//
// Everything is organized under five subpackages:
//
//	align/    — Alignment, Op and Mode value types shared by all aligners
//	myers/    — bit-parallel approximate matching (pattern ≤ word width)
//	pairwise/ — full-matrix affine-gap aligner + Scoring configuration
//	banded/   — banded aligner and Band construction from seed chains
//	sparse/   — k-mer indexing, seed matching and chain DP
//
// The kernels are single-threaded and synchronous by design: run one
// aligner or matcher instance per goroutine and parallelize outside.
//
//	go get github.com/katalvlaran/bioseq
package bioseq
