// Package pairwise implements full-matrix pairwise sequence alignment
// with affine gap penalties and configurable clip penalties.
//
// 🚀 What does pairwise provide?
//
//	• Scoring — gap open/extend penalties, a substitution function and
//	  four clip penalties (x/y prefix/suffix) controlling how expensive
//	  it is to skip sequence ends
//	• Aligner — a reusable aligner with three score layers (S, I, D)
//	  computed column by column in O(m·n) time, a packed traceback
//	  matrix and suffix-clip bookkeeping
//	• Modes — Global, Semiglobal (x global, y local) and Local as
//	  derived configurations of the Custom clip machinery
//
// The clip penalties generalize the classical modes: Global is all
// clips forbidden (MinScore), Semiglobal allows free y clips, Local
// allows all clips for free, and Custom exposes the raw penalties for
// anything in between (e.g. overhang-tolerant read alignment).
//
// ✨ Quick start
//
//	score := func(a, b byte) int {
//	    if a == b { return 1 }
//	    return -1
//	}
//	al, err := pairwise.New(-5, -1, score)
//	if err != nil { ... }
//	aln := al.Semiglobal(x, y)
//
// An Aligner reuses its internal buffers between calls and must not be
// shared between goroutines. Package banded provides the same contract
// restricted to a band around seed matches for long sequences.
package pairwise
