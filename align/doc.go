// Package align defines the value types shared by every aligner in bioseq:
// edit operations, alignment modes and the Alignment result.
//
// 🚀 What does align provide?
//
//	• Op — one edit operation: Match, Subst, Ins, Del, or a clip with a
//	  length (XClip / YClip)
//	• Mode — Local, Semiglobal, Global or Custom
//	• Alignment — positions, score and the operation sequence of one
//	  pairwise alignment, with helpers:
//	    – Pretty(x, y, width) renders a three-row ASCII view
//	    – Path() expands operations into (x, y, op) steps
//	    – FilterClips() drops clip operations in place
//
// Conventions used throughout bioseq:
//
//   - x is the query sequence, y is the text (reference) sequence
//   - Ins consumes one byte of x, Del consumes one byte of y
//   - all positions are 0-based, end positions are exclusive
//
// The types in this package are plain values: copy them freely, compare
// Op values with ==, and build Operations slices by hand in tests.
package align
