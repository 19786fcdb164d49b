// Package myers implements Myers' bit-parallel approximate string
// matching algorithm with full traceback support.
//
// 🚀 What does myers provide?
//
//	• Myers[T] — a pattern compiled into per-symbol bit masks, generic
//	  over the machine word used for the bit vectors (uint8..uint64);
//	  the pattern length is bounded by the word width
//	• Distance(text) — smallest edit distance of the pattern to any
//	  substring of text ending anywhere
//	• FindAllEnd(text, maxDist) — lazy iteration over (end, distance)
//	  pairs of all qualifying end positions
//	• FindAll / FindAllRemember — iteration with start positions and
//	  alignment paths reconstructed from a ring buffer of states
//
// The automaton advances in O(1) word operations per text byte, so a
// search costs O(len(text)) regardless of the error threshold. Start
// positions and paths are reconstructed on demand by walking recorded
// states backwards; FindAll keeps a window of m+maxDist+2 states (just
// enough for the current hit), FindAllRemember keeps one state per text
// position so any searched end position can be queried later.
//
// ✨ Pattern options
//
//	New[uint64](pattern,
//	    myers.Ambig('N', []byte("ACGT")),   // pattern 'N' matches any base
//	    myers.TextWildcard('*'),            // text '*' matches everywhere
//	)
//
// A Myers value is cheap to keep around and reuse. Searches started with
// FindAll/FindAllRemember share the traceback buffer owned by the Myers
// value, so run at most one such search per Myers value at a time.
package myers
