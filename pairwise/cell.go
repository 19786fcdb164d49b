package pairwise

// Tag identifies the move recorded in one traceback layer.
type Tag uint16

const (
	// TagStart terminates the traceback walk.
	TagStart Tag = iota
	TagIns
	TagDel
	TagMatch
	TagSubst
	TagXClipPrefix
	TagXClipSuffix
	TagYClipPrefix
	TagYClipSuffix
)

// Cell packs the traceback tags of the three score layers into one
// uint16. Layout: bits 0-3 hold the I tag, bits 4-7 the D tag and
// bits 8-11 the S tag. The zero value is TagStart in every layer.
type Cell uint16

const (
	iShift  = 0
	dShift  = 4
	sShift  = 8
	tagMask = 0xf
)

// SetI records the I-layer tag.
func (c *Cell) SetI(t Tag) { *c = *c&^(tagMask<<iShift) | Cell(t)<<iShift }

// SetD records the D-layer tag.
func (c *Cell) SetD(t Tag) { *c = *c&^(tagMask<<dShift) | Cell(t)<<dShift }

// SetS records the S-layer tag.
func (c *Cell) SetS(t Tag) { *c = *c&^(tagMask<<sShift) | Cell(t)<<sShift }

// SetAll records the same tag in all three layers.
func (c *Cell) SetAll(t Tag) {
	c.SetI(t)
	c.SetD(t)
	c.SetS(t)
}

// I returns the I-layer tag.
func (c Cell) I() Tag { return Tag(c>>iShift) & tagMask }

// D returns the D-layer tag.
func (c Cell) D() Tag { return Tag(c>>dShift) & tagMask }

// S returns the S-layer tag.
func (c Cell) S() Tag { return Tag(c>>sShift) & tagMask }

// Matrix is a dense (m+1)×(n+1) grid of traceback cells, reused
// between alignments.
type Matrix struct {
	rows, cols int
	cells      []Cell
}

// Init resizes the matrix for sequences of length m and n and clears
// every cell to TagStart.
func (t *Matrix) Init(m, n int) {
	t.rows, t.cols = m+1, n+1
	need := t.rows * t.cols
	if cap(t.cells) >= need {
		t.cells = t.cells[:need]
		clear(t.cells)
	} else {
		t.cells = make([]Cell, need)
	}
}

// Get returns the cell at row i, column j.
func (t *Matrix) Get(i, j int) Cell { return t.cells[i*t.cols+j] }

// Set stores the cell at row i, column j.
func (t *Matrix) Set(i, j int, c Cell) { t.cells[i*t.cols+j] = c }

// SetS overwrites only the S tag of the cell at row i, column j.
func (t *Matrix) SetS(i, j int, tag Tag) {
	t.cells[i*t.cols+j].SetS(tag)
}

// SetI overwrites only the I tag of the cell at row i, column j.
func (t *Matrix) SetI(i, j int, tag Tag) {
	t.cells[i*t.cols+j].SetI(tag)
}
