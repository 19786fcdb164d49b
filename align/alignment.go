package align

import (
	"strings"
)

// Alignment is the result of aligning a query x against a text y.
//
// All positions are 0-based and end positions are exclusive. For Custom
// mode the clipped regions are part of Operations (XClip / YClip); for
// the standard modes the clipping is implicit in XStart/YStart and
// XEnd/YEnd and Operations holds unit operations only.
type Alignment struct {
	// Score of the alignment under the scoring that produced it. For
	// Myers matches this is the edit distance instead.
	Score int
	// XStart and XEnd delimit the aligned region of x; XLen is len(x).
	XStart, XEnd, XLen int
	// YStart and YEnd delimit the aligned region of y; YLen is len(y).
	YStart, YEnd, YLen int
	// Operations from the start of the aligned region to its end.
	Operations []Op
	// Mode the alignment was computed under.
	Mode Mode
}

// Step is one node of the alignment path: the (exclusive) x and y
// positions reached after applying Op.
type Step struct {
	X, Y int
	Op   Op
}

// Path expands Operations into matrix coordinates, one Step per
// operation, ordered from the start of the alignment to its end.
func (a *Alignment) Path() []Step {
	if len(a.Operations) == 0 {
		return nil
	}
	xi, yi := a.XEnd, a.YEnd
	if a.Mode == Custom {
		xi, yi = a.XLen, a.YLen
	}

	path := make([]Step, len(a.Operations))
	for i := len(a.Operations) - 1; i >= 0; i-- {
		op := a.Operations[i]
		path[i] = Step{X: xi, Y: yi, Op: op}
		switch op.Kind {
		case KindMatch, KindSubst:
			xi--
			yi--
		case KindIns:
			xi--
		case KindDel:
			yi--
		case KindXClip:
			xi -= op.Len
		case KindYClip:
			yi -= op.Len
		}
	}
	return path
}

// FilterClips removes clip operations in place, keeping only the unit
// operations Match, Subst, Ins and Del.
func (a *Alignment) FilterClips() {
	kept := a.Operations[:0]
	for _, op := range a.Operations {
		if !op.IsClip() {
			kept = append(kept, op)
		}
	}
	a.Operations = kept
}

// XAlnLen returns the number of x bytes covered by the alignment.
func (a *Alignment) XAlnLen() int { return a.XEnd - a.XStart }

// YAlnLen returns the number of y bytes covered by the alignment.
func (a *Alignment) YAlnLen() int { return a.YEnd - a.YStart }

// prettyWidth is the default number of columns per Pretty block.
const prettyWidth = 100

// Pretty renders a three-row ASCII view of the alignment: the query row,
// an operator row ('|' match, '\' mismatch, '+' insertion, 'x' deletion,
// ' ' clip) and the text row, wrapped into blocks of width columns.
// A width of 0 or less selects the default of 100.
func (a *Alignment) Pretty(x, y []byte, width int) string {
	if width <= 0 {
		width = prettyWidth
	}
	var xRow, opRow, yRow []byte

	if len(a.Operations) > 0 {
		var xi, yi int
		if a.Mode != Custom {
			// Standard modes keep clipping implicit, render it here.
			xi, yi = a.XStart, a.YStart
			for k := 0; k < xi; k++ {
				xRow = append(xRow, x[k])
				opRow = append(opRow, ' ')
				yRow = append(yRow, ' ')
			}
			for k := 0; k < yi; k++ {
				yRow = append(yRow, y[k])
				opRow = append(opRow, ' ')
				xRow = append(xRow, ' ')
			}
		}

		for _, op := range a.Operations {
			switch op.Kind {
			case KindMatch:
				xRow = append(xRow, x[xi])
				opRow = append(opRow, '|')
				yRow = append(yRow, y[yi])
				xi++
				yi++
			case KindSubst:
				xRow = append(xRow, x[xi])
				opRow = append(opRow, '\\')
				yRow = append(yRow, y[yi])
				xi++
				yi++
			case KindIns:
				xRow = append(xRow, x[xi])
				opRow = append(opRow, '+')
				yRow = append(yRow, '-')
				xi++
			case KindDel:
				xRow = append(xRow, '-')
				opRow = append(opRow, 'x')
				yRow = append(yRow, y[yi])
				yi++
			case KindXClip:
				for k := 0; k < op.Len; k++ {
					xRow = append(xRow, x[xi])
					opRow = append(opRow, ' ')
					yRow = append(yRow, ' ')
					xi++
				}
			case KindYClip:
				for k := 0; k < op.Len; k++ {
					yRow = append(yRow, y[yi])
					opRow = append(opRow, ' ')
					xRow = append(xRow, ' ')
					yi++
				}
			}
		}

		if a.Mode != Custom {
			for k := xi; k < a.XLen; k++ {
				xRow = append(xRow, x[k])
				opRow = append(opRow, ' ')
				yRow = append(yRow, ' ')
			}
			for k := yi; k < a.YLen; k++ {
				yRow = append(yRow, y[k])
				opRow = append(opRow, ' ')
				xRow = append(xRow, ' ')
			}
		}
	}

	var sb strings.Builder
	for start := 0; start < len(xRow); start += width {
		end := min(start+width, len(xRow))
		sb.Write(xRow[start:end])
		sb.WriteByte('\n')
		sb.Write(opRow[start:end])
		sb.WriteByte('\n')
		sb.Write(yRow[start:end])
		sb.WriteByte('\n')
		sb.WriteByte('\n')
	}
	return sb.String()
}
