package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bioseq/align"
)

// TestOpValues checks that the unit operations compare with == and that
// clip constructors carry the clipped length.
func TestOpValues(t *testing.T) {
	assert.Equal(t, align.Op{Kind: align.KindMatch}, align.Match)
	assert.Equal(t, align.Op{Kind: align.KindSubst}, align.Subst)
	assert.Equal(t, align.Op{Kind: align.KindIns}, align.Ins)
	assert.Equal(t, align.Op{Kind: align.KindDel}, align.Del)
	assert.Equal(t, align.Op{Kind: align.KindXClip, Len: 3}, align.XClip(3))
	assert.Equal(t, align.Op{Kind: align.KindYClip, Len: 7}, align.YClip(7))

	assert.False(t, align.Match.IsClip())
	assert.False(t, align.Del.IsClip())
	assert.True(t, align.XClip(1).IsClip())
	assert.True(t, align.YClip(0).IsClip())
}

// TestOpString checks the debug rendering of operations.
func TestOpString(t *testing.T) {
	assert.Equal(t, "Match", align.Match.String())
	assert.Equal(t, "Subst", align.Subst.String())
	assert.Equal(t, "Ins", align.Ins.String())
	assert.Equal(t, "Del", align.Del.String())
	assert.Equal(t, "XClip(4)", align.XClip(4).String())
	assert.Equal(t, "YClip(2)", align.YClip(2).String())
}

// TestModeString checks the mode names.
func TestModeString(t *testing.T) {
	assert.Equal(t, "Local", align.Local.String())
	assert.Equal(t, "Semiglobal", align.Semiglobal.String())
	assert.Equal(t, "Global", align.Global.String())
	assert.Equal(t, "Custom", align.Custom.String())
}

// TestPath expands a semiglobal alignment into matrix coordinates.
func TestPath(t *testing.T) {
	aln := align.Alignment{
		Score:  3,
		XStart: 0, XEnd: 3, XLen: 3,
		YStart: 1, YEnd: 4, YLen: 4,
		Operations: []align.Op{align.Match, align.Match, align.Match},
		Mode:       align.Semiglobal,
	}
	want := []align.Step{
		{X: 1, Y: 2, Op: align.Match},
		{X: 2, Y: 3, Op: align.Match},
		{X: 3, Y: 4, Op: align.Match},
	}
	assert.Equal(t, want, aln.Path())
}

// TestPathCustom starts the walk from the sequence ends so that clip
// operations line up with the full lengths.
func TestPathCustom(t *testing.T) {
	aln := align.Alignment{
		XStart: 1, XEnd: 3, XLen: 3,
		YStart: 0, YEnd: 2, YLen: 2,
		Operations: []align.Op{align.XClip(1), align.Match, align.Match},
		Mode:       align.Custom,
	}
	want := []align.Step{
		{X: 1, Y: 0, Op: align.XClip(1)},
		{X: 2, Y: 1, Op: align.Match},
		{X: 3, Y: 2, Op: align.Match},
	}
	assert.Equal(t, want, aln.Path())
}

// TestPathEmpty returns nil for an alignment without operations.
func TestPathEmpty(t *testing.T) {
	var aln align.Alignment
	assert.Nil(t, aln.Path())
}

// TestFilterClips drops clip operations and keeps the rest in order.
func TestFilterClips(t *testing.T) {
	aln := align.Alignment{
		Operations: []align.Op{
			align.YClip(2), align.Match, align.Subst, align.Ins,
			align.Del, align.XClip(3),
		},
	}
	aln.FilterClips()
	assert.Equal(t,
		[]align.Op{align.Match, align.Subst, align.Ins, align.Del},
		aln.Operations)
}

// TestAlnLen checks the aligned-length helpers.
func TestAlnLen(t *testing.T) {
	aln := align.Alignment{XStart: 2, XEnd: 7, YStart: 1, YEnd: 9}
	assert.Equal(t, 5, aln.XAlnLen())
	assert.Equal(t, 8, aln.YAlnLen())
}

// TestPretty renders a semiglobal alignment with an implicit y prefix.
func TestPretty(t *testing.T) {
	aln := align.Alignment{
		XStart: 0, XEnd: 3, XLen: 3,
		YStart: 1, YEnd: 4, YLen: 4,
		Operations: []align.Op{align.Match, align.Match, align.Match},
		Mode:       align.Semiglobal,
	}
	got := aln.Pretty([]byte("GAT"), []byte("CGAT"), 100)
	assert.Equal(t, " GAT\n |||\nCGAT\n\n", got)
}

// TestPrettyOperators renders each operator glyph.
func TestPrettyOperators(t *testing.T) {
	// x = AGT aligned to y = ACT with an insertion and a deletion around it.
	aln := align.Alignment{
		XStart: 0, XEnd: 3, XLen: 3,
		YStart: 0, YEnd: 3, YLen: 3,
		Operations: []align.Op{
			align.Match, align.Subst, align.Ins, align.Del,
		},
		Mode: align.Global,
	}
	got := aln.Pretty([]byte("AGT"), []byte("ACT"), 100)
	assert.Equal(t, "AGT-\n|\\+x\nAC-T\n\n", got)
}

// TestPrettyWraps splits long alignments into fixed-width blocks.
func TestPrettyWraps(t *testing.T) {
	x := []byte("AAAA")
	aln := align.Alignment{
		XStart: 0, XEnd: 4, XLen: 4,
		YStart: 0, YEnd: 4, YLen: 4,
		Operations: []align.Op{
			align.Match, align.Match, align.Match, align.Match,
		},
		Mode: align.Global,
	}
	got := aln.Pretty(x, x, 2)
	assert.Equal(t, "AA\n||\nAA\n\nAA\n||\nAA\n\n", got)
}
