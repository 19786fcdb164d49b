package align

import "fmt"

// OpKind discriminates the edit operation variants.
type OpKind uint8

const (
	// KindMatch consumes one byte of x and one equal byte of y.
	KindMatch OpKind = iota
	// KindSubst consumes one byte of x and one differing byte of y.
	KindSubst
	// KindIns consumes one byte of x only (insertion relative to y).
	KindIns
	// KindDel consumes one byte of y only (deletion relative to x).
	KindDel
	// KindXClip skips Len bytes of x at an alignment boundary.
	KindXClip
	// KindYClip skips Len bytes of y at an alignment boundary.
	KindYClip
)

// Op is a single alignment operation. Non-clip operations always have
// Len == 0, so Op values compare with == and the package-level Match,
// Subst, Ins and Del values can be used directly in expected slices.
type Op struct {
	Kind OpKind
	Len  int
}

// The four unit operations.
var (
	Match = Op{Kind: KindMatch}
	Subst = Op{Kind: KindSubst}
	Ins   = Op{Kind: KindIns}
	Del   = Op{Kind: KindDel}
)

// XClip returns a clip of n bytes of x.
func XClip(n int) Op { return Op{Kind: KindXClip, Len: n} }

// YClip returns a clip of n bytes of y.
func YClip(n int) Op { return Op{Kind: KindYClip, Len: n} }

// IsClip reports whether o is an XClip or YClip operation.
func (o Op) IsClip() bool { return o.Kind == KindXClip || o.Kind == KindYClip }

// String renders the operation in a compact debug form.
func (o Op) String() string {
	switch o.Kind {
	case KindMatch:
		return "Match"
	case KindSubst:
		return "Subst"
	case KindIns:
		return "Ins"
	case KindDel:
		return "Del"
	case KindXClip:
		return fmt.Sprintf("XClip(%d)", o.Len)
	case KindYClip:
		return fmt.Sprintf("YClip(%d)", o.Len)
	}
	return fmt.Sprintf("Op(%d)", o.Kind)
}

// Mode records which boundary conditions an alignment was computed under.
type Mode uint8

const (
	// Local alignments may clip both sequences at both ends for free.
	Local Mode = iota
	// Semiglobal alignments cover all of x and may clip y for free.
	Semiglobal
	// Global alignments cover all of x and all of y.
	Global
	// Custom alignments use caller-provided clip penalties.
	Custom
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Local:
		return "Local"
	case Semiglobal:
		return "Semiglobal"
	case Global:
		return "Global"
	case Custom:
		return "Custom"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}
