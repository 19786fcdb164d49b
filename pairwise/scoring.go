package pairwise

import (
	"errors"
	"math"
)

// MinScore is the "negative infinity" of the scoring system. It is far
// enough from the int minimum that gap and clip penalties can be added
// to it without overflow. A clip penalty of MinScore forbids the clip.
const MinScore = math.MinInt32 / 2

// Construction errors returned by New and WithScoring.
var (
	// ErrNilMatchFunc is returned when no substitution function is given.
	ErrNilMatchFunc = errors.New("pairwise: match function must not be nil")
	// ErrPositiveGapOpen is returned for a gap open penalty above zero.
	ErrPositiveGapOpen = errors.New("pairwise: gap open penalty must be <= 0")
	// ErrPositiveGapExtend is returned for a gap extend penalty above zero.
	ErrPositiveGapExtend = errors.New("pairwise: gap extend penalty must be <= 0")
	// ErrPositiveClip is returned for a clip penalty above zero.
	ErrPositiveClip = errors.New("pairwise: clip penalty must be <= 0")
)

// MatchFunc scores the substitution of text byte b for query byte a.
type MatchFunc func(a, b byte) int

// Scoring bundles the penalties of an alignment. Penalties are zero or
// negative; MatchFn may return any score. The zero value is not usable,
// build Scoring values with NewScoring and the With* helpers.
type Scoring struct {
	GapOpen     int
	GapExtend   int
	MatchFn     MatchFunc
	XClipPrefix int
	XClipSuffix int
	YClipPrefix int
	YClipSuffix int
}

// NewScoring returns a Scoring with the given gap penalties and
// substitution function, with all clips forbidden (MinScore).
func NewScoring(gapOpen, gapExtend int, matchFn MatchFunc) Scoring {
	return Scoring{
		GapOpen:     gapOpen,
		GapExtend:   gapExtend,
		MatchFn:     matchFn,
		XClipPrefix: MinScore,
		XClipSuffix: MinScore,
		YClipPrefix: MinScore,
		YClipSuffix: MinScore,
	}
}

// WithXClip returns a copy of s with both x clip penalties set to pen.
func (s Scoring) WithXClip(pen int) Scoring {
	s.XClipPrefix = pen
	s.XClipSuffix = pen
	return s
}

// WithYClip returns a copy of s with both y clip penalties set to pen.
func (s Scoring) WithYClip(pen int) Scoring {
	s.YClipPrefix = pen
	s.YClipSuffix = pen
	return s
}

// WithClips returns a copy of s with all four clip penalties replaced.
func (s Scoring) WithClips(xPrefix, xSuffix, yPrefix, ySuffix int) Scoring {
	s.XClipPrefix = xPrefix
	s.XClipSuffix = xSuffix
	s.YClipPrefix = yPrefix
	s.YClipSuffix = ySuffix
	return s
}

// Validate reports the first violated constraint, or nil.
func (s Scoring) Validate() error {
	if s.MatchFn == nil {
		return ErrNilMatchFunc
	}
	if s.GapOpen > 0 {
		return ErrPositiveGapOpen
	}
	if s.GapExtend > 0 {
		return ErrPositiveGapExtend
	}
	if s.XClipPrefix > 0 || s.XClipSuffix > 0 || s.YClipPrefix > 0 || s.YClipSuffix > 0 {
		return ErrPositiveClip
	}
	return nil
}
