package myers

// Myers is a pattern compiled for bit-parallel approximate matching
// over the word type T.
type Myers[T BitVec] struct {
	peq   [256]T
	bound T
	m     int
	tb    traceback[T]
}

// New compiles pattern into a Myers matcher. The pattern length must be
// between 1 and the bit width of T.
func New[T BitVec](pattern []byte, opts ...Option) (*Myers[T], error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	if m > width[T]() {
		return nil, ErrPatternTooLong
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	my := &Myers[T]{m: m, bound: T(1) << (m - 1)}
	for i, a := range pattern {
		mask := T(1) << i
		my.peq[a] |= mask
		for _, eq := range cfg.ambigs[a] {
			my.peq[eq] |= mask
		}
	}
	for _, w := range cfg.wildcards {
		my.peq[w] = ^T(0)
	}
	return my, nil
}

// PatternLen returns the length of the compiled pattern.
func (my *Myers[T]) PatternLen() int { return my.m }

// step advances the automaton by one text byte.
func (my *Myers[T]) step(s *state[T], a byte) {
	eq := my.peq[a]
	xv := eq | s.mv
	xh := ((eq&s.pv + s.pv) ^ s.pv) | eq

	ph := s.mv | ^(xh | s.pv)
	mh := s.pv & xh

	if ph&my.bound != 0 {
		s.dist++
	} else if mh&my.bound != 0 {
		s.dist--
	}

	ph <<= 1
	mh <<= 1
	s.pv = mh | ^(xv | ph)
	s.mv = ph & xv
}

// stepTrace advances the automaton and records the new state for
// traceback.
func (my *Myers[T]) stepTrace(s *state[T], a byte) {
	my.step(s, a)
	my.tb.add(*s)
}

// Distance returns the smallest edit distance of the pattern to any
// substring of text ending anywhere, i.e. the best semiglobal distance.
// For an empty text the result is the pattern length.
func (my *Myers[T]) Distance(text []byte) int {
	s := initState[T](my.m)
	dist := my.m
	for _, a := range text {
		my.step(&s, a)
		if s.dist < dist {
			dist = s.dist
		}
	}
	return dist
}

// FindAllEnd finds all matches of the pattern in text with at most
// maxDist errors, reported lazily as (end, distance) pairs with
// inclusive 0-based end positions. This involves no start-position
// search and is the fastest way to scan a text.
func (my *Myers[T]) FindAllEnd(text []byte, maxDist int) *Matches[T] {
	return &Matches[T]{
		my:      my,
		s:       initState[T](my.m),
		text:    text,
		maxDist: maxDist,
	}
}

// FindAll finds all matches of the pattern in text with at most maxDist
// errors, with start positions and alignment paths available for the
// current hit. The traceback window covers m+maxDist text positions, so
// only the most recent hit can be queried; use FindAllRemember to query
// arbitrary searched positions later.
func (my *Myers[T]) FindAll(text []byte, maxDist int) *FullMatches[T] {
	s := initState[T](my.m)
	my.tb.init(s, my.m+maxDist, my.m)
	return &FullMatches[T]{my: my, s: s, text: text, maxDist: maxDist}
}

// FindAllRemember is like FindAll, but sizes the traceback buffer to
// the whole text so that HitAt, PathAt and AlignmentAt work for any
// already searched end position.
func (my *Myers[T]) FindAllRemember(text []byte, maxDist int) *FullMatches[T] {
	s := initState[T](my.m)
	my.tb.init(s, len(text)+maxDist, my.m)
	return &FullMatches[T]{my: my, s: s, text: text, maxDist: maxDist}
}
