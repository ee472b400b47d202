package lattice

// IntervalLattice represents the lattice of intervals over the natural
// numbers. It has unbounded ascending chains, so flow-sensitive analyses
// over it must converge through Widen.
type IntervalLattice struct {
	lattice
}

// intervalLattice is a singleton instantiation of the interval lattice.
var intervalLattice = &IntervalLattice{}

// Interval yields the interval lattice.
func (latticeFactory) Interval() *IntervalLattice {
	return intervalLattice
}

// Top yields [0, ∞].
func (*IntervalLattice) Top() Element {
	return Interval{
		low:  FiniteBound(0),
		high: PlusInfinity{},
	}
}

// Bot yields the canonical impossible interval [1, 0].
func (*IntervalLattice) Bot() Element {
	return Interval{
		low:  FiniteBound(1),
		high: FiniteBound(0),
	}
}

func (*IntervalLattice) String() string {
	return "[" + colorize.Lattice("ℕ") +
		", " + colorize.Lattice("ℕ") + "]"
}

// Eq checks for equality with another lattice.
func (l1 *IntervalLattice) Eq(l2 Lattice) bool {
	_, ok := l2.(*IntervalLattice)
	return ok
}

// Interval safely converts the interval lattice to IntervalLattice.
func (l1 *IntervalLattice) Interval() *IntervalLattice {
	return l1
}

// Const abstracts a concrete number to the singleton interval [n, n].
func (*IntervalLattice) Const(n int) Element {
	return Interval{
		low:  FiniteBound(n),
		high: FiniteBound(n),
	}
}

// Plus computes the abstract sum of two intervals, combining the bounds
// pointwise. An impossible operand makes the result impossible.
func (l *IntervalLattice) Plus(a, b Element) Element {
	x, y := a.Interval(), b.Interval()
	if x.IsImpossible() || y.IsImpossible() {
		return l.Bot()
	}
	return Interval{
		low:  x.low + y.low,
		high: x.high.Plus(y.high),
	}
}

// Minus computes the abstract truncating difference of two intervals.
// The lowest possible difference subtracts the largest possible
// subtrahend from the smallest possible minuend, and conversely for the
// highest; both bounds truncate at zero. An impossible operand makes the
// result impossible.
func (l *IntervalLattice) Minus(a, b Element) Element {
	x, y := a.Interval(), b.Interval()
	if x.IsImpossible() || y.IsImpossible() {
		return l.Bot()
	}
	low := FiniteBound(0)
	if yh, ok := y.high.(FiniteBound); ok && x.low > yh {
		low = x.low - yh
	}
	return Interval{
		low:  low,
		high: x.high.Minus(y.low),
	}
}

// Times computes the abstract product of two intervals, combining the
// bounds pointwise. An impossible operand makes the result impossible.
func (l *IntervalLattice) Times(a, b Element) Element {
	x, y := a.Interval(), b.Interval()
	if x.IsImpossible() || y.IsImpossible() {
		return l.Bot()
	}
	return Interval{
		low:  x.low * y.low,
		high: x.high.Mult(y.high),
	}
}

// Widen computes an upper bound of a and b that converges in finitely
// many steps: a bound is kept when the old one already dominates, and
// otherwise jumps straight to the extreme (0 below, ∞ above) instead of
// taking the tighter join. Each bound can therefore change at most once
// along any widening chain, so an interval widens at most twice before
// stabilizing.
func (l *IntervalLattice) Widen(a, b Element) Element {
	x, y := a.Interval(), b.Interval()
	if x.IsImpossible() {
		return y
	} else if y.IsImpossible() {
		return x
	}

	low := FiniteBound(0)
	if x.low <= y.low {
		low = x.low
	}

	var high Bound = PlusInfinity{}
	if x.high.Geq(y.high) {
		high = x.high
	}

	return Interval{low: low, high: high}
}
