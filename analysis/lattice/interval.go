package lattice

import (
	"strconv"
)

// Interval is an interval over the natural numbers and a member of the
// interval lattice. Lower bounds are always finite; the upper bound may
// be ∞. An interval whose finite upper bound lies below its lower bound
// is impossible: it represents no number at all. The canonical
// impossible interval is [1, 0].
type Interval struct {
	element
	low  FiniteBound
	high Bound
}

// Interval creates an interval with a possibly infinite upper bound.
func (elementFactory) Interval(low int, high Bound) Interval {
	return Interval{low: FiniteBound(low), high: high}
}

// IntervalFinite creates an interval with finite bounds.
func (elementFactory) IntervalFinite(low int, high int) Interval {
	return Interval{
		low:  FiniteBound(low),
		high: FiniteBound(high),
	}
}

// Lattice retrieves the interval lattice for any interval.
func (Interval) Lattice() Lattice {
	return intervalLattice
}

func (e Interval) String() string {
	if e.IsImpossible() {
		return colorize.Element("⊥")
	}
	return "[" + e.low.String() + ", " + e.high.String() + "]"
}

// Interval safely converts an interval.
func (e Interval) Interval() Interval {
	return e
}

// IsImpossible checks whether the interval represents no number.
func (e Interval) IsImpossible() bool {
	h, ok := e.high.(FiniteBound)
	return ok && e.low > h
}

// IsBot checks that the interval is the canonical impossible interval [1, 0].
func (e Interval) IsBot() bool {
	return e == intervalLattice.Bot().Interval()
}

// IsTop checks that the interval is equal to ⊤ = [0, ∞].
func (e Interval) IsTop() bool {
	return e == intervalLattice.Top().Interval()
}

// Low returns the lower bound.
func (e Interval) Low() int {
	return (int)(e.low)
}

// High returns the upper bound as an integer, if finite, and panics otherwise.
func (e Interval) High() int {
	if e.high.IsInfinite() {
		panic("interval " + e.String() + " does not have a finite upper bound")
	}
	return (int)(e.high.(FiniteBound))
}

// HighBound returns the upper bound.
func (e Interval) HighBound() Bound {
	return e.high
}

// Eq computes m = o. Performs lattice dynamic type checking.
func (e1 Interval) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes m = o.
func (e1 Interval) eq(e2 Element) bool {
	return e1.leq(e2) && e1.geq(e2)
}

// Leq computes m ⊑ o. Performs lattice dynamic type checking.
func (e1 Interval) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes m ⊑ o.
func (e1 Interval) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Interval:
		return e1.low >= e2.low && e1.high.Leq(e2.high)
	default:
		panic(errInternal)
	}
}

// Geq computes m ⊒ o. Performs lattice dynamic type checking.
func (e1 Interval) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes m ⊒ o.
func (e1 Interval) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Interval:
		return e1.low <= e2.low && e1.high.Geq(e2.high)
	default:
		panic(errInternal)
	}
}

// Join computes m ⊔ o. Performs lattice dynamic type checking.
func (e1 Interval) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes m ⊔ o.
// The resulting interval takes the lowest of the lower bounds,
// and the highest of the upper bounds.
func (e1 Interval) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case Interval:
		low := e1.low
		if e2.low < low {
			low = e2.low
		}
		return Interval{low: low, high: e1.high.Max(e2.high)}
	default:
		panic(errInternal)
	}
}

// Meet computes m ⊓ o. Performs lattice dynamic type checking.
func (e1 Interval) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes m ⊓ o.
// The resulting interval takes the highest of the lower bounds,
// and the lowest of the upper bounds, bottoming out when they cross.
func (e1 Interval) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case Interval:
		low := e1.low
		if e2.low > low {
			low = e2.low
		}
		res := Interval{low: low, high: e1.high.Min(e2.high)}
		if res.IsImpossible() {
			return intervalLattice.Bot()
		}
		return res
	default:
		panic(errInternal)
	}
}

// Bound is implemented by all interval lattice bounds, i.e. any
// FiniteBound value and PlusInfinity. Lower bounds of intervals over the
// naturals are always finite; only upper bounds may be infinite.
type Bound interface {
	String() string

	// IsInfinite checks whether the interval bound is infinite.
	IsInfinite() bool

	// BINARY RELATIONS

	// Eq checks for interval bound equality.
	Eq(Bound) bool
	// Leq computes b1 ≤ b2. The semantics is c ≤ ∞, where c ∈ ℕ.
	Leq(Bound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c, where c ∈ ℕ.
	Geq(Bound) bool
	// Lt computes b1 < b2. The semantics is c < ∞, where c ∈ ℕ.
	Lt(Bound) bool

	// BINARY OPERATIONS

	// Plus computes b1 + b2. Any infinite operand makes the sum ∞.
	Plus(Bound) Bound

	// Minus computes the truncating difference b1 - b2:
	//
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 - b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℕ  |  ∈  ℕ  | max(0, -) |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℕ  |    ∞   |     0     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |  ∀ b2  |     ∞     |
	// 	 -----------------------------
	Minus(Bound) Bound

	// Mult computes b1 * b2. Any infinite operand makes the product ∞;
	// 0 * ∞ is approximated as ∞.
	Mult(Bound) Bound

	// Max computes max(b1, b2).
	Max(Bound) Bound

	// Min computes min(b1, b2).
	Min(Bound) Bound
}

type (
	// FiniteBound is used to represent finite limits of an interval value.
	FiniteBound int
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
)

// IsInfinite is false for the finite bound.
func (FiniteBound) IsInfinite() bool {
	return false
}

func (b FiniteBound) String() string {
	return colorize.Element(strconv.Itoa((int)(b)))
}

// Eq compares for equality with another bound. Two finite bounds
// are equal if their underlying values are equal.
func (b1 FiniteBound) Eq(b2 Bound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 == b2
	}
	return false
}

// Leq computes b1 ≤ b2. The semantics is c ≤ ∞, where c ∈ ℕ.
func (b1 FiniteBound) Leq(b2 Bound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 <= b2
	case PlusInfinity:
		return true
	}
	return false
}

// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c, where c ∈ ℕ.
func (b1 FiniteBound) Geq(b2 Bound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 >= b2
	case PlusInfinity:
		return false
	}
	return false
}

// Lt computes b1 < b2. The semantics is c < ∞, where c ∈ ℕ.
func (b1 FiniteBound) Lt(b2 Bound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 < b2
	case PlusInfinity:
		return true
	}
	return false
}

// Plus computes b1 + b2.
func (b1 FiniteBound) Plus(b2 Bound) Bound {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 + b2
	case PlusInfinity:
		return PlusInfinity{}
	}
	return nil
}

// Minus computes the truncating difference b1 - b2.
func (b1 FiniteBound) Minus(b2 Bound) Bound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b1 < b2 {
			return FiniteBound(0)
		}
		return b1 - b2
	case PlusInfinity:
		return FiniteBound(0)
	}
	return nil
}

// Mult computes b1 * b2. 0 * ∞ is approximated as ∞.
func (b1 FiniteBound) Mult(b2 Bound) Bound {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 * b2
	case PlusInfinity:
		return PlusInfinity{}
	}
	return nil
}

// Max computes max(b1, b2).
func (b1 FiniteBound) Max(b2 Bound) Bound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b1 < b2 {
			return b2
		}
		return b1
	case PlusInfinity:
		return b2
	}
	return nil
}

// Min computes min(b1, b2).
func (b1 FiniteBound) Min(b2 Bound) Bound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b1 < b2 {
			return b1
		}
		return b2
	case PlusInfinity:
		return b1
	}
	return nil
}

// IsInfinite is true for ∞.
func (PlusInfinity) IsInfinite() bool {
	return true
}

func (PlusInfinity) String() string {
	return colorize.Element("∞")
}

// Eq checks for interval bound equality.
func (PlusInfinity) Eq(b2 Bound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return true
	}
	return false
}

// Leq computes ∞ ≤ b.
func (PlusInfinity) Leq(b2 Bound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return true
	}
	return false
}

// Geq computes ∞ ≥ b. It is always true as ∞ is the largest possible bound.
func (PlusInfinity) Geq(Bound) bool {
	return true
}

// Lt computes ∞ < b. It is always false as ∞ is the largest possible bound.
func (PlusInfinity) Lt(Bound) bool {
	return false
}

// Plus computes ∞ + b, which is always ∞.
func (PlusInfinity) Plus(Bound) Bound {
	return PlusInfinity{}
}

// Minus computes ∞ - b, which is always ∞ as b is at most ∞.
func (PlusInfinity) Minus(Bound) Bound {
	return PlusInfinity{}
}

// Mult computes ∞ * b, which is always ∞; ∞ * 0 is approximated as ∞.
func (PlusInfinity) Mult(Bound) Bound {
	return PlusInfinity{}
}

// Max computes max(∞, b), which is always ∞.
func (PlusInfinity) Max(Bound) Bound {
	return PlusInfinity{}
}

// Min computes min(∞, b), which is always b.
func (PlusInfinity) Min(b2 Bound) Bound {
	return b2
}
