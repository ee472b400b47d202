package lattice

// ParityLattice represents the three element parity lattice. It is a
// finite domain: plain join suffices for convergence.
type ParityLattice struct {
	lattice
}

// parityLattice is a singleton instantiation of the parity lattice.
var parityLattice = &ParityLattice{}

// Parity yields the parity lattice.
func (latticeFactory) Parity() *ParityLattice {
	return parityLattice
}

// Top yields ⊤, the parity of all numbers.
func (*ParityLattice) Top() Element {
	return parityEither
}

// Bot panics: the parity lattice has no ⊥ element.
func (*ParityLattice) Bot() Element {
	panic(errUnsupportedOperation)
}

func (*ParityLattice) String() string {
	return colorize.Lattice("Parity")
}

// Eq checks for equality with another lattice.
func (l1 *ParityLattice) Eq(l2 Lattice) bool {
	_, ok := l2.(*ParityLattice)
	return ok
}

// Parity safely converts the parity lattice to ParityLattice.
func (l1 *ParityLattice) Parity() *ParityLattice {
	return l1
}

// Const abstracts a concrete number to its parity.
func (*ParityLattice) Const(n int) Element {
	if n%2 == 0 {
		return parityEven
	}
	return parityOdd
}

// Plus computes the abstract sum of two parities:
//
//	.---------------------------.
//	|   p1   |   p2   | p1 + p2 |
//	|========|========|=========|
//	|  even  |  even  |  even   |
//	|--------|--------|---------|
//	|  odd   |  odd   |  even   |
//	|--------|--------|---------|
//	|  even  |  odd   |  odd    |
//	|--------|--------|---------|
//	|   ⊤    |  ∀ p2  |   ⊤     |
//	 ---------------------------
func (*ParityLattice) Plus(a, b Element) Element {
	p1, p2 := a.Parity(), b.Parity()
	switch {
	case p1 == parityEither || p2 == parityEither:
		return parityEither
	case p1 == p2:
		return parityEven
	default:
		return parityOdd
	}
}

// Minus computes the abstract truncating difference of two parities.
// Truncation at zero can flip the parity of the result, so every operand
// pair other than (even, even) is approximated by ⊤.
func (*ParityLattice) Minus(a, b Element) Element {
	p1, p2 := a.Parity(), b.Parity()
	if p1 == parityEven && p2 == parityEven {
		return parityEven
	}
	return parityEither
}

// Times computes the abstract product of two parities. An even operand
// makes the product even regardless of the other operand.
func (*ParityLattice) Times(a, b Element) Element {
	p1, p2 := a.Parity(), b.Parity()
	switch {
	case p1 == parityEven || p2 == parityEven:
		return parityEven
	case p1 == parityOdd && p2 == parityOdd:
		return parityOdd
	default:
		return parityEither
	}
}

// Widen delegates to join; the parity lattice has finite height.
func (*ParityLattice) Widen(a, b Element) Element {
	return a.Parity().join(b)
}
