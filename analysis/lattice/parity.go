package lattice

// Parity is a member of the parity lattice:
//
//	  ⊤
//	 / \
//	even odd
type Parity uint8

const (
	parityEven = Parity(iota)
	parityOdd
	parityEither
)

// Even yields the parity of even numbers.
func (elementFactory) Even() Parity {
	return parityEven
}

// Odd yields the parity of odd numbers.
func (elementFactory) Odd() Parity {
	return parityOdd
}

// Either yields the parity approximating all numbers. It is the ⊤
// element of the parity lattice.
func (elementFactory) Either() Parity {
	return parityEither
}

// Lattice retrieves the parity lattice for any parity.
func (Parity) Lattice() Lattice {
	return parityLattice
}

func (e Parity) String() string {
	switch e {
	case parityEven:
		return colorize.Element("even")
	case parityOdd:
		return colorize.Element("odd")
	case parityEither:
		return colorize.Element("⊤")
	}
	panic(errInternal)
}

// Parity safely converts a parity.
func (e Parity) Parity() Parity {
	return e
}

// Eq computes m = o. Performs lattice dynamic type checking.
func (e1 Parity) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes m = o.
func (e1 Parity) eq(e2 Element) bool {
	if e2, ok := e2.(Parity); ok {
		return e1 == e2
	}
	return false
}

// Leq computes m ⊑ o. Performs lattice dynamic type checking.
func (e1 Parity) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes m ⊑ o.
func (e1 Parity) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Parity:
		return e1 == e2 || e2 == parityEither
	default:
		panic(errInternal)
	}
}

// Geq computes m ⊒ o. Performs lattice dynamic type checking.
func (e1 Parity) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes m ⊒ o.
func (e1 Parity) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Parity:
		return e1 == e2 || e1 == parityEither
	default:
		panic(errInternal)
	}
}

// Join computes m ⊔ o. Performs lattice dynamic type checking.
func (e1 Parity) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes m ⊔ o. Distinct parities join to ⊤.
func (e1 Parity) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case Parity:
		if e1 == e2 {
			return e1
		}
		return parityEither
	default:
		panic(errInternal)
	}
}

// Meet computes m ⊓ o. Performs lattice dynamic type checking.
func (e1 Parity) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes m ⊓ o. The parity lattice has no ⊥, so the meet of even
// and odd is undefined.
func (e1 Parity) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case Parity:
		switch {
		case e1 == e2:
			return e1
		case e1 == parityEither:
			return e2
		case e2 == parityEither:
			return e1
		}
		panic(errUnsupportedOperation)
	default:
		panic(errInternal)
	}
}

func (Parity) Interval() Interval {
	panic(errUnsupportedTypeConversion)
}

func (Parity) AbstractEnv() AbstractEnv {
	panic(errUnsupportedTypeConversion)
}

func (Parity) Analysis() Analysis {
	panic(errUnsupportedTypeConversion)
}
