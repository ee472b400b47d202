package lattice

// AbstractEnvLattice represents the lattice of abstract environments
// ranging over a given abstract domain.
type AbstractEnvLattice struct {
	lattice
	rng Domain
}

// AbstractEnv creates the abstract environment lattice over the given domain.
func (latticeFactory) AbstractEnv(dom Domain) *AbstractEnvLattice {
	return &AbstractEnvLattice{rng: dom}
}

// Top panics: the ⊤ environment would have to track every possible
// variable name, which is not representable as a finite map.
func (l *AbstractEnvLattice) Top() Element {
	panic(errUnsupportedOperation)
}

// Bot yields the empty environment: it records no facts, so under the
// subsumption order it is below every environment.
func (l *AbstractEnvLattice) Bot() Element {
	return newAbstractEnv(l)
}

func (l *AbstractEnvLattice) String() string {
	return colorize.Lattice("Var") + " → " + l.rng.String()
}

// Eq checks for equality with another lattice.
func (l1 *AbstractEnvLattice) Eq(l2 Lattice) bool {
	if l1 == l2 {
		return true
	}
	if l2, ok := l2.(*AbstractEnvLattice); ok {
		return l1.rng.Eq(l2.rng)
	}
	return false
}

// AbstractEnv safely converts the environment lattice to AbstractEnvLattice.
func (l *AbstractEnvLattice) AbstractEnv() *AbstractEnvLattice {
	return l
}

// Domain yields the abstract domain the lattice ranges over.
func (l *AbstractEnvLattice) Domain() Domain {
	return l.rng
}
