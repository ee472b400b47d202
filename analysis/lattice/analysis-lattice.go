package lattice

// AnalysisLattice represents the lattice of analysis results: maps from
// residual programs to abstract environments over a given domain.
type AnalysisLattice struct {
	lattice
	rng *AbstractEnvLattice
}

// Analysis creates the analysis lattice over the given abstract domain.
func (latticeFactory) Analysis(dom Domain) *AnalysisLattice {
	return &AnalysisLattice{rng: latFact.AbstractEnv(dom)}
}

// Top panics: the ⊤ analysis would have to map every syntactically valid
// residual program, which is not representable as a finite map.
func (l *AnalysisLattice) Top() Element {
	panic(errUnsupportedOperation)
}

// Bot yields the empty analysis: no residual program has been reached.
func (l *AnalysisLattice) Bot() Element {
	return newAnalysis(l)
}

func (l *AnalysisLattice) String() string {
	return colorize.Lattice("Cmd") + " → " + "(" + l.rng.String() + ")"
}

// Eq checks for equality with another lattice.
func (l1 *AnalysisLattice) Eq(l2 Lattice) bool {
	if l1 == l2 {
		return true
	}
	if l2, ok := l2.(*AnalysisLattice); ok {
		return l1.rng.Eq(l2.rng)
	}
	return false
}

// Analysis safely converts the analysis lattice to AnalysisLattice.
func (l *AnalysisLattice) Analysis() *AnalysisLattice {
	return l
}

// Environment yields the environment lattice the analysis ranges over.
func (l *AnalysisLattice) Environment() *AbstractEnvLattice {
	return l.rng
}
