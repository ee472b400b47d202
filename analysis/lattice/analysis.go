package lattice

import (
	"sort"

	"github.com/AnimatedRNG/frap/lang"
	"github.com/AnimatedRNG/frap/utils"
	i "github.com/AnimatedRNG/frap/utils/indenter"
)

// Analysis is a member of the analysis lattice: a map from residual
// programs to the abstract environment describing every concrete state
// that may reach them. Residual programs are compared structurally, so
// two fragments denote the same program point iff they are equal.
//
// A residual absent from the map has not been reached. The map grows
// keys and strengthens values monotonically during a fixpoint loop.
type Analysis struct {
	baseMap[lang.Cmd]
}

// newAnalysis creates an empty analysis for the given analysis lattice.
func newAnalysis(lat *AnalysisLattice) Analysis {
	return Analysis{
		baseMap[lang.Cmd]{
			element{lat},
			utils.NewImmMap[lang.Cmd, Element](),
		},
	}
}

// Analysis safely converts an analysis.
func (a Analysis) Analysis() Analysis {
	return a
}

func (a Analysis) String() string {
	if a.Size() == 0 {
		return a.Lattice().String() + ": empty"
	}

	strs := []string{}
	a.ForEach(func(c lang.Cmd, env Element) {
		strs = append(strs, colorize.Const(c.String())+" ↦ "+env.String())
	})
	sort.Strings(strs)

	return i.Indenter().Start(a.Lattice().String() + ": {").NestStringsSep(",", strs...).End("}")
}

// GetEnv retrieves the environment recorded at the given residual program.
func (a Analysis) GetEnv(c lang.Cmd) (AbstractEnv, bool) {
	if v, found := a.Get(c); found {
		return v.AbstractEnv(), true
	}
	return AbstractEnv{}, false
}

// Update returns an analysis with an updated binding for the given
// residual program. Performs dynamic lattice type checking.
func (a Analysis) Update(c lang.Cmd, env AbstractEnv) Analysis {
	checkLatticeMatchThunked(a.Lattice().Analysis().rng, env.Lattice(), func() string {
		return a.String() + "[ " + c.String() + " ↦ " + env.String() + " ]"
	})
	a.baseMap = a.baseMap.Update(c, env)
	return a
}

// WeakUpdate merges a binding into the analysis: an environment already
// recorded at the residual is joined with the new one.
func (a Analysis) WeakUpdate(c lang.Cmd, env AbstractEnv) Analysis {
	if prev, found := a.GetEnv(c); found {
		return a.Update(c, prev.MonoJoin(env))
	}
	return a.Update(c, env)
}

// WeakUpdateWiden is the widening variant of WeakUpdate.
func (a Analysis) WeakUpdateWiden(c lang.Cmd, env AbstractEnv) Analysis {
	if prev, found := a.GetEnv(c); found {
		return a.Update(c, prev.MonoWiden(env))
	}
	return a.Update(c, env)
}

// Eq computes m = o. Performs lattice dynamic type checking.
func (a1 Analysis) Eq(a2 Element) bool {
	checkLatticeMatch(a1.Lattice(), a2.Lattice(), "=")
	return a1.eq(a2)
}

// eq computes m = o.
func (a1 Analysis) eq(a2 Element) bool {
	if a2, ok := a2.(Analysis); ok {
		return a1.baseMap.monoEq(a2.baseMap)
	}
	return false
}

// Leq computes m ⊑ o. Performs lattice dynamic type checking.
func (a1 Analysis) Leq(a2 Element) bool {
	checkLatticeMatch(a1.Lattice(), a2.Lattice(), "⊑")
	return a1.leq(a2)
}

// leq computes m ⊑ o: every residual present on the left must be present
// on the right with a subsuming environment.
func (a1 Analysis) leq(a2 Element) bool {
	switch a2 := a2.(type) {
	case Analysis:
		return a1.baseMap.monoLeq(a2.baseMap)
	default:
		panic(errInternal)
	}
}

// Geq computes m ⊒ o. Performs lattice dynamic type checking.
func (a1 Analysis) Geq(a2 Element) bool {
	checkLatticeMatch(a1.Lattice(), a2.Lattice(), "⊒")
	return a1.geq(a2)
}

// geq computes m ⊒ o.
func (a1 Analysis) geq(a2 Element) bool {
	switch a2 := a2.(type) {
	case Analysis:
		return a2.baseMap.monoLeq(a1.baseMap)
	default:
		panic(errInternal)
	}
}

// Join computes m ⊔ o. Performs lattice dynamic type checking.
func (a1 Analysis) Join(a2 Element) Element {
	checkLatticeMatch(a1.Lattice(), a2.Lattice(), "⊔")
	return a1.join(a2)
}

// join computes m ⊔ o.
func (a1 Analysis) join(a2 Element) Element {
	switch a2 := a2.(type) {
	case Analysis:
		return a1.MonoJoin(a2)
	default:
		panic(errInternal)
	}
}

// MonoJoin is a monomorphic variant of m ⊔ o for analyses. Residuals
// present in either operand are kept; environments recorded in both are
// joined pointwise.
func (a1 Analysis) MonoJoin(a2 Analysis) Analysis {
	return a1.merge(a2, AbstractEnv.MonoJoin)
}

// MonoWiden is the widening variant of MonoJoin.
func (a1 Analysis) MonoWiden(a2 Analysis) Analysis {
	return a1.merge(a2, AbstractEnv.MonoWiden)
}

func (a1 Analysis) merge(a2 Analysis, combine func(AbstractEnv, AbstractEnv) AbstractEnv) Analysis {
	if a1.mp == a2.mp || a2.Size() == 0 {
		return a1
	}

	a2.ForEach(func(c lang.Cmd, v Element) {
		env := v.AbstractEnv()
		if prev, found := a1.GetEnv(c); found {
			a1.baseMap = a1.baseMap.Update(c, combine(prev, env))
		} else {
			a1.baseMap = a1.baseMap.Update(c, env)
		}
	})

	return a1
}

// Meet computes m ⊓ o.
func (a1 Analysis) Meet(a2 Element) Element {
	panic(errUnsupportedOperation)
}

// meet computes m ⊓ o.
func (a1 Analysis) meet(a2 Element) Element {
	panic(errUnsupportedOperation)
}
