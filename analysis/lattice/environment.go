package lattice

import (
	"sort"

	i "github.com/AnimatedRNG/frap/utils/indenter"

	"github.com/benbjohnson/immutable"
)

// AbstractEnv is a member of the abstract environment lattice: a map
// from variable names to values of an abstract domain. A variable absent
// from the environment is approximated as the domain's ⊤, so the empty
// environment constrains nothing.
//
// The subsumption order compares recorded facts, not the pointwise
// reading of absence: e1 ⊑ e2 holds when every variable tracked on the
// left is tracked on the right with a value that subsumes the left one.
// A fixpoint loop uses it to detect that a freshly computed environment
// adds no information beyond an accumulated one. Under this order the
// empty environment is the ⊥ element.
type AbstractEnv struct {
	baseMap[string]
}

// newAbstractEnv creates an empty environment for the given environment lattice.
func newAbstractEnv(lat *AbstractEnvLattice) AbstractEnv {
	return AbstractEnv{
		baseMap[string]{
			element{lat},
			immutable.NewMap[string, Element](nil),
		},
	}
}

// MakeAbstractEnv generates an environment factory converting a set of
// variable bindings to members of the given environment lattice.
func MakeAbstractEnv(lat *AbstractEnvLattice) func(bindings map[string]Element) AbstractEnv {
	return func(bindings map[string]Element) AbstractEnv {
		env := newAbstractEnv(lat)

		for x, v := range bindings {
			checkLatticeMatchThunked(lat.rng, v.Lattice(), func() string {
				return "environment binding " + x + " ↦ " + v.String()
			})
			env.mp = env.mp.Set(x, v)
		}

		return env
	}
}

// AbstractEnv safely converts an abstract environment.
func (e AbstractEnv) AbstractEnv() AbstractEnv {
	return e
}

// Domain yields the abstract domain the environment ranges over.
func (e AbstractEnv) Domain() Domain {
	return e.Lattice().AbstractEnv().rng
}

func (e AbstractEnv) String() string {
	if e.Size() == 0 {
		return "[]"
	}

	strs := []string{}
	e.ForEach(func(x string, v Element) {
		strs = append(strs, colorize.Key(x)+" ↦ "+v.String())
	})
	sort.Strings(strs)

	return i.Indenter().Start("[").NestStringsSep(",", strs...).End("]")
}

// GetOrTop retrieves the value bound to a variable, approximating
// untracked variables as ⊤.
func (e AbstractEnv) GetOrTop(x string) Element {
	return e.GetOrDefault(x, e.Domain().Top())
}

// Update returns an environment with an updated binding for the given
// variable. Performs dynamic lattice type checking.
func (e AbstractEnv) Update(x string, v Element) AbstractEnv {
	checkLatticeMatchThunked(e.Lattice().AbstractEnv().rng, v.Lattice(), func() string {
		return e.String() + "[ " + x + " ↦ " + v.String() + " ]"
	})
	e.baseMap = e.baseMap.Update(x, v)
	return e
}

// Eq computes m = o. Performs lattice dynamic type checking.
func (e1 AbstractEnv) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes m = o.
func (e1 AbstractEnv) eq(e2 Element) bool {
	if e2, ok := e2.(AbstractEnv); ok {
		return e1.baseMap.monoEq(e2.baseMap)
	}
	return false
}

// Leq computes m ⊑ o. Performs lattice dynamic type checking.
func (e1 AbstractEnv) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes m ⊑ o: every variable tracked by m must be tracked by o
// with a value that subsumes m's binding. Variables untracked by m are
// unconstrained.
func (e1 AbstractEnv) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case AbstractEnv:
		return e1.baseMap.monoLeq(e2.baseMap)
	default:
		panic(errInternal)
	}
}

// Geq computes m ⊒ o. Performs lattice dynamic type checking.
func (e1 AbstractEnv) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes m ⊒ o.
func (e1 AbstractEnv) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case AbstractEnv:
		return e2.baseMap.monoLeq(e1.baseMap)
	default:
		panic(errInternal)
	}
}

// Join computes m ⊔ o. Performs lattice dynamic type checking.
func (e1 AbstractEnv) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes m ⊔ o.
func (e1 AbstractEnv) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case AbstractEnv:
		return e1.MonoJoin(e2)
	default:
		panic(errInternal)
	}
}

// MonoJoin is a monomorphic variant of m ⊔ o for abstract environments.
// A variable remains tracked only when tracked in both operands; its
// values are joined in the domain. Dropping a variable tracked on just
// one side conservatively approximates it as ⊤, since absence already
// means ⊤ and ⊤ joined with anything is ⊤.
func (e1 AbstractEnv) MonoJoin(e2 AbstractEnv) AbstractEnv {
	return e1.merge(e2, func(dom Domain, v1, v2 Element) Element {
		return v1.join(v2)
	})
}

// MonoWiden is the widening variant of MonoJoin: values of variables
// tracked in both operands are widened in the domain.
func (e1 AbstractEnv) MonoWiden(e2 AbstractEnv) AbstractEnv {
	return e1.merge(e2, func(dom Domain, v1, v2 Element) Element {
		return dom.Widen(v1, v2)
	})
}

func (e1 AbstractEnv) merge(e2 AbstractEnv, combine func(Domain, Element, Element) Element) AbstractEnv {
	if e1.mp == e2.mp {
		return e1
	}

	dom := e1.Domain()
	res := newAbstractEnv(e1.Lattice().AbstractEnv())
	e1.ForEach(func(x string, v1 Element) {
		if v2, found := e2.Get(x); found {
			res.mp = res.mp.Set(x, combine(dom, v1, v2))
		}
	})

	return res
}

// Meet computes m ⊓ o.
func (e1 AbstractEnv) Meet(e2 Element) Element {
	panic(errUnsupportedOperation)
}

// meet computes m ⊓ o.
func (e1 AbstractEnv) meet(e2 Element) Element {
	panic(errUnsupportedOperation)
}
