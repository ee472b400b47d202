package absint

import (
	"github.com/AnimatedRNG/frap/lang"

	L "github.com/AnimatedRNG/frap/analysis/lattice"
)

// AnalyzeSensitive computes a flow-sensitive analysis of the program:
// a map binding every reachable residual program to an environment
// subsuming all concrete states that may reach it. Environments at the
// same residual are combined with the domain's join, so on domains with
// unbounded ascending chains the loop may not converge; use
// AnalyzeSensitiveWidened for those.
func AnalyzeSensitive(prog lang.Cmd, dom L.Domain) L.Analysis {
	return analyzeSensitive(prog, dom, false)
}

// AnalyzeSensitiveWidened is the widening variant of AnalyzeSensitive.
// Environments at the same residual are combined with the domain's
// widening operator, making convergence independent of the domain's
// chain heights.
func AnalyzeSensitiveWidened(prog lang.Cmd, dom L.Domain) L.Analysis {
	return analyzeSensitive(prog, dom, true)
}

// analyzeSensitive drives the worklist fixpoint loop. The known map
// accumulates the best environment seen at every reached residual; the
// frontier holds the residuals produced by the previous round. Each
// round steps every frontier binding once, collects the produced
// bindings into a delta map, merges the delta into known and stops once
// a merge leaves known unchanged. The next frontier carries known's
// merged environments rather than the raw delta ones: the merge
// intersects key sets, so a variable first bound inside a loop is
// dropped at the loop head instead of riding the frontier forever.
// Only the frontier is stepped, not the whole known map: the combine
// operators are commutative and associative and the transition is
// monotone, so revisiting settled bindings cannot change the outcome.
func analyzeSensitive(prog lang.Cmd, dom L.Domain, widen bool) L.Analysis {
	lat := L.Create().Lattice().Analysis(dom)
	envLat := lat.Environment()

	combineEnv := L.AbstractEnv.MonoJoin
	combineMap := L.Analysis.MonoJoin
	if widen {
		combineEnv = L.AbstractEnv.MonoWiden
		combineMap = L.Analysis.MonoWiden
	}

	init := envLat.Bot().AbstractEnv()
	known := lat.Bot().Analysis().Update(prog, init)
	frontier := known

	for {
		delta := lat.Bot().Analysis()
		frontier.ForEach(func(residual lang.Cmd, env L.Element) {
			for _, s := range successors(residual, env.AbstractEnv(), dom) {
				if prev, found := delta.GetEnv(s.residual); found {
					delta = delta.Update(s.residual, combineEnv(prev, s.env))
				} else {
					delta = delta.Update(s.residual, s.env)
				}
			}
		})

		merged := combineMap(known, delta)
		if merged.Eq(known) {
			return known
		}
		known = merged

		frontier = lat.Bot().Analysis()
		delta.ForEach(func(residual lang.Cmd, _ L.Element) {
			env, _ := known.GetEnv(residual)
			frontier = frontier.Update(residual, env)
		})
	}
}
