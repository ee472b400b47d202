package absint

import (
	"github.com/AnimatedRNG/frap/lang"
	"github.com/spakin/disjoint"

	L "github.com/AnimatedRNG/frap/analysis/lattice"
)

// site is an assignment occurring anywhere in the program, stripped of
// its control-flow context.
type site struct {
	x string
	e lang.Expr
}

// AnalyzeInsensitive computes a flow-insensitive analysis of the program:
// a single environment subsuming every concrete environment reachable
// during execution, starting from states the initial environment
// subsumes. Control flow is ignored entirely; only the program's
// assignments matter, and each is assumed to fire arbitrarily often in
// any order.
//
// Assignments are first grouped into clusters of variables connected
// through data dependencies, and each cluster is iterated to its own
// fixpoint. Clusters share no variables, so their fixpoints are
// independent and their order is irrelevant.
func AnalyzeInsensitive(prog lang.Cmd, init L.AbstractEnv, dom L.Domain) L.AbstractEnv {
	sites := []site{}
	lang.Assignments(prog, func(x string, e lang.Expr) {
		sites = append(sites, site{x, e})
	})

	env := init
	for _, cluster := range clusterSites(sites) {
		for stable := false; !stable; {
			prev := env
			for _, s := range cluster {
				v := EvaluateExpr(s.e, env, dom)
				env = env.MonoJoin(env.Update(s.x, v))
			}
			stable = env.Eq(prev)
		}
	}

	return env
}

// clusterSites partitions assignment sites into groups connected through
// shared variables: a site belongs with every site reading or writing a
// variable its own expression reads or its target writes. Sites keep
// their program order within a cluster.
func clusterSites(sites []site) [][]site {
	elems := map[string]*disjoint.Element{}
	elem := func(x string) *disjoint.Element {
		if e, found := elems[x]; found {
			return e
		}
		e := disjoint.NewElement()
		elems[x] = e
		return e
	}

	for _, s := range sites {
		vars := map[string]struct{}{}
		lang.ExprVars(s.e, vars)

		target := elem(s.x)
		for x := range vars {
			disjoint.Union(target, elem(x))
		}
	}

	order := []*disjoint.Element{}
	clusters := map[*disjoint.Element][]site{}
	for _, s := range sites {
		root := elem(s.x).Find()
		if _, found := clusters[root]; !found {
			order = append(order, root)
		}
		clusters[root] = append(clusters[root], s)
	}

	res := make([][]site, 0, len(order))
	for _, root := range order {
		res = append(res, clusters[root])
	}
	return res
}
