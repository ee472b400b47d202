package absint

import (
	"testing"

	"github.com/AnimatedRNG/frap/lang"

	L "github.com/AnimatedRNG/frap/analysis/lattice"
)

func TestClusterSites(t *testing.T) {
	// a and b are connected through the second assignment; x stands alone.
	prog := lang.Seq(
		lang.Assign("a", lang.Const(1)),
		lang.Assign("b", lang.Plus(lang.Var("a"), lang.Const(1))),
		lang.Assign("x", lang.Const(5)),
	)

	sites := []site{}
	lang.Assignments(prog, func(x string, e lang.Expr) {
		sites = append(sites, site{x, e})
	})

	clusters := clusterSites(sites)
	if len(clusters) != 2 {
		t.Fatalf("%d clusters, expected 2", len(clusters))
	}
	if len(clusters[0]) != 2 || clusters[0][0].x != "a" || clusters[0][1].x != "b" {
		t.Errorf("first cluster is %v, expected the a/b sites", clusters[0])
	}
	if len(clusters[1]) != 1 || clusters[1][0].x != "x" {
		t.Errorf("second cluster is %v, expected the x site", clusters[1])
	}
}

func TestClusterSitesTransitive(t *testing.T) {
	// a-b and b-c overlap in b, forming a single cluster.
	sites := []site{
		{"a", lang.Var("b")},
		{"c", lang.Var("b")},
		{"d", lang.Const(0)},
	}

	clusters := clusterSites(sites)
	if len(clusters) != 2 {
		t.Fatalf("%d clusters, expected 2", len(clusters))
	}
	if len(clusters[0]) != 2 {
		t.Errorf("a and c not clustered together: %v", clusters)
	}
}

func TestInsensitiveUntrackedStaysUntracked(t *testing.T) {
	// The initial environment tracks nothing, so no assignment can
	// introduce a tracked variable: merging drops one-sided keys.
	prog := lang.Assign("a", lang.Const(2))
	res := AnalyzeInsensitive(prog, emptyEnv(parity), parity)

	if res.Size() != 0 {
		t.Errorf("summary %s tracks variables, expected none", res)
	}
}

func TestInsensitiveReachesFixpointAcrossSites(t *testing.T) {
	even := L.Create().Element().Even()

	// The first pass leaves b even; only re-running the first site after
	// a has degraded exposes that b absorbs a's parity.
	prog := lang.Seq(
		lang.Assign("b", lang.Plus(lang.Var("b"), lang.Var("a"))),
		lang.Assign("a", lang.Plus(lang.Var("a"), lang.Const(1))),
	)
	init := parityEnv(map[string]L.Element{"a": even, "b": even})

	res := AnalyzeInsensitive(prog, init, parity)
	if b := res.GetOrTop("b"); !b.Eq(L.Create().Element().Either()) {
		t.Errorf("b = %s, expected ⊤", b)
	}
}
