package absint

import (
	"fmt"

	"github.com/AnimatedRNG/frap/lang"
	"github.com/AnimatedRNG/frap/utils"
	"github.com/AnimatedRNG/frap/utils/dot"
	"github.com/AnimatedRNG/frap/utils/hmap"
	"github.com/AnimatedRNG/frap/utils/worklist"
	"golang.org/x/tools/container/intsets"

	L "github.com/AnimatedRNG/frap/analysis/lattice"
)

// TransitionGraph renders the abstract transition structure explored by
// a flow-sensitive analysis as a dot graph: one node per reached
// residual program, labeled with the environment the analysis recorded
// there, and one edge per one-step transition. Nodes are numbered in
// breadth-first discovery order from the full program so repeated runs
// lay out identically.
func TransitionGraph(prog lang.Cmd, result L.Analysis, dom L.Domain) *dot.DotGraph {
	var hasher utils.Hasher[lang.Cmd] = utils.HashableHasher[lang.Cmd]()
	ids := hmap.NewMap[int](hasher)
	intern := func(c lang.Cmd) int {
		if id, found := ids.GetOk(c); found {
			return id
		}
		id := ids.Len()
		ids.Set(c, id)
		return id
	}

	nodes := map[int]*dot.DotNode{}
	node := func(c lang.Cmd) *dot.DotNode {
		id := intern(c)
		if n, found := nodes[id]; found {
			return n
		}

		label := c.String()
		attrs := dot.DotAttrs{}
		if env, found := result.GetEnv(c); found {
			label += "\n" + env.String()
		}
		if _, terminal := c.(*lang.SkipCmd); terminal {
			attrs["fillcolor"] = "lightyellow"
		}
		attrs["label"] = label

		n := &dot.DotNode{ID: fmt.Sprintf("%d", id), Attrs: attrs}
		nodes[id] = n
		return n
	}

	g := &dot.DotGraph{
		Title:   prog.String(),
		Options: map[string]string{"rankdir": "TB"},
	}

	var visited intsets.Sparse
	worklist.Start(prog, func(next lang.Cmd, add func(el lang.Cmd)) {
		if !visited.Insert(intern(next)) {
			return
		}

		from := node(next)
		g.Nodes = append(g.Nodes, from)

		env, found := result.GetEnv(next)
		if !found {
			env = L.Create().Lattice().AbstractEnv(dom).Bot().AbstractEnv()
		}
		for _, s := range successors(next, env, dom) {
			g.Edges = append(g.Edges, &dot.DotEdge{
				From:  from,
				To:    node(s.residual),
				Attrs: dot.DotAttrs{},
			})
			add(s.residual)
		}
	})

	return g
}
