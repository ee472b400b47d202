// Command frap runs the abstract interpretation engine on a set of
// example programs and prints the computed abstractions. The analysis
// mode, abstract domain and widening behavior are selected with flags;
// -visualize additionally renders each program's residual transition
// graph.
package main

import (
	"fmt"
	"log"

	"github.com/AnimatedRNG/frap/analysis/absint"
	"github.com/AnimatedRNG/frap/lang"
	"github.com/AnimatedRNG/frap/utils"
	"github.com/AnimatedRNG/frap/utils/dot"

	L "github.com/AnimatedRNG/frap/analysis/lattice"
)

type example struct {
	name string
	prog lang.Cmd
}

func examples() []example {
	return []example{
		{
			"straight-line",
			lang.Seq(
				lang.Assign("a", lang.Const(7)),
				lang.Assign("b", lang.Plus(lang.Var("b"), lang.Times(lang.Const(2), lang.Var("a")))),
				lang.Assign("a", lang.Plus(lang.Var("a"), lang.Var("b"))),
			),
		},
		{
			"branching",
			lang.Seq(
				lang.Assign("a", lang.Const(8)),
				lang.If(lang.Var("c"),
					lang.Assign("b", lang.Plus(lang.Var("a"), lang.Const(4))),
					lang.Assign("b", lang.Const(7)),
				),
			),
		},
		{
			"branching-product",
			lang.Seq(
				lang.Assign("a", lang.Const(6)),
				lang.Assign("b", lang.Const(7)),
				lang.If(lang.Var("c"),
					lang.Assign("a", lang.Plus(lang.Var("a"), lang.Var("b"))),
					lang.Assign("b", lang.Times(lang.Var("a"), lang.Var("b"))),
				),
			),
		},
		{
			"growing-loop",
			lang.Seq(
				lang.Assign("a", lang.Const(7)),
				lang.While(lang.Var("a"),
					lang.Assign("a", lang.Plus(lang.Var("a"), lang.Const(3))),
				),
			),
		},
	}
}

func domain() L.Domain {
	switch utils.Opts().Domain() {
	case "parity":
		return L.Create().Lattice().Parity()
	case "interval":
		return L.Create().Lattice().Interval()
	}

	log.Fatalf("unknown abstract domain: %s", utils.Opts().Domain())
	panic("unreachable")
}

func analyze(ex example, dom L.Domain) {
	fmt.Printf("=== %s ===\n%s\n\n", ex.name, ex.prog)

	switch utils.Opts().Mode() {
	case "insensitive":
		init := L.Create().Lattice().AbstractEnv(dom).Bot().AbstractEnv()
		fmt.Println(absint.AnalyzeInsensitive(ex.prog, init, dom))

	case "sensitive":
		var res L.Analysis
		if utils.Opts().Widen() {
			res = absint.AnalyzeSensitiveWidened(ex.prog, dom)
		} else {
			res = absint.AnalyzeSensitive(ex.prog, dom)
		}
		fmt.Println(res)

		if utils.Opts().Visualize() {
			render(ex, absint.TransitionGraph(ex.prog, res, dom))
		}

	default:
		log.Fatalf("unknown analysis mode: %s", utils.Opts().Mode())
	}

	fmt.Println()
}

func render(ex example, g *dot.DotGraph) {
	prefix := utils.Opts().Output()
	fname := prefix + ex.name + ".svg"

	utils.VerbosePrint("rendering %s\n", fname)
	out, err := g.RenderToFile(fname)
	if err != nil {
		log.Fatalf("rendering %s failed: %v", fname, err)
	}
	fmt.Printf("transition graph written to %s\n", out)
}

func main() {
	utils.ParseArgs()

	dom := domain()
	fmt.Printf("analysis: %s over %s\n\n", utils.Opts().Mode(), dom)

	for _, ex := range examples() {
		analyze(ex, dom)
	}
}
