package absint

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransitionGraphBranching(t *testing.T) {
	prog := branchingParity()
	res := AnalyzeSensitive(prog, parity)

	g := TransitionGraph(prog, res, parity)

	// One node per reached residual: the program, the stepped sequence,
	// the conditional, its two branches and the shared terminal.
	if len(g.Nodes) != 6 {
		t.Errorf("%d nodes, expected 6", len(g.Nodes))
	}

	edges := []string{}
	for _, e := range g.Edges {
		edges = append(edges, e.From.ID+"->"+e.To.ID)
	}
	sort.Strings(edges)

	// Breadth-first discovery numbers the program 0 and the terminal 5.
	expected := []string{"0->1", "1->2", "2->3", "2->4", "3->5", "4->5"}
	if diff := cmp.Diff(expected, edges); diff != "" {
		t.Errorf("unexpected transition edges (-want +got):\n%s", diff)
	}

	terminals := 0
	for _, n := range g.Nodes {
		if n.Attrs["fillcolor"] == "lightyellow" {
			terminals++
		}
	}
	if terminals != 1 {
		t.Errorf("%d terminal nodes, expected 1", terminals)
	}
}

func TestTransitionGraphLabels(t *testing.T) {
	prog := branchingParity()
	res := AnalyzeSensitive(prog, parity)

	g := TransitionGraph(prog, res, parity)

	for _, n := range g.Nodes {
		if n.Attrs["label"] == "" {
			t.Errorf("node %s lacks a label", n.ID)
		}
	}

	// The terminal node's label carries the analysis environment.
	last := g.Nodes[len(g.Nodes)-1]
	if !strings.Contains(last.Attrs["label"], "a ↦ even") {
		t.Errorf("terminal label %q lacks the recorded environment", last.Attrs["label"])
	}
}

func TestTransitionGraphWriteDot(t *testing.T) {
	prog := growingLoop()
	res := AnalyzeSensitiveWidened(prog, intervals)

	var buf bytes.Buffer
	if err := TransitionGraph(prog, res, intervals).WriteDot(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "digraph ResidualTransitions {") {
		t.Errorf("dot output starts with %q", out[:40])
	}
	for _, want := range []string{"->", "label=", "fillcolor="} {
		if !strings.Contains(out, want) {
			t.Errorf("dot output lacks %q", want)
		}
	}
}

func TestTransitionGraphLoopIsFinite(t *testing.T) {
	prog := growingLoop()
	res := AnalyzeSensitiveWidened(prog, intervals)

	g := TransitionGraph(prog, res, intervals)

	// The loop folds back onto already interned residuals instead of
	// unrolling: program, post-assignment sequence, loop head, exit and
	// body sequence. The body steps back to the post-assignment point.
	if len(g.Nodes) != 5 {
		t.Errorf("%d nodes, expected 5", len(g.Nodes))
	}

	back := false
	for _, e := range g.Edges {
		if e.From.ID > e.To.ID {
			back = true
		}
	}
	if !back {
		t.Error("no back edge in the loop's transition graph")
	}
}
