package lang

import "testing"

func TestCmdEqual(t *testing.T) {
	tests := []struct {
		a, b     Cmd
		expected bool
	}{
		{Skip(), Skip(), true},
		{Skip(), Assign("x", Const(1)), false},
		{Assign("x", Const(1)), Assign("x", Const(1)), true},
		{Assign("x", Const(1)), Assign("y", Const(1)), false},
		{Assign("x", Const(1)), Assign("x", Const(2)), false},
		{
			Seq(Assign("x", Const(1)), Assign("y", Var("x"))),
			Seq(Assign("x", Const(1)), Assign("y", Var("x"))),
			true,
		},
		{
			Seq(Assign("x", Const(1)), Assign("y", Var("x"))),
			Seq(Assign("y", Var("x")), Assign("x", Const(1))),
			false,
		},
		{
			If(Var("c"), Skip(), Skip()),
			If(Var("c"), Skip(), Skip()),
			true,
		},
		{
			While(Var("c"), Assign("x", Plus(Var("x"), Const(1)))),
			While(Var("c"), Assign("x", Plus(Var("x"), Const(1)))),
			true,
		},
		{
			While(Var("c"), Skip()),
			If(Var("c"), Skip(), Skip()),
			false,
		},
	}

	for _, test := range tests {
		if res := test.a.Equal(test.b); res != test.expected {
			t.Errorf("%s = %s is %v, expected %v", test.a, test.b, res, test.expected)
		}
		if test.expected && test.a.Hash() != test.b.Hash() {
			t.Errorf("%s and %s are equal but hash differently", test.a, test.b)
		}
	}
}

func TestCmdHashDiscriminates(t *testing.T) {
	// Structurally different commands over the same leaves should not
	// collide through tag-free combination.
	cmds := []Cmd{
		Skip(),
		Assign("x", Const(1)),
		Assign("x", Var("x")),
		Seq(Assign("x", Const(1)), Skip()),
		Seq(Skip(), Assign("x", Const(1))),
		If(Var("x"), Assign("x", Const(1)), Skip()),
		If(Var("x"), Skip(), Assign("x", Const(1))),
		While(Var("x"), Assign("x", Const(1))),
	}

	seen := map[uint32]Cmd{}
	for _, c := range cmds {
		if prev, found := seen[c.Hash()]; found {
			t.Errorf("%s and %s share hash %d", prev, c, c.Hash())
		}
		seen[c.Hash()] = c
	}
}

func TestSeqConstruction(t *testing.T) {
	if !Seq().Equal(Skip()) {
		t.Errorf("empty sequence is %s, expected skip", Seq())
	}

	single := Assign("x", Const(1))
	if !Seq(single).Equal(single) {
		t.Errorf("singleton sequence is %s, expected %s", Seq(single), single)
	}

	nested := Seq(
		Assign("x", Const(1)),
		Assign("y", Const(2)),
		Assign("z", Const(3)),
	)
	expected := &SeqCmd{
		First: Assign("x", Const(1)),
		Second: &SeqCmd{
			First:  Assign("y", Const(2)),
			Second: Assign("z", Const(3)),
		},
	}
	if !nested.Equal(expected) {
		t.Errorf("sequence nests as %s, expected %s", nested, expected)
	}
}

func TestAssignments(t *testing.T) {
	prog := Seq(
		Assign("a", Const(7)),
		While(Var("a"),
			If(Var("c"),
				Assign("b", Plus(Var("a"), Const(4))),
				Assign("a", Times(Var("a"), Var("b"))),
			),
		),
	)

	collected := []string{}
	Assignments(prog, func(x string, e Expr) {
		collected = append(collected, x+" <- "+e.String())
	})

	expected := []string{
		"a <- 7",
		"b <- (a + 4)",
		"a <- (a * b)",
	}
	if len(collected) != len(expected) {
		t.Fatalf("collected %v, expected %v", collected, expected)
	}
	for i := range expected {
		if collected[i] != expected[i] {
			t.Errorf("site %d is %q, expected %q", i, collected[i], expected[i])
		}
	}
}

type bogusExpr struct{}

func (bogusExpr) String() string  { return "bogus" }
func (bogusExpr) Hash() uint32    { return 0 }
func (bogusExpr) Equal(Expr) bool { return false }
func (bogusExpr) expr()           {}

func TestExprVarsRejectsUnknownVariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown expression variant did not panic")
		}
	}()
	ExprVars(bogusExpr{}, map[string]struct{}{})
}

func TestExprVars(t *testing.T) {
	vars := map[string]struct{}{}
	ExprVars(Plus(Times(Const(2), Var("a")), Minus(Var("b"), Var("a"))), vars)

	for _, x := range []string{"a", "b"} {
		if _, found := vars[x]; !found {
			t.Errorf("variable %s not collected", x)
		}
	}
	if len(vars) != 2 {
		t.Errorf("collected %d variables, expected 2", len(vars))
	}
}
