package lang

import (
	"github.com/benbjohnson/immutable"
)

// State is a concrete valuation of program variables. Variables absent
// from the state read as zero. States are immutable values; stepping
// produces new states.
type State = *immutable.Map[string, int]

// NewState creates a concrete state from the given bindings.
func NewState(bindings map[string]int) State {
	b := immutable.NewMapBuilder[string, int](nil)
	for x, n := range bindings {
		b.Set(x, n)
	}
	return b.Map()
}

// EvalExpr evaluates an expression in a concrete state. Subtraction
// truncates at zero: the language computes over natural numbers.
func EvalExpr(e Expr, s State) int {
	switch e := e.(type) {
	case *ConstantExpr:
		return e.Value
	case *VarExpr:
		n, _ := s.Get(e.Name)
		return n
	case *BinaryExpr:
		l, r := EvalExpr(e.LHS, s), EvalExpr(e.RHS, s)
		switch e.Op {
		case ADD:
			return l + r
		case SUB:
			if l < r {
				return 0
			}
			return l - r
		case MUL:
			return l * r
		}
	}
	panic(errPatternMatch(e))
}

// Step performs a single small step of execution from the given command
// and state. The returned boolean is false when the command is terminal.
func Step(c Cmd, s State) (Cmd, State, bool) {
	switch c := c.(type) {
	case *SkipCmd:
		return nil, s, false
	case *AssignCmd:
		return Skip(), s.Set(c.X, EvalExpr(c.E, s)), true
	case *SeqCmd:
		if first, s1, ok := Step(c.First, s); ok {
			return &SeqCmd{First: first, Second: c.Second}, s1, true
		}
		return c.Second, s, true
	case *IfCmd:
		if EvalExpr(c.Guard, s) != 0 {
			return c.Then, s, true
		}
		return c.Else, s, true
	case *WhileCmd:
		if EvalExpr(c.Guard, s) != 0 {
			return &SeqCmd{First: c.Body, Second: c}, s, true
		}
		return Skip(), s, true
	}
	panic(errPatternMatch(c))
}

// Run executes the command until it terminates or the step budget is
// exhausted, returning the residual command and the final state.
func Run(c Cmd, s State, maxSteps int) (Cmd, State) {
	for i := 0; i < maxSteps; i++ {
		next, s1, ok := Step(c, s)
		if !ok {
			return c, s
		}
		c, s = next, s1
	}
	return c, s
}
