// Package absint implements abstract interpretation of the imperative
// language over a pluggable abstract domain. It provides a
// flow-insensitive analyzer computing a single environment summarizing
// the whole program, and a flow-sensitive worklist engine computing an
// environment per reachable residual program, with a widening variant
// for domains of unbounded height.
package absint

import (
	"github.com/AnimatedRNG/frap/lang"

	L "github.com/AnimatedRNG/frap/analysis/lattice"
)

// EvaluateExpr abstractly evaluates an expression in the given
// environment. Variables the environment does not track evaluate to the
// domain's ⊤, never to an error.
func EvaluateExpr(e lang.Expr, env L.AbstractEnv, dom L.Domain) L.Element {
	switch e := e.(type) {
	case *lang.ConstantExpr:
		return dom.Const(e.Value)
	case *lang.VarExpr:
		return env.GetOrTop(e.Name)
	case *lang.BinaryExpr:
		lhs := EvaluateExpr(e.LHS, env, dom)
		rhs := EvaluateExpr(e.RHS, env, dom)

		switch e.Op {
		case lang.ADD:
			return dom.Plus(lhs, rhs)
		case lang.SUB:
			return dom.Minus(lhs, rhs)
		case lang.MUL:
			return dom.Times(lhs, rhs)
		}
	}

	panic(errUnsupportedExpr(e))
}
