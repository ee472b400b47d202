package absint

import (
	"github.com/AnimatedRNG/frap/lang"

	L "github.com/AnimatedRNG/frap/analysis/lattice"
)

// successor is one outcome of an abstract transition: the residual
// program still to execute paired with the environment holding there.
type successor struct {
	residual lang.Cmd
	env      L.AbstractEnv
}

// successors computes the one-step abstract transitions out of the given
// residual program. A terminal residual has none. Guards are never
// evaluated: conditionals and loops always produce both outcomes, which
// keeps the transition sound without a boolean abstraction.
func successors(c lang.Cmd, env L.AbstractEnv, dom L.Domain) []successor {
	switch c := c.(type) {
	case *lang.SkipCmd:
		return nil

	case *lang.AssignCmd:
		return []successor{
			{lang.Skip(), env.Update(c.X, EvaluateExpr(c.E, env, dom))},
		}

	case *lang.SeqCmd:
		if _, terminal := c.First.(*lang.SkipCmd); terminal {
			return []successor{{c.Second, env}}
		}

		succs := successors(c.First, env, dom)
		for i, s := range succs {
			succs[i] = successor{lang.Seq(s.residual, c.Second), s.env}
		}
		return succs

	case *lang.IfCmd:
		return []successor{
			{c.Then, env},
			{c.Else, env},
		}

	case *lang.WhileCmd:
		return []successor{
			{lang.Skip(), env},
			{lang.Seq(c.Body, c), env},
		}
	}

	panic(errUnsupportedCmd(c))
}
