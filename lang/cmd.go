package lang

import (
	"fmt"

	"github.com/AnimatedRNG/frap/utils"
)

// Cmd represents a command of the imperative language. Commands double as
// program points: the unexecuted remainder of a program (its residual)
// identifies where execution currently is, so commands are hashable and
// structurally comparable, and may be used as map keys.
type Cmd interface {
	fmt.Stringer

	// Hash computes a 32-bit structural hash of the command.
	Hash() uint32
	// Equal checks two commands for structural equality. Two residual
	// programs denote the same program point iff they are Equal.
	Equal(Cmd) bool

	cmd()
}

func (*SkipCmd) cmd()   {}
func (*AssignCmd) cmd() {}
func (*SeqCmd) cmd()    {}
func (*IfCmd) cmd()     {}
func (*WhileCmd) cmd()  {}

// SkipCmd is the terminal command. It has no successors.
type SkipCmd struct{}

var skip = &SkipCmd{}

// Skip returns the terminal command.
func Skip() *SkipCmd {
	return skip
}

func (c *SkipCmd) String() string {
	return "skip"
}

func (c *SkipCmd) Hash() uint32 {
	return hashTagSkip
}

func (c *SkipCmd) Equal(o Cmd) bool {
	_, ok := o.(*SkipCmd)
	return ok
}

// AssignCmd binds the value of an expression to a variable.
type AssignCmd struct {
	X string
	E Expr
}

// Assign returns an assignment of e to x.
func Assign(x string, e Expr) *AssignCmd {
	return &AssignCmd{X: x, E: e}
}

func (c *AssignCmd) String() string {
	return c.X + " <- " + c.E.String()
}

func (c *AssignCmd) Hash() uint32 {
	return utils.HashCombine(hashTagAssign, utils.HashString(c.X), c.E.Hash())
}

func (c *AssignCmd) Equal(o Cmd) bool {
	if o, ok := o.(*AssignCmd); ok {
		return c == o || c.X == o.X && c.E.Equal(o.E)
	}
	return false
}

// SeqCmd runs First to completion, then Second.
type SeqCmd struct {
	First, Second Cmd
}

// Seq sequences the given commands, nesting to the right.
func Seq(cmds ...Cmd) Cmd {
	switch len(cmds) {
	case 0:
		return Skip()
	case 1:
		return cmds[0]
	}
	return &SeqCmd{First: cmds[0], Second: Seq(cmds[1:]...)}
}

func (c *SeqCmd) String() string {
	return c.First.String() + "; " + c.Second.String()
}

func (c *SeqCmd) Hash() uint32 {
	return utils.HashCombine(hashTagSeq, c.First.Hash(), c.Second.Hash())
}

func (c *SeqCmd) Equal(o Cmd) bool {
	if o, ok := o.(*SeqCmd); ok {
		return c == o || c.First.Equal(o.First) && c.Second.Equal(o.Second)
	}
	return false
}

// IfCmd branches on whether the guard evaluates to a non-zero value.
type IfCmd struct {
	Guard      Expr
	Then, Else Cmd
}

// If returns a conditional command.
func If(guard Expr, then, els Cmd) *IfCmd {
	return &IfCmd{Guard: guard, Then: then, Else: els}
}

func (c *IfCmd) String() string {
	return fmt.Sprintf("if %s then { %s } else { %s }", c.Guard, c.Then, c.Else)
}

func (c *IfCmd) Hash() uint32 {
	return utils.HashCombine(hashTagIf, c.Guard.Hash(), c.Then.Hash(), c.Else.Hash())
}

func (c *IfCmd) Equal(o Cmd) bool {
	if o, ok := o.(*IfCmd); ok {
		return c == o ||
			c.Guard.Equal(o.Guard) && c.Then.Equal(o.Then) && c.Else.Equal(o.Else)
	}
	return false
}

// WhileCmd repeats its body while the guard evaluates to a non-zero value.
type WhileCmd struct {
	Guard Expr
	Body  Cmd
}

// While returns a loop command.
func While(guard Expr, body Cmd) *WhileCmd {
	return &WhileCmd{Guard: guard, Body: body}
}

func (c *WhileCmd) String() string {
	return fmt.Sprintf("while %s loop { %s }", c.Guard, c.Body)
}

func (c *WhileCmd) Hash() uint32 {
	return utils.HashCombine(hashTagWhile, c.Guard.Hash(), c.Body.Hash())
}

func (c *WhileCmd) Equal(o Cmd) bool {
	if o, ok := o.(*WhileCmd); ok {
		return c == o || c.Guard.Equal(o.Guard) && c.Body.Equal(o.Body)
	}
	return false
}

// Assignments accumulates every assignment command occurring anywhere in
// the program, including conditional and loop bodies. Guards contribute
// nothing.
func Assignments(c Cmd, do func(x string, e Expr)) {
	switch c := c.(type) {
	case *SkipCmd:
	case *AssignCmd:
		do(c.X, c.E)
	case *SeqCmd:
		Assignments(c.First, do)
		Assignments(c.Second, do)
	case *IfCmd:
		Assignments(c.Then, do)
		Assignments(c.Else, do)
	case *WhileCmd:
		Assignments(c.Body, do)
	default:
		panic(errPatternMatch(c))
	}
}
