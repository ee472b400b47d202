// Package lang defines the abstract syntax of a small imperative language
// of natural-number arithmetic, together with its concrete small-step
// semantics. The analysis engine consumes these ASTs; it never parses
// source text.
package lang

import (
	"fmt"

	"github.com/AnimatedRNG/frap/utils"
)

// Expr represents an arithmetic expression over natural numbers.
type Expr interface {
	fmt.Stringer

	// Hash computes a 32-bit structural hash of the expression.
	Hash() uint32
	// Equal checks two expressions for structural equality.
	Equal(Expr) bool

	expr()
}

func (*ConstantExpr) expr() {}
func (*VarExpr) expr()      {}
func (*BinaryExpr) expr()   {}

// BinaryOp represents a binary expression operation.
type BinaryOp int

const (
	ADD = BinaryOp(iota)
	SUB
	MUL
)

var binaryOps = [...]string{
	ADD: "+",
	SUB: "-",
	MUL: "*",
}

// String returns the string representation of the operation.
func (op BinaryOp) String() string {
	if op >= 0 && op < BinaryOp(len(binaryOps)) && binaryOps[op] != "" {
		return binaryOps[op]
	}
	return fmt.Sprintf("BinaryOp<%d>", op)
}

// ConstantExpr represents a natural-number literal.
type ConstantExpr struct {
	Value int
}

// Const returns a constant expression with the given value.
func Const(n int) *ConstantExpr {
	return &ConstantExpr{Value: n}
}

func (e *ConstantExpr) String() string {
	return fmt.Sprint(e.Value)
}

func (e *ConstantExpr) Hash() uint32 {
	return utils.HashCombine(hashTagConst, uint32(e.Value))
}

func (e *ConstantExpr) Equal(o Expr) bool {
	if o, ok := o.(*ConstantExpr); ok {
		return e == o || e.Value == o.Value
	}
	return false
}

// VarExpr represents a read of a program variable.
type VarExpr struct {
	Name string
}

// Var returns a variable expression for the given name.
func Var(x string) *VarExpr {
	return &VarExpr{Name: x}
}

func (e *VarExpr) String() string {
	return e.Name
}

func (e *VarExpr) Hash() uint32 {
	return utils.HashCombine(hashTagVar, utils.HashString(e.Name))
}

func (e *VarExpr) Equal(o Expr) bool {
	if o, ok := o.(*VarExpr); ok {
		return e == o || e.Name == o.Name
	}
	return false
}

// BinaryExpr represents the application of a binary operator.
type BinaryExpr struct {
	Op       BinaryOp
	LHS, RHS Expr
}

// Plus returns the sum of two expressions.
func Plus(lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{Op: ADD, LHS: lhs, RHS: rhs}
}

// Minus returns the truncating difference of two expressions.
func Minus(lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{Op: SUB, LHS: lhs, RHS: rhs}
}

// Times returns the product of two expressions.
func Times(lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{Op: MUL, LHS: lhs, RHS: rhs}
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.LHS, e.Op, e.RHS)
}

func (e *BinaryExpr) Hash() uint32 {
	return utils.HashCombine(hashTagBinary, uint32(e.Op), e.LHS.Hash(), e.RHS.Hash())
}

func (e *BinaryExpr) Equal(o Expr) bool {
	if o, ok := o.(*BinaryExpr); ok {
		return e == o ||
			e.Op == o.Op && e.LHS.Equal(o.LHS) && e.RHS.Equal(o.RHS)
	}
	return false
}

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}

// Structural hash tags, one per AST variant.
const (
	hashTagConst = uint32(iota + 1)
	hashTagVar
	hashTagBinary
	hashTagSkip
	hashTagAssign
	hashTagSeq
	hashTagIf
	hashTagWhile
)

// ExprVars accumulates the names of all variables read by the expression
// into the given set.
func ExprVars(e Expr, vars map[string]struct{}) {
	switch e := e.(type) {
	case *ConstantExpr:
	case *VarExpr:
		vars[e.Name] = struct{}{}
	case *BinaryExpr:
		ExprVars(e.LHS, vars)
		ExprVars(e.RHS, vars)
	default:
		panic(errPatternMatch(e))
	}
}
