package lattice

import (
	"errors"

	"github.com/AnimatedRNG/frap/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Key     func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Key: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errUnsupportedOperation      = errors.New("UnsupportedOperationError")
	errInternal                  = errors.New("internal error")
)

// Element is implemented by every member of every lattice. Binary
// operations are exposed twice: the exported variants dynamically check
// that both operands belong to the same lattice, the unexported variants
// skip the check and may only be used under the assumption of lattice
// type safety.
type Element interface {
	// Type conversion API
	Parity() Parity
	Interval() Interval
	AbstractEnv() AbstractEnv
	Analysis() Analysis

	Lattice() Lattice

	// External API for lattice element operations.
	// They dynamically perform lattice type checking.
	Leq(Element) bool
	Geq(Element) bool
	Eq(Element) bool
	Join(Element) Element
	Meet(Element) Element

	// Internal lattice element operations, that skip
	// lattice type checking.
	leq(Element) bool
	geq(Element) bool
	eq(Element) bool
	join(Element) Element
	meet(Element) Element

	String() string
}

type element struct {
	lattice Lattice
}

func (e element) Lattice() Lattice {
	return e.lattice
}

func (element) Parity() Parity {
	panic(errUnsupportedTypeConversion)
}

func (element) Interval() Interval {
	panic(errUnsupportedTypeConversion)
}

func (element) AbstractEnv() AbstractEnv {
	panic(errUnsupportedTypeConversion)
}

func (element) Analysis() Analysis {
	panic(errUnsupportedTypeConversion)
}
