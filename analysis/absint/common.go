package absint

import "fmt"

var (
	errUnsupportedExpr = func(v interface{}) error {
		return fmt.Errorf("unsupported expression: %v %T", v, v)
	}
	errUnsupportedCmd = func(v interface{}) error {
		return fmt.Errorf("unsupported command: %v %T", v, v)
	}
)
