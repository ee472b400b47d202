package lattice

// Domain is the contract a numeric abstract domain must satisfy to be
// plugged into the analysis engines. It extends a lattice with constant
// injection and abstract arithmetic over its elements.
//
// Implementations must keep Leq a partial order consistent with Join
// (Join(x, y) is an upper bound of x and y under Leq), and the abstract
// operators must over-approximate their concrete counterparts on the
// integers each element represents. Domains used for flow-sensitive
// analysis additionally guarantee that iterating Join/Widen along any
// chain reaches a fixpoint in finitely many steps.
type Domain interface {
	Lattice

	// Const injects a concrete natural number into the domain.
	Const(n int) Element

	// Plus, Minus and Times over-approximate natural-number addition,
	// truncating subtraction and multiplication.
	Plus(a, b Element) Element
	Minus(a, b Element) Element
	Times(a, b Element) Element

	// Widen is a join variant that forces convergence on domains with
	// unbounded ascending chains. Domains of finite height simply
	// delegate to Join.
	Widen(a, b Element) Element
}
