package search

// NodeOperator proposes moves local to a pair of nodes U, V. Evaluate must
// return a strictly negative delta for the move to be applied; 0 signals a
// non-improving result, never an error (spec.md §7).
type NodeOperator interface {
	// Evaluate returns the cost delta (proposed - current) of applying this
	// operator to U and V, under the given penalty coefficients.
	Evaluate(ls *LocalSearch, u, v nodeRef) int

	// Apply performs the move evaluated by the prior Evaluate call.
	Apply(ls *LocalSearch, u, v nodeRef)
}

// RouteOperator proposes moves local to a pair of routes U, V, such as
// SWAP*-style client exchanges. Update is called after any route mutation
// so operators may invalidate cached per-route data; it is a no-op for
// operators that cache nothing.
type RouteOperator interface {
	Evaluate(ls *LocalSearch, u, v *route) int
	Apply(ls *LocalSearch, u, v *route)
	Update(r *route)
}
