package search

// RouteSwap is a simplified SWAP*-style route operator: for every pair of
// non-depot nodes (one from each route), it searches the best alternative
// insertion point for each swapped client anywhere in the other route
// (not just at the partner's existing position), and applies the
// cheapest such exchange found.
//
// This simplifies the reference SwapStar by picking the insertion point
// purely on distance (load is position-independent and applied exactly;
// time warp is not recomputed: the current time warp of both routes is
// subtracted and the swapped routes are assumed to have none) rather than
// maintaining SwapStar's cached three-best-positions-per-client table —
// see DESIGN.md for why the cached exact variant was not ported. It is
// grounded on the insertion-point search of SwapStar::updateInsertionCost
// / SwapStar::getBestInsertPoint in
// _examples/original_source/pyvrp/cpp/search/SwapStar.cpp, and on
// Exchange<1,1> in _examples/original_source/hgs/src/operators/Exchange.cpp
// for the per-swap delta formula this replaces.
type RouteSwap struct {
	bestU, bestV   nodeRef
	afterU, afterV nodeRef
	cached         bool
}

// NewRouteSwap builds a RouteSwap operator with an empty move cache.
func NewRouteSwap() *RouteSwap { return &RouteSwap{} }

// Evaluate scans every (u in U, v in V) client pair, and for each searches
// the best insertion point for u's client in V and for v's client in U,
// returning the best (most negative) cost delta found and caching the
// corresponding pair and insertion points for Apply.
func (rs *RouteSwap) Evaluate(ls *LocalSearch, u, v *route) int {
	rs.cached = false
	best := 0

	for pu := 1; pu <= u.size(); pu++ {
		refU := u.at(pu)
		for pv := 1; pv <= v.size(); pv++ {
			refV := v.at(pv)

			delta, afterU, afterV := rs.evalSwap(ls, u, v, refU, refV)
			if delta < best {
				best = delta
				rs.bestU, rs.bestV = refU, refV
				rs.afterU, rs.afterV = afterU, afterV
				rs.cached = true
			}
		}
	}

	return best
}

// Apply moves the pair cached by the prior Evaluate call to their cached
// best insertion points.
func (rs *RouteSwap) Apply(ls *LocalSearch, u, v *route) {
	if !rs.cached {
		return
	}
	ls.insertAfter(rs.bestU, rs.afterV)
	ls.insertAfter(rs.bestV, rs.afterU)
	rs.cached = false
}

// Update invalidates the cached best move whenever either touched route is
// rebuilt, since node positions and cumulative aggregates may have shifted.
func (rs *RouteSwap) Update(r *route) { rs.cached = false }

// bestInsertion finds the cheapest position in target to insert client,
// excluding the anchor node exclude (the node about to be removed from
// target as the other half of the swap, whose gap must not be used as an
// insertion point since it won't exist once the move is applied).
func (rs *RouteSwap) bestInsertion(ls *LocalSearch, target *route, client int, exclude nodeRef) (delta int, after nodeRef) {
	best := 1 << 30
	after = target.startDepot

	for pos := 0; pos <= target.size(); pos++ {
		a := target.at(pos)
		if a == exclude {
			continue
		}
		b := target.at(pos + 1)

		cost := ls.data.Dist(ls.clientOf(a), client) +
			ls.data.Dist(client, ls.clientOf(b)) -
			ls.data.Dist(ls.clientOf(a), ls.clientOf(b))

		if cost < best {
			best = cost
			after = a
		}
	}

	return best, after
}

func (rs *RouteSwap) evalSwap(ls *LocalSearch, u, v *route, refU, refV nodeRef) (delta int, afterU, afterV nodeRef) {
	uClient, vClient := ls.clientOf(refU), ls.clientOf(refV)

	removeU := ls.data.Dist(ls.clientOf(ls.p(refU)), ls.clientOf(ls.n(refU))) -
		ls.data.Dist(ls.clientOf(ls.p(refU)), uClient) -
		ls.data.Dist(uClient, ls.clientOf(ls.n(refU)))
	removeV := ls.data.Dist(ls.clientOf(ls.p(refV)), ls.clientOf(ls.n(refV))) -
		ls.data.Dist(ls.clientOf(ls.p(refV)), vClient) -
		ls.data.Dist(vClient, ls.clientOf(ls.n(refV)))

	insertUCost, afterV := rs.bestInsertion(ls, v, uClient, refV)
	insertVCost, afterU := rs.bestInsertion(ls, u, vClient, refU)

	deltaCost := removeU + removeV + insertUCost + insertVCost

	capacity := ls.data.VehicleCapacity()
	demandU, demandV := ls.data.Client(uClient).Demand, ls.data.Client(vClient).Demand
	loadDiff := demandU - demandV

	deltaCost += ls.ce.LoadPenalty(u.load()-loadDiff, capacity)
	deltaCost -= ls.ce.LoadPenalty(u.load(), capacity)
	deltaCost += ls.ce.LoadPenalty(v.load()+loadDiff, capacity)
	deltaCost -= ls.ce.LoadPenalty(v.load(), capacity)

	// Optimistic time-warp estimate: since an exact post-swap TWS
	// recomputation would require re-merging each route's full chain at the
	// chosen insertion point (no longer O(1) once the swap touches the
	// middle of a route), this operator instead removes the pre-swap time
	// warp and assumes the post-swap routes are time-feasible, matching the
	// precheck style used throughout Exchange's delta evaluation before its
	// exact fallback.
	deltaCost -= ls.ce.TimeWarpPenalty(u.timeWarp())
	deltaCost -= ls.ce.TimeWarpPenalty(v.timeWarp())

	return deltaCost, afterU, afterV
}
