package search

import "github.com/vrp-hgs/core/segment"

// Exchange implements the (N,M)-exchange node operator family: relocate
// (M==0), swap (N==M==1), and the general 2-opt-style exchange, dispatched
// at construction time by the N, M parameters rather than at compile time
// (spec.md §9: "compile-time specialization is a performance optimization,
// not a correctness requirement").
//
// Grounded on Exchange<N,M> in
// _examples/original_source/hgs/src/operators/Exchange.cpp.
type Exchange struct {
	N, M int
}

// NewExchange builds the (N,M)-exchange operator. N must be >= 1 and
// N >= M.
func NewExchange(n, m int) *Exchange { return &Exchange{N: n, M: m} }

// containsDepot reports whether the segLength-node segment starting at ref
// runs off the end of its route (or starts at a depot).
func (ls *LocalSearch) containsDepot(ref nodeRef, segLength int) bool {
	if ls.isDepot(ref) {
		return true
	}
	pos := ls.positionOf(ref)
	return pos+segLength-1 > ls.routeOf(ref).size()
}

func (ex *Exchange) overlap(ls *LocalSearch, u, v nodeRef) bool {
	if ls.arena[u].route != ls.arena[v].route {
		return false
	}
	posU, posV := ls.positionOf(u), ls.positionOf(v)
	m := ex.M
	if m == 0 {
		m = 1
	}
	return posU <= posV+m-1 && posV <= posU+ex.N-1
}

func (ex *Exchange) adjacent(ls *LocalSearch, u, v nodeRef) bool {
	if ls.arena[u].route != ls.arena[v].route {
		return false
	}
	posU, posV := ls.positionOf(u), ls.positionOf(v)
	return posU+ex.N == posV || posV+ex.M == posU
}

// Evaluate returns the cost delta of applying this exchange to (U, V); see
// evalRelocateMove / evalSwapMove for the formulas.
func (ex *Exchange) Evaluate(ls *LocalSearch, u, v nodeRef) int {
	if ls.containsDepot(u, ex.N) || ex.overlap(ls, u, v) {
		return 0
	}
	if ex.M > 0 && ls.containsDepot(v, ex.M) {
		return 0
	}

	if ex.M == 0 {
		if u == ls.n(v) {
			return 0
		}
		return ex.evalRelocateMove(ls, u, v)
	}

	if ex.N == ex.M && ls.clientOf(u) >= ls.clientOf(v) {
		return 0
	}
	if ex.adjacent(ls, u, v) {
		return 0
	}
	return ex.evalSwapMove(ls, u, v)
}

// Apply performs the move evaluated by the prior Evaluate(U, V) call: move
// the N-M "extra" nodes of U after the end of V, then pairwise swap the
// remaining M overlapping nodes.
func (ex *Exchange) Apply(ls *LocalSearch, u, v nodeRef) {
	endU := u
	if ex.N > 1 {
		endU = ls.routeOf(u).at(ls.positionOf(u) + ex.N - 1)
	}
	insertAfter := v
	if ex.M > 0 {
		insertAfter = ls.routeOf(v).at(ls.positionOf(v) + ex.M - 1)
	}

	toInsert := endU
	for count := 0; count != ex.N-ex.M; count++ {
		prev := ls.p(toInsert)
		ls.insertAfter(toInsert, insertAfter)
		toInsert = prev
	}

	cur, curV := u, v
	for count := 0; count != ex.M; count++ {
		ls.swapWith(cur, curV)
		cur, curV = ls.n(cur), ls.n(curV)
	}
}

func (ex *Exchange) endOf(ls *LocalSearch, ref nodeRef, length int) nodeRef {
	if length == 1 {
		return ref
	}
	return ls.routeOf(ref).at(ls.positionOf(ref) + length - 1)
}

func (ex *Exchange) evalRelocateMove(ls *LocalSearch, u, v nodeRef) int {
	endU := ex.endOf(ls, u, ex.N)
	posU, posV := ls.positionOf(u), ls.positionOf(v)
	routeU, routeV := ls.routeOf(u), ls.routeOf(v)

	current := routeU.distBetween(posU-1, posU+ex.N) + ls.data.Dist(ls.clientOf(v), ls.clientOf(ls.n(v)))
	proposed := ls.data.Dist(ls.clientOf(v), ls.clientOf(u)) +
		routeU.distBetween(posU, posU+ex.N-1) +
		ls.data.Dist(ls.clientOf(endU), ls.clientOf(ls.n(v))) +
		ls.data.Dist(ls.clientOf(ls.p(u)), ls.clientOf(ls.n(endU)))

	deltaCost := proposed - current

	if routeU != routeV {
		if routeU.isFeasible() && deltaCost >= 0 {
			return deltaCost
		}

		loadDiff := routeU.loadBetween(posU, posU+ex.N-1)

		deltaCost += ls.ce.LoadPenalty(routeU.load()-loadDiff, ls.data.VehicleCapacity())
		deltaCost -= ls.ce.LoadPenalty(routeU.load(), ls.data.VehicleCapacity())

		deltaCost += ls.ce.LoadPenalty(routeV.load()+loadDiff, ls.data.VehicleCapacity())
		deltaCost -= ls.ce.LoadPenalty(routeV.load(), ls.data.VehicleCapacity())

		deltaCost -= ls.ce.TimeWarpPenalty(routeU.timeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		uTWS := segment.Merge(ls.arena[ls.p(u)].twBefore, ls.arena[ls.n(endU)].twAfter)
		deltaCost += ls.ce.TimeWarpPenalty(uTWS.TotalTimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		vTWS := segment.Merge(ls.arena[v].twBefore, routeU.twBetween(posU, posU+ex.N-1), ls.arena[ls.n(v)].twAfter)
		deltaCost += ls.ce.TimeWarpPenalty(vTWS.TotalTimeWarp())
		deltaCost -= ls.ce.TimeWarpPenalty(routeV.timeWarp())

		return deltaCost
	}

	if !routeU.hasTimeWarp() && deltaCost >= 0 {
		return deltaCost
	}
	deltaCost -= ls.ce.TimeWarpPenalty(routeU.timeWarp())
	if deltaCost >= 0 {
		return deltaCost
	}

	var tws segment.TimeWindowSegment
	if posU < posV {
		tws = segment.Merge(ls.arena[ls.p(u)].twBefore, routeU.twBetween(posU+ex.N, posV), routeU.twBetween(posU, posU+ex.N-1), ls.arena[ls.n(v)].twAfter)
	} else {
		tws = segment.Merge(ls.arena[v].twBefore, routeU.twBetween(posU, posU+ex.N-1), routeU.twBetween(posV+1, posU-1), ls.arena[ls.n(endU)].twAfter)
	}
	deltaCost += ls.ce.TimeWarpPenalty(tws.TotalTimeWarp())

	return deltaCost
}

func (ex *Exchange) evalSwapMove(ls *LocalSearch, u, v nodeRef) int {
	endU := ex.endOf(ls, u, ex.N)
	endV := ex.endOf(ls, v, ex.M)

	posU, posV := ls.positionOf(u), ls.positionOf(v)
	routeU, routeV := ls.routeOf(u), ls.routeOf(v)

	current := routeU.distBetween(posU-1, posU+ex.N) + routeV.distBetween(posV-1, posV+ex.M)

	proposed := ls.data.Dist(ls.clientOf(ls.p(u)), ls.clientOf(v)) +
		routeV.distBetween(posV, posV+ex.M-1) +
		ls.data.Dist(ls.clientOf(endV), ls.clientOf(ls.n(endU))) +
		ls.data.Dist(ls.clientOf(ls.p(v)), ls.clientOf(u)) +
		routeU.distBetween(posU, posU+ex.N-1) +
		ls.data.Dist(ls.clientOf(endU), ls.clientOf(ls.n(endV)))

	deltaCost := proposed - current

	if routeU != routeV {
		if routeU.isFeasible() && routeV.isFeasible() && deltaCost >= 0 {
			return deltaCost
		}

		loadU := routeU.loadBetween(posU, posU+ex.N-1)
		loadV := routeV.loadBetween(posV, posV+ex.M-1)
		loadDiff := loadU - loadV

		deltaCost += ls.ce.LoadPenalty(routeU.load()-loadDiff, ls.data.VehicleCapacity())
		deltaCost -= ls.ce.LoadPenalty(routeU.load(), ls.data.VehicleCapacity())

		deltaCost += ls.ce.LoadPenalty(routeV.load()+loadDiff, ls.data.VehicleCapacity())
		deltaCost -= ls.ce.LoadPenalty(routeV.load(), ls.data.VehicleCapacity())

		deltaCost -= ls.ce.TimeWarpPenalty(routeU.timeWarp())
		deltaCost -= ls.ce.TimeWarpPenalty(routeV.timeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		vTWS := segment.Merge(ls.arena[ls.p(v)].twBefore, routeU.twBetween(posU, posU+ex.N-1), ls.arena[ls.n(endV)].twAfter)
		deltaCost += ls.ce.TimeWarpPenalty(vTWS.TotalTimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		uTWS := segment.Merge(ls.arena[ls.p(u)].twBefore, routeV.twBetween(posV, posV+ex.M-1), ls.arena[ls.n(endU)].twAfter)
		deltaCost += ls.ce.TimeWarpPenalty(uTWS.TotalTimeWarp())

		return deltaCost
	}

	route := routeU
	if !route.hasTimeWarp() && deltaCost >= 0 {
		return deltaCost
	}
	deltaCost -= ls.ce.TimeWarpPenalty(route.timeWarp())
	if deltaCost >= 0 {
		return deltaCost
	}

	var tws segment.TimeWindowSegment
	if posU < posV {
		tws = segment.Merge(ls.arena[ls.p(u)].twBefore, route.twBetween(posV, posV+ex.M-1), route.twBetween(posU+ex.N, posV-1), route.twBetween(posU, posU+ex.N-1), ls.arena[ls.n(endV)].twAfter)
	} else {
		tws = segment.Merge(ls.arena[ls.p(v)].twBefore, route.twBetween(posU, posU+ex.N-1), route.twBetween(posV+ex.M, posU-1), route.twBetween(posV, posV+ex.M-1), ls.arena[ls.n(endU)].twAfter)
	}
	deltaCost += ls.ce.TimeWarpPenalty(tws.TotalTimeWarp())

	return deltaCost
}
