package search

import (
	"math"

	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/segment"
)

// route is the search-time view of one vehicle's chain: an intrusive
// sequence of client nodes between a start- and an end-depot sentinel, with
// cached cumulative aggregates recomputed by update().
//
// Grounded on Route in _examples/original_source/hgs/include/Route.h and
// the update() forward/reverse-pass rebuild in
// _examples/original_source/pyvrp/cpp/educate/Route.cpp.
type route struct {
	ls   *LocalSearch
	data *problem.Data

	idx                  int
	startDepot, endDepot nodeRef

	nodes []nodeRef // cached chain order, position i+1 at nodes[i]

	load_     int
	timeWarp_ int

	angleCenter float64 // polar angle of the route's centroid, for export ordering
}

// at returns the node at the given 1-based position (operator[] in the
// reference implementation). Position 0 and size()+1 resolve to the start-
// and end-depot sentinels respectively, mirroring the reference
// implementation's inclusion of both boundary depots in range queries.
func (rt *route) at(position int) nodeRef {
	if position == 0 {
		return rt.startDepot
	}
	if position == len(rt.nodes)+1 {
		return rt.endDepot
	}
	return rt.nodes[position-1]
}

func (rt *route) size() int  { return len(rt.nodes) }
func (rt *route) empty() bool { return len(rt.nodes) == 0 }

func (rt *route) load() int     { return rt.load_ }
func (rt *route) timeWarp() int { return rt.timeWarp_ }

func (rt *route) hasExcessCapacity() bool { return rt.load_ > rt.data.VehicleCapacity() }
func (rt *route) hasTimeWarp() bool       { return rt.timeWarp_ > 0 }
func (rt *route) isFeasible() bool        { return !rt.hasExcessCapacity() && !rt.hasTimeWarp() }

// twBetween returns the merged time window segment covering positions
// [start, end] (1-based, inclusive), by merging each node's own segment.
func (rt *route) twBetween(start, end int) segment.TimeWindowSegment {
	tws := rt.ls.arena[rt.at(start)].tw
	for pos := start + 1; pos <= end; pos++ {
		tws = segment.Merge(tws, rt.ls.arena[rt.at(pos)].tw)
	}
	return tws
}

// distBetween returns the cumulative distance of positions (start, end]:
// cumDist[end] - cumDist[start]. start == 0 refers to the start depot.
func (rt *route) distBetween(start, end int) int {
	startDist := 0
	if start > 0 {
		startDist = rt.ls.arena[rt.at(start)].cumulatedDistance
	}
	endDist := rt.ls.arena[rt.at(end)].cumulatedDistance
	return endDist - startDist
}

// loadBetween returns the cumulative load of positions [start, end]
// inclusive: cumLoad[end] - cumLoad[start] + demand(start), which equals
// cumLoad[end] - cumLoad[start-1].
func (rt *route) loadBetween(start, end int) int {
	startRef := rt.startDepot
	if start > 0 {
		startRef = rt.at(start)
	}
	atStart := rt.data.Client(rt.ls.arena[startRef].client).Demand
	startLoad := rt.ls.arena[startRef].cumulatedLoad
	endLoad := rt.ls.arena[rt.at(end)].cumulatedLoad
	return endLoad - startLoad + atStart
}

// update performs a forward pass rebuilding position, cumulatedLoad,
// cumulatedDistance and twBefore; then a reverse pass rebuilding twAfter;
// then recomputes the centroid/angle, total load and total time warp.
// Cost: O(|route|).
func (rt *route) update() {
	a := rt.ls.arena

	rt.nodes = rt.nodes[:0]
	for cur := a[rt.startDepot].next; cur != rt.endDepot; cur = a[cur].next {
		rt.nodes = append(rt.nodes, cur)
	}

	load := 0
	dist := 0
	var sumX, sumY float64

	prev := rt.startDepot
	a[rt.startDepot].twBefore = a[rt.startDepot].tw

	for pos, ref := range rt.nodes {
		client := a[ref].client
		cl := rt.data.Client(client)

		load += cl.Demand
		dist += rt.data.Dist(a[prev].client, client)

		a[ref].position = pos + 1
		a[ref].cumulatedLoad = load
		a[ref].cumulatedDistance = dist
		a[ref].twBefore = segment.Merge(a[prev].twBefore, a[ref].tw)

		sumX += float64(cl.X)
		sumY += float64(cl.Y)

		prev = ref
	}
	// The end depot closes the loop like any other stop: its cumulative
	// distance includes the final edge back from the last client, matching
	// the reference implementation's inclusion of the end depot as the
	// last element of its position-indexed node list.
	dist += rt.data.Dist(a[prev].client, a[rt.endDepot].client)

	a[rt.startDepot].cumulatedLoad = 0
	a[rt.startDepot].cumulatedDistance = 0
	a[rt.endDepot].cumulatedLoad = load
	a[rt.endDepot].cumulatedDistance = dist
	a[rt.endDepot].twBefore = segment.Merge(a[prev].twBefore, a[rt.endDepot].tw)

	a[rt.endDepot].twAfter = a[rt.endDepot].tw
	next := rt.endDepot
	for i := len(rt.nodes) - 1; i >= 0; i-- {
		ref := rt.nodes[i]
		a[ref].twAfter = segment.Merge(a[ref].tw, a[next].twAfter)
		next = ref
	}
	a[rt.startDepot].twAfter = segment.Merge(a[rt.startDepot].tw, a[next].twAfter)

	rt.load_ = load
	rt.timeWarp_ = a[rt.endDepot].twBefore.TotalTimeWarp()

	if len(rt.nodes) == 0 {
		rt.angleCenter = math.Inf(1) // empty routes sort last on export
		return
	}

	depot := rt.data.Depot()
	meanX := sumX / float64(len(rt.nodes))
	meanY := sumY / float64(len(rt.nodes))
	rt.angleCenter = math.Atan2(meanY-float64(depot.Y), meanX-float64(depot.X))
}
