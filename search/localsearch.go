package search

import (
	"math"
	"sort"

	"github.com/vrp-hgs/core/penalty"
	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/rng"
	"github.com/vrp-hgs/core/segment"
	"github.com/vrp-hgs/core/solution"
)

// Params bundles the Local Search engine's tunable knobs not already
// covered by NeighbourhoodParams (spec.md §6's postProcessPathLength
// option).
type Params struct {
	// PostProcessPathLength is the window size k for subpath enumeration
	// (spec.md §4.5.3). k <= 1 disables enumeration.
	PostProcessPathLength int
}

// DefaultPostProcessPathLength matches the reference implementation's
// default subpath-enumeration window.
const DefaultPostProcessPathLength = 4

// DefaultParams returns the reference implementation's default Local
// Search parameters.
func DefaultParams() Params {
	return Params{PostProcessPathLength: DefaultPostProcessPathLength}
}

// LocalSearch drives node- and route-operators to a local optimum around a
// single candidate solution, maintaining an arena of intrusively linked
// routes and nodes that is reloaded (not reallocated) on every call.
//
// Grounded on LocalSearch in
// _examples/original_source/hgs/include/LocalSearch.h and
// _examples/original_source/hgs/src/LocalSearch.cpp.
type LocalSearch struct {
	data   *problem.Data
	ce     *penalty.CostEvaluator
	source rng.RNG
	params Params

	neighbours [][]int // neighbours[client], 1-indexed; depot has none

	orderNodes  []int // random node visitation order, reshuffled per Search
	orderRoutes []int // random route visitation order, reshuffled per Intensify

	lastModified []int // per-route modification stamp

	arena  []node  // index 0 unused; see node.go for the index layout
	routes []route

	nodeOps  []NodeOperator
	routeOps []RouteOperator

	nbMoves         int
	searchCompleted bool
}

// New builds a LocalSearch engine with pre-allocated per-client and
// per-vehicle buffers sized for data, using neighbours as the granular
// neighborhood (see BuildNeighbours).
func New(data *problem.Data, ce *penalty.CostEvaluator, source rng.RNG, neighbours [][]int, params Params) *LocalSearch {
	numClients := data.NumClients()
	numVehicles := data.NumVehicles()

	ls := &LocalSearch{
		data:         data,
		ce:           ce,
		source:       source,
		params:       params,
		neighbours:   neighbours,
		orderNodes:   make([]int, numClients),
		orderRoutes:  make([]int, numVehicles),
		lastModified: make([]int, numVehicles),
		arena:        make([]node, numClients+1+2*numVehicles),
		routes:       make([]route, numVehicles),
	}

	for i := range ls.orderNodes {
		ls.orderNodes[i] = i + 1
	}
	for i := range ls.orderRoutes {
		ls.orderRoutes[i] = i
	}

	for r := 0; r < numVehicles; r++ {
		start := nodeRef(numClients + 1 + 2*r)
		end := nodeRef(numClients + 2 + 2*r)

		ls.routes[r] = route{
			ls:         ls,
			data:       data,
			idx:        r,
			startDepot: start,
			endDepot:   end,
		}
		ls.arena[start] = node{client: 0, route: r}
		ls.arena[end] = node{client: 0, route: r}
	}

	return ls
}

// AddNodeOperator registers a node operator to be tried, in shuffled order,
// on every (U, V) pair tested by Search.
func (ls *LocalSearch) AddNodeOperator(op NodeOperator) { ls.nodeOps = append(ls.nodeOps, op) }

// AddRouteOperator registers a route operator to be tried, in shuffled
// order, on every route pair tested by Intensify.
func (ls *LocalSearch) AddRouteOperator(op RouteOperator) { ls.routeOps = append(ls.routeOps, op) }

// SetNeighbours replaces the granular neighborhood used to bound node
// operator enumeration.
func (ls *LocalSearch) SetNeighbours(neighbours [][]int) { ls.neighbours = neighbours }

// GetNeighbours returns the current granular neighborhood.
func (ls *LocalSearch) GetNeighbours() [][]int { return ls.neighbours }

func clientNodeRef(c int) nodeRef { return nodeRef(c) }

// clientSegment builds the one-client TimeWindowSegment for client c.
func (ls *LocalSearch) clientSegment(c int) segment.TimeWindowSegment {
	cl := ls.data.Client(c)
	return segment.NewTimeWindowSegment(ls.data.DurationMatrix(), c, cl.ServiceDuration, cl.TWEarly, cl.TWLate, cl.ReleaseTime)
}

// Search performs regular (node-based) local search around indiv and
// returns the resulting Individual (spec.md §4.5.1).
func (ls *LocalSearch) Search(indiv *solution.Individual) (*solution.Individual, error) {
	if len(ls.nodeOps) == 0 {
		return nil, ErrNoOperators
	}

	ls.loadIndividual(indiv)

	ls.source.ShuffleInts(ls.orderNodes)
	shuffleNodeOps(ls.source, ls.nodeOps)

	lastTestedNodes := make([]int, ls.data.NumClients()+1)
	for i := range lastTestedNodes {
		lastTestedNodes[i] = -1
	}
	for i := range ls.lastModified {
		ls.lastModified[i] = 0
	}

	ls.searchCompleted = false
	ls.nbMoves = 0

	for step := 0; !ls.searchCompleted; step++ {
		ls.searchCompleted = true

		for _, uClient := range ls.orderNodes {
			u := clientNodeRef(uClient)
			stamp := lastTestedNodes[uClient]
			lastTestedNodes[uClient] = ls.nbMoves

			for _, vClient := range ls.neighbours[uClient] {
				v := clientNodeRef(vClient)

				if ls.lastModified[ls.arena[u].route] > stamp || ls.lastModified[ls.arena[v].route] > stamp {
					if ls.applyNodeOps(u, v) {
						continue
					}
					if pv := ls.p(v); ls.isDepot(pv) && ls.applyNodeOps(u, pv) {
						continue
					}
				}
			}

			if step > 0 {
				empty := ls.findEmptyRoute()
				if empty == nil {
					continue
				}
				ls.applyNodeOps(u, empty.startDepot)
			}
		}
	}

	return ls.exportIndividual(), nil
}

// Intensify performs a more intensive local search around indiv using
// route-based operators and subpath enumeration (spec.md §4.5.2).
func (ls *LocalSearch) Intensify(indiv *solution.Individual) *solution.Individual {
	ls.loadIndividual(indiv)

	ls.source.ShuffleInts(ls.orderRoutes)
	shuffleRouteOps(ls.source, ls.routeOps)

	lastTestedRoutes := make([]int, ls.data.NumVehicles())
	for i := range lastTestedRoutes {
		lastTestedRoutes[i] = -1
	}
	for i := range ls.lastModified {
		ls.lastModified[i] = 0
	}

	ls.searchCompleted = false
	ls.nbMoves = 0

	for !ls.searchCompleted {
		ls.searchCompleted = true

		for _, rU := range ls.orderRoutes {
			u := &ls.routes[rU]
			if u.empty() {
				continue
			}

			lastTested := lastTestedRoutes[u.idx]
			lastTestedRoutes[u.idx] = ls.nbMoves

			for rV := 0; rV != u.idx; rV++ {
				v := &ls.routes[rV]
				if v.empty() {
					continue
				}

				lastModifiedRoute := maxInt(ls.lastModified[u.idx], ls.lastModified[v.idx])
				if lastModifiedRoute > lastTested {
					ls.applyRouteOps(u, v)
				}
			}

			if ls.lastModified[u.idx] > lastTested {
				ls.enumerateSubpaths(u)
			}
		}
	}

	return ls.exportIndividual()
}

func (ls *LocalSearch) applyNodeOps(u, v nodeRef) bool {
	for _, op := range ls.nodeOps {
		if op.Evaluate(ls, u, v) < 0 {
			routeU, routeV := ls.arena[u].route, ls.arena[v].route

			op.Apply(ls, u, v)
			ls.update(&ls.routes[routeU], &ls.routes[routeV])

			return true
		}
	}
	return false
}

func (ls *LocalSearch) applyRouteOps(u, v *route) bool {
	for _, op := range ls.routeOps {
		if op.Evaluate(ls, u, v) < 0 {
			op.Apply(ls, u, v)
			ls.update(u, v)

			return true
		}
	}
	return false
}

func (ls *LocalSearch) update(u, v *route) {
	ls.nbMoves++
	ls.searchCompleted = false

	u.update()
	ls.lastModified[u.idx] = ls.nbMoves
	for _, op := range ls.routeOps {
		op.Update(u)
	}

	if u != v {
		v.update()
		ls.lastModified[v.idx] = ls.nbMoves
		for _, op := range ls.routeOps {
			op.Update(v)
		}
	}
}

func (ls *LocalSearch) findEmptyRoute() *route {
	for i := range ls.routes {
		if ls.routes[i].empty() {
			return &ls.routes[i]
		}
	}
	return nil
}

// loadIndividual rewires the intrusive chains from indiv's routes and
// rebuilds every route's cumulative aggregates.
func (ls *LocalSearch) loadIndividual(indiv *solution.Individual) {
	for c := 1; c <= ls.data.NumClients(); c++ {
		ls.arena[c].client = c
		ls.arena[c].tw = ls.clientSegment(c)
	}
	depotSeg := ls.clientSegment(0)

	routes := indiv.GetRoutes()
	for r := 0; r < ls.data.NumVehicles(); r++ {
		rt := &ls.routes[r]
		start, end := rt.startDepot, rt.endDepot

		ls.arena[start].next = end
		ls.arena[start].prev = end
		ls.arena[end].next = start
		ls.arena[end].prev = start
		ls.arena[start].tw = depotSeg
		ls.arena[end].tw = depotSeg

		prev := start
		for _, c := range routes[r] {
			cur := clientNodeRef(c)
			ls.arena[cur].route = r
			ls.arena[cur].prev = prev
			ls.arena[prev].next = cur
			prev = cur
		}
		ls.arena[prev].next = end
		ls.arena[end].prev = prev

		rt.update()
	}
}

// exportIndividual reads the current chains back out, ordering non-empty
// routes by the polar angle of their centroid (empty routes sort last).
func (ls *LocalSearch) exportIndividual() *solution.Individual {
	type ordered struct {
		angle float64
		idx   int
	}
	order := make([]ordered, len(ls.routes))
	for r := range ls.routes {
		order[r] = ordered{angle: ls.routes[r].angleCenter, idx: r}
	}
	sort.SliceStable(order, func(i, j int) bool {
		ai, aj := order[i].angle, order[j].angle
		if math.IsInf(ai, 1) && math.IsInf(aj, 1) {
			return order[i].idx < order[j].idx
		}
		return ai < aj
	})

	routes := make([][]int, len(ls.routes))
	for out, o := range order {
		rt := &ls.routes[o.idx]
		r := make([]int, 0, rt.size())
		for cur := ls.arena[rt.startDepot].next; cur != rt.endDepot; cur = ls.arena[cur].next {
			r = append(r, ls.arena[cur].client)
		}
		routes[out] = r
	}

	ind, err := solution.New(ls.data, routes)
	if err != nil {
		// Unreachable: routes always has exactly NumVehicles entries built
		// from a previously-valid Individual's own clients.
		panic(err)
	}
	return ind
}

func shuffleNodeOps(source rng.RNG, ops []NodeOperator) {
	idx := make([]int, len(ops))
	for i := range idx {
		idx[i] = i
	}
	source.ShuffleInts(idx)
	shuffled := make([]NodeOperator, len(ops))
	for i, j := range idx {
		shuffled[i] = ops[j]
	}
	copy(ops, shuffled)
}

func shuffleRouteOps(source rng.RNG, ops []RouteOperator) {
	idx := make([]int, len(ops))
	for i := range idx {
		idx[i] = i
	}
	source.ShuffleInts(idx)
	shuffled := make([]RouteOperator, len(ops))
	for i, j := range idx {
		shuffled[i] = ops[j]
	}
	copy(ops, shuffled)
}
