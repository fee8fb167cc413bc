package solution

import (
	"sort"

	"github.com/vrp-hgs/core/penalty"
	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/rng"
)

// Neighbour holds the predecessor and successor client (0 for the depot) of
// a client in some Individual's routes.
type Neighbour struct {
	Pred, Succ int
}

// Individual is an immutable snapshot of a routing decision: exactly
// data.NumVehicles() routes (client indices only, no depot entries), with
// every client appearing in exactly one route.
type Individual struct {
	data   *problem.Data
	routes [][]int
	neigh  []Neighbour

	nbRoutes   int
	distance   int
	excessLoad int
	timeWarp   int
}

// New constructs an Individual from explicit routes. The number of routes
// must not exceed data.NumVehicles(); non-empty routes are shifted to the
// low indices (stable, relative order preserved) and the result is padded
// with empty routes up to data.NumVehicles().
func New(data *problem.Data, routes [][]int) (*Individual, error) {
	if len(routes) > data.NumVehicles() {
		return nil, ErrTooManyRoutes
	}

	padded := make([][]int, data.NumVehicles())
	for i, r := range routes {
		padded[i] = append([]int(nil), r...)
	}
	for i := len(routes); i < len(padded); i++ {
		padded[i] = nil
	}

	sort.SliceStable(padded, func(i, j int) bool {
		return len(padded[i]) > 0 && len(padded[j]) == 0
	})

	return build(data, padded), nil
}

// NewRandom constructs an Individual from a random permutation of clients,
// distributed evenly across the fleet's routes.
func NewRandom(data *problem.Data, source rng.RNG) *Individual {
	n := data.NumClients()
	clients := make([]int, n)
	for i := range clients {
		clients[i] = i + 1
	}
	source.ShuffleInts(clients)

	numVehicles := data.NumVehicles()
	perVehicle := n / numVehicles
	if perVehicle < 1 {
		perVehicle = 1
	}
	perRoute := perVehicle
	if n%numVehicles != 0 {
		perRoute++
	}

	routes := make([][]int, numVehicles)
	for idx, c := range clients {
		r := idx / perRoute
		routes[r] = append(routes[r], c)
	}

	return build(data, routes)
}

func build(data *problem.Data, routes [][]int) *Individual {
	ind := &Individual{data: data, routes: routes}
	ind.makeNeighbours()
	ind.evaluateCompleteCost()
	return ind
}

func (ind *Individual) makeNeighbours() {
	ind.neigh = make([]Neighbour, ind.data.NumClients()+1)
	for _, route := range ind.routes {
		for idx, c := range route {
			pred, succ := 0, 0
			if idx > 0 {
				pred = route[idx-1]
			}
			if idx < len(route)-1 {
				succ = route[idx+1]
			}
			ind.neigh[c] = Neighbour{Pred: pred, Succ: succ}
		}
	}
}

func (ind *Individual) evaluateCompleteCost() {
	data := ind.data
	ind.nbRoutes = 0
	ind.distance = 0
	ind.excessLoad = 0
	ind.timeWarp = 0

	for _, route := range ind.routes {
		if len(route) == 0 {
			break
		}
		ind.nbRoutes++

		lastRelease := 0
		for _, c := range route {
			if r := data.Client(c).ReleaseTime; r > lastRelease {
				lastRelease = r
			}
		}

		rDist := data.Dist(0, route[0])
		rTimeWarp := 0
		load := data.Client(route[0]).Demand

		time := lastRelease + data.Dur(0, route[0])
		first := data.Client(route[0])
		if time < first.TWEarly {
			time = first.TWEarly
		}
		if time > first.TWLate {
			rTimeWarp += time - first.TWLate
			time = first.TWLate
		}

		for idx := 1; idx < len(route); idx++ {
			prev, cur := route[idx-1], route[idx]
			rDist += data.Dist(prev, cur)
			load += data.Client(cur).Demand

			time += data.Client(prev).ServiceDuration + data.Dur(prev, cur)

			c := data.Client(cur)
			if time < c.TWEarly {
				time = c.TWEarly
			}
			if time > c.TWLate {
				rTimeWarp += time - c.TWLate
				time = c.TWLate
			}
		}

		last := route[len(route)-1]
		rDist += data.Dist(last, 0)
		time += data.Client(last).ServiceDuration + data.Dur(last, 0)

		depot := data.Depot()
		if warp := time - depot.TWLate; warp > 0 {
			rTimeWarp += warp
		}

		ind.distance += rDist
		ind.timeWarp += rTimeWarp
		if excess := load - data.VehicleCapacity(); excess > 0 {
			ind.excessLoad += excess
		}
	}
}

// Cost returns this individual's penalized objective value under ce.
func (ind *Individual) Cost(ce *penalty.CostEvaluator) int {
	capacity := ind.data.VehicleCapacity()
	return ind.distance + ce.LoadPenalty(capacity+ind.excessLoad, capacity) + ce.TimeWarpPenalty(ind.timeWarp)
}

// Distance returns the total distance over all routes.
func (ind *Individual) Distance() int { return ind.distance }

// ExcessLoad returns the total excess load over all routes.
func (ind *Individual) ExcessLoad() int { return ind.excessLoad }

// TimeWarp returns the total time warp over all routes.
func (ind *Individual) TimeWarp() int { return ind.timeWarp }

// NumRoutes returns the number of non-empty routes. These are guaranteed to
// occupy the low indices of GetRoutes.
func (ind *Individual) NumRoutes() int { return ind.nbRoutes }

// IsFeasible reports whether this solution violates no load or time
// constraints.
func (ind *Individual) IsFeasible() bool {
	return !ind.HasExcessLoad() && !ind.HasTimeWarp()
}

// HasExcessLoad reports whether any route exceeds vehicle capacity.
func (ind *Individual) HasExcessLoad() bool { return ind.excessLoad > 0 }

// HasTimeWarp reports whether any route violates a time window.
func (ind *Individual) HasTimeWarp() bool { return ind.timeWarp > 0 }

// GetRoutes returns this individual's routing decision, padded with
// trailing empty routes to data.NumVehicles(), non-empty routes shifted to
// the front in their original relative order.
func (ind *Individual) GetRoutes() [][]int {
	out := make([][]int, len(ind.routes))
	for i, r := range ind.routes {
		out[i] = append([]int(nil), r...)
	}
	return out
}

// GetNeighbours returns, for every client (index 0 unused), its
// [pred, succ] pair across the routes. The depot is represented as 0 at
// route endpoints.
func (ind *Individual) GetNeighbours() []Neighbour {
	out := make([]Neighbour, len(ind.neigh))
	copy(out, ind.neigh)
	return out
}

// BrokenPairsDistance counts, for each non-depot client, how often its
// predecessor and successor in ind differ from those in other (depot
// treated as a sentinel). This is a structural diversity measure and is
// symmetric: BrokenPairsDistance(a, b) == BrokenPairsDistance(b, a).
func (ind *Individual) BrokenPairsDistance(other *Individual) int {
	dist := 0
	for j := 1; j <= ind.data.NumClients(); j++ {
		tPred, tSucc := ind.neigh[j].Pred, ind.neigh[j].Succ
		oPred, oSucc := other.neigh[j].Pred, other.neigh[j].Succ

		broken := (tSucc != oSucc && tSucc != oPred) ||
			(tPred == 0 && oPred != 0 && oSucc != 0)
		if broken {
			dist++
		}
	}
	return dist
}
