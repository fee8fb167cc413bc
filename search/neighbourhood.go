package search

import (
	"sort"

	"github.com/vrp-hgs/core/problem"
)

// NeighbourhoodParams configures the granular neighborhood builder
// (spec.md §4.4, §6's nbGranular/weightWaitTime/weightTimeWarp options).
type NeighbourhoodParams struct {
	// NbGranular is the number of closest neighbors kept per client.
	NbGranular int
	// WeightWaitTime weighs the wait-time term of the proximity metric.
	WeightWaitTime int
	// WeightTimeWarp weighs the time-warp term of the proximity metric.
	WeightTimeWarp int
}

// DefaultNbGranular, DefaultWeightWaitTime and DefaultWeightTimeWarp are the
// coefficients used by the reference implementation's default configuration.
const (
	DefaultNbGranular    = 10
	DefaultWeightWaitTime = 1
	DefaultWeightTimeWarp = 1
)

// DefaultNeighbourhoodParams returns the reference implementation's default
// neighborhood construction parameters.
func DefaultNeighbourhoodParams() NeighbourhoodParams {
	return NeighbourhoodParams{
		NbGranular:     DefaultNbGranular,
		WeightWaitTime: DefaultWeightWaitTime,
		WeightTimeWarp: DefaultWeightTimeWarp,
	}
}

// Validate reports a ConfigurationError-kind error if NbGranular is zero.
func (p NeighbourhoodParams) Validate() error {
	if p.NbGranular == 0 {
		return ErrZeroGranularity
	}
	return nil
}

type proximityEntry struct {
	prox   int
	client int
}

// BuildNeighbours computes, for every client (excluding the depot), its
// NbGranular closest clients under the directional proximity metric of
// spec.md §4.4 (symmetrized by taking min(prox(i,j), prox(j,i))).
//
// Grounded on LocalSearch::calculateNeighbours in
// _examples/original_source/hgs/src/LocalSearch.cpp.
func BuildNeighbours(data *problem.Data, params NeighbourhoodParams) [][]int {
	n := data.NumClients()
	neighbours := make([][]int, n+1)

	granularity := params.NbGranular
	if granularity > n-1 {
		granularity = n - 1
	}
	if granularity < 0 {
		granularity = 0
	}

	for i := 1; i <= n; i++ {
		entries := make([]proximityEntry, 0, n-1)
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			entries = append(entries, proximityEntry{prox: symmetricProximity(data, params, i, j), client: j})
		}

		sort.Slice(entries, func(a, b int) bool {
			if entries[a].prox != entries[b].prox {
				return entries[a].prox < entries[b].prox
			}
			return entries[a].client < entries[b].client
		})

		if granularity < len(entries) {
			entries = entries[:granularity]
		}

		list := make([]int, len(entries))
		for idx, e := range entries {
			list[idx] = e.client
		}
		sort.Ints(list)
		neighbours[i] = list
	}

	return neighbours
}

func symmetricProximity(data *problem.Data, params NeighbourhoodParams, i, j int) int {
	return minInt(directedProximity(data, params, i, j), directedProximity(data, params, j, i))
}

// directedProximity computes prox(i->j) (traveling from j to i is the
// direction actually evaluated by the reference formula with roles
// swapped; see calculateNeighbours for the exact correspondence).
func directedProximity(data *problem.Data, params NeighbourhoodParams, i, j int) int {
	ci, cj := data.Client(i), data.Client(j)

	maxRelease := maxInt(ci.ReleaseTime, cj.ReleaseTime)

	waitTime := cj.TWEarly - data.Dist(i, j) - ci.ServiceDuration - ci.TWLate
	earliestArrival := maxInt(maxRelease+data.Dist(0, i), ci.TWEarly)
	timeWarp := earliestArrival + ci.ServiceDuration + data.Dist(i, j) - cj.TWLate

	return data.Dist(i, j) +
		params.WeightWaitTime*maxInt(0, waitTime) +
		params.WeightTimeWarp*maxInt(0, timeWarp)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
