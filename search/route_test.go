package search

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vrp-hgs/core/penalty"
	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/rng"
	"github.com/vrp-hgs/core/segment"
	"github.com/vrp-hgs/core/solution"
)

func routeTestInstance(t *testing.T) *problem.Data {
	wide := 1 << 30
	clients := []problem.Client{
		{TWEarly: 0, TWLate: wide},
		{Demand: 3, TWEarly: 0, TWLate: wide},
		{Demand: 2, TWEarly: 0, TWLate: wide},
		{Demand: 4, TWEarly: 0, TWLate: wide},
	}
	rows := [][]int{
		{0, 5, 9, 12},
		{5, 0, 4, 8},
		{9, 4, 0, 3},
		{12, 8, 3, 0},
	}
	dist, err := problem.NewMatrix(rows)
	require.NoError(t, err)
	dur, err := problem.NewMatrix(rows)
	require.NoError(t, err)

	data, err := problem.New(clients, 1000, 1, dist, dur)
	require.NoError(t, err)
	return data
}

// TestRouteUpdate_CumulativeConsistency checks property 2: after update(),
// cumulatedDistance/cumulatedLoad at every position equal the running sum
// of edge distances/demands up to that position.
func TestRouteUpdate_CumulativeConsistency(t *testing.T) {
	data := routeTestInstance(t)
	ce := penalty.New(10, 10)
	ls := New(data, ce, rng.NewSource(1), BuildNeighbours(data, DefaultNeighbourhoodParams()), DefaultParams())

	ind, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)
	ls.loadIndividual(ind)

	rt := &ls.routes[0]
	clients := []int{1, 2, 3}

	wantDist, wantLoad := 0, 0
	prevClient := 0
	for pos, c := range clients {
		wantDist += data.Dist(prevClient, c)
		wantLoad += data.Client(c).Demand
		prevClient = c

		ref := rt.at(pos + 1)
		require.Equal(t, c, ls.clientOf(ref))
		require.Equal(t, wantDist, ls.arena[ref].cumulatedDistance)
		require.Equal(t, wantLoad, ls.arena[ref].cumulatedLoad)
	}

	// The end depot closes the loop: its cumulative distance includes the
	// final edge back to the depot.
	wantDist += data.Dist(clients[len(clients)-1], 0)
	require.Equal(t, wantDist, ls.arena[rt.endDepot].cumulatedDistance)
	require.Equal(t, wantLoad, ls.arena[rt.endDepot].cumulatedLoad)
}

// TestRouteUpdate_PrefixSuffixAgreeWithWhole checks property 3:
// merge(twBefore[n], twAfter[succ(n)]) == routeTotalTws for every non-depot
// node n.
func TestRouteUpdate_PrefixSuffixAgreeWithWhole(t *testing.T) {
	data := routeTestInstance(t)
	ce := penalty.New(10, 10)
	ls := New(data, ce, rng.NewSource(1), BuildNeighbours(data, DefaultNeighbourhoodParams()), DefaultParams())

	ind, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)
	ls.loadIndividual(ind)

	rt := &ls.routes[0]
	routeTotal := ls.arena[rt.endDepot].twBefore

	for pos := 1; pos <= rt.size(); pos++ {
		ref := rt.at(pos)
		succ := ls.n(ref)
		got := segment.Merge(ls.arena[ref].twBefore, ls.arena[succ].twAfter)
		require.Equal(t, routeTotal.TotalTimeWarp(), got.TotalTimeWarp())
		require.Equal(t, routeTotal.Duration(), got.Duration())
	}
}

// TestRoute_AtResolvesDepotSentinels checks that at(0) and at(size()+1)
// resolve to the start/end depot sentinels, not a slice panic.
func TestRoute_AtResolvesDepotSentinels(t *testing.T) {
	data := routeTestInstance(t)
	ce := penalty.New(10, 10)
	ls := New(data, ce, rng.NewSource(1), BuildNeighbours(data, DefaultNeighbourhoodParams()), DefaultParams())

	ind, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)
	ls.loadIndividual(ind)

	rt := &ls.routes[0]
	require.Equal(t, rt.startDepot, rt.at(0))
	require.Equal(t, rt.endDepot, rt.at(rt.size()+1))
}
