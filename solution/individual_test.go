package solution_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vrp-hgs/core/penalty"
	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/rng"
	"github.com/vrp-hgs/core/solution"
)

func lineInstance(t *testing.T, numVehicles int) *problem.Data {
	clients := []problem.Client{
		{X: 0, Y: 0, TWEarly: 0, TWLate: 1 << 30},
		{X: 10, Y: 0, Demand: 1, TWEarly: 0, TWLate: 1 << 30},
		{X: 20, Y: 0, Demand: 1, TWEarly: 0, TWLate: 1 << 30},
		{X: 30, Y: 0, Demand: 1, TWEarly: 0, TWLate: 1 << 30},
	}
	coords := []int{0, 10, 20, 30}
	rows := make([][]int, 4)
	for i := range rows {
		rows[i] = make([]int, 4)
		for j := range rows[i] {
			d := coords[i] - coords[j]
			if d < 0 {
				d = -d
			}
			rows[i][j] = d
		}
	}
	dist, err := problem.NewMatrix(rows)
	require.NoError(t, err)
	dur, err := problem.NewMatrix(rows)
	require.NoError(t, err)

	data, err := problem.New(clients, 1000, numVehicles, dist, dur)
	require.NoError(t, err)
	return data
}

// S1: 3 clients on a line; expected optimal route [1,2,3] with distance 60.
func TestNew_S1(t *testing.T) {
	data := lineInstance(t, 1)
	ind, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)

	require.Equal(t, 60, ind.Distance())
	require.Equal(t, 0, ind.ExcessLoad())
	require.Equal(t, 0, ind.TimeWarp())
	require.True(t, ind.IsFeasible())
	require.Equal(t, 1, ind.NumRoutes())
}

// S2: 4 clients, capacity 10, demands [6,6,6,6]; [[1,2],[3,4]] must have
// excessLoad == 4 and HasExcessLoad() == true.
func TestNew_S2(t *testing.T) {
	clients := []problem.Client{
		{TWEarly: 0, TWLate: 1 << 30},
		{Demand: 6, TWEarly: 0, TWLate: 1 << 30},
		{Demand: 6, TWEarly: 0, TWLate: 1 << 30},
		{Demand: 6, TWEarly: 0, TWLate: 1 << 30},
		{Demand: 6, TWEarly: 0, TWLate: 1 << 30},
	}
	rows := make([][]int, 5)
	for i := range rows {
		rows[i] = make([]int, 5)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 1
			}
		}
	}
	dist, err := problem.NewMatrix(rows)
	require.NoError(t, err)
	dur, err := problem.NewMatrix(rows)
	require.NoError(t, err)

	data, err := problem.New(clients, 10, 2, dist, dur)
	require.NoError(t, err)

	ind, err := solution.New(data, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, 4, ind.ExcessLoad())
	require.True(t, ind.HasExcessLoad())
}

func TestNew_TooManyRoutes(t *testing.T) {
	data := lineInstance(t, 1)
	_, err := solution.New(data, [][]int{{1}, {2, 3}})
	require.ErrorIs(t, err, solution.ErrTooManyRoutes)
}

func TestNew_PadsAndShiftsEmptyRoutesToEnd(t *testing.T) {
	data := lineInstance(t, 3)
	ind, err := solution.New(data, [][]int{nil, {1, 2, 3}, nil})
	require.NoError(t, err)

	routes := ind.GetRoutes()
	require.Len(t, routes, 3)
	require.Equal(t, []int{1, 2, 3}, routes[0])
	require.Empty(t, routes[1])
	require.Empty(t, routes[2])
	require.Equal(t, 1, ind.NumRoutes())
}

func TestCost(t *testing.T) {
	data := lineInstance(t, 1)
	ind, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)

	ce := penalty.New(10, 10)
	require.Equal(t, 60, ind.Cost(ce))
}

func TestBrokenPairsDistance_Symmetric(t *testing.T) {
	data := lineInstance(t, 1)
	a, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)
	b, err := solution.New(data, [][]int{{3, 2, 1}})
	require.NoError(t, err)

	require.Equal(t, a.BrokenPairsDistance(b), b.BrokenPairsDistance(a))
}

func TestBrokenPairsDistance_IdenticalIsZero(t *testing.T) {
	data := lineInstance(t, 1)
	a, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)
	b, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)

	require.Equal(t, 0, a.BrokenPairsDistance(b))
}

func TestNewRandom_AssignsEveryClientOnce(t *testing.T) {
	data := lineInstance(t, 2)
	source := rng.NewSource(123)
	ind := solution.NewRandom(data, source)

	seen := map[int]bool{}
	for _, route := range ind.GetRoutes() {
		for _, c := range route {
			require.False(t, seen[c], "client %d assigned twice", c)
			seen[c] = true
		}
	}
	require.Len(t, seen, data.NumClients())
}

func TestString_FormatsAsVRPLIB(t *testing.T) {
	data := lineInstance(t, 1)
	ind, err := solution.New(data, [][]int{{1, 2, 3}})
	require.NoError(t, err)

	require.Equal(t, "Route #1: 1 2 3\nDistance: 60\n", ind.String())
}
