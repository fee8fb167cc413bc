package problem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vrp-hgs/core/problem"
)

func line3() (clients []problem.Client, dist, dur problem.Matrix) {
	// S1: three clients on a line at x = 10, 20, 30; depot at 0.
	clients = []problem.Client{
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
	dist, _ = problem.NewMatrix(rows)
	dur, _ = problem.NewMatrix(rows)
	return
}

func TestNew_Valid(t *testing.T) {
	clients, dist, dur := line3()
	data, err := problem.New(clients, 1000, 2, dist, dur)
	require.NoError(t, err)
	require.Equal(t, 3, data.NumClients())
	require.Equal(t, 2, data.NumVehicles())
	require.Equal(t, 1000, data.VehicleCapacity())
	require.Equal(t, 30, data.Dist(0, 3))
	require.Equal(t, 10, data.Dist(0, 1))
}

func TestNew_InvalidDepot(t *testing.T) {
	clients, dist, dur := line3()
	clients[0].Demand = 5
	_, err := problem.New(clients, 1000, 2, dist, dur)
	require.True(t, errors.Is(err, problem.ErrInvalidDepot))
}

func TestNew_NegativeDemand(t *testing.T) {
	clients, dist, dur := line3()
	clients[1].Demand = -1
	_, err := problem.New(clients, 1000, 2, dist, dur)
	require.True(t, errors.Is(err, problem.ErrNegativeDemand))
}

func TestNew_InvalidTimeWindow(t *testing.T) {
	clients, dist, dur := line3()
	clients[2].TWEarly, clients[2].TWLate = 10, 5
	_, err := problem.New(clients, 1000, 2, dist, dur)
	require.True(t, errors.Is(err, problem.ErrInvalidTimeWindow))
}

func TestNew_DimensionMismatch(t *testing.T) {
	clients, _, dur := line3()
	badRows := [][]int{{0, 1}, {1, 0}}
	bad, err := problem.NewMatrix(badRows)
	require.NoError(t, err)
	_, err = problem.New(clients, 1000, 2, bad, dur)
	require.True(t, errors.Is(err, problem.ErrDimensionMismatch))
}

func TestNew_InvalidCapacity(t *testing.T) {
	clients, dist, dur := line3()
	_, err := problem.New(clients, 0, 2, dist, dur)
	require.True(t, errors.Is(err, problem.ErrInvalidCapacity))
}

func TestNew_InvalidVehicleCount(t *testing.T) {
	clients, dist, dur := line3()
	_, err := problem.New(clients, 1000, 0, dist, dur)
	require.True(t, errors.Is(err, problem.ErrInvalidVehicleCount))
}

func TestMatrix_DimensionMismatchRow(t *testing.T) {
	_, err := problem.NewMatrix([][]int{{0, 1}, {1, 0, 2}})
	require.True(t, errors.Is(err, problem.ErrDimensionMismatch))
}
