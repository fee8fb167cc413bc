package population_test

import (
	"fmt"

	"github.com/vrp-hgs/core/penalty"
	"github.com/vrp-hgs/core/population"
	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/rng"
	"github.com/vrp-hgs/core/solution"
)

// ExamplePopulation demonstrates building a Population, adding an
// Individual, and reading back the best-known feasible solution.
func ExamplePopulation() {
	wide := 1 << 30
	clients := []problem.Client{
		{TWEarly: 0, TWLate: wide},
		{Demand: 1, TWEarly: 0, TWLate: wide},
		{Demand: 1, TWEarly: 0, TWLate: wide},
	}
	rows := [][]int{
		{0, 10, 20},
		{10, 0, 10},
		{20, 10, 0},
	}
	dist, _ := problem.NewMatrix(rows)
	dur, _ := problem.NewMatrix(rows)
	data, _ := problem.New(clients, 1000, 1, dist, dur)

	ce := penalty.New(10, 10)
	pop := population.New(data, ce, rng.NewSource(1), population.Params{MinPopSize: 0, NbElite: 1, NbClose: 1})

	indiv, _ := solution.New(data, [][]int{{1, 2}})
	pop.Add(indiv)

	best, _ := pop.Best()
	fmt.Println(best.Distance())
	// Output: 40
}
