package solution_test

import (
	"fmt"

	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/solution"
)

func ExampleNew() {
	clients := []problem.Client{
		{TWEarly: 0, TWLate: 1 << 30},
		{Demand: 1, TWEarly: 0, TWLate: 1 << 30},
		{Demand: 1, TWEarly: 0, TWLate: 1 << 30},
	}
	rows := [][]int{
		{0, 10, 20},
		{10, 0, 10},
		{20, 10, 0},
	}
	dist, _ := problem.NewMatrix(rows)
	dur, _ := problem.NewMatrix(rows)
	data, _ := problem.New(clients, 10, 1, dist, dur)

	ind, err := solution.New(data, [][]int{{1, 2}})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Print(ind)
	// Output:
	// Route #1: 1 2
	// Distance: 40
}
