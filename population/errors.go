package population

import "errors"

// ErrEmpty is returned by Best when no feasible individual has ever been
// added to the population.
var ErrEmpty = errors.New("population: no feasible individual found yet")
