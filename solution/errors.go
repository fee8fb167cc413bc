package solution

import "errors"

// ErrTooManyRoutes is returned when more routes are given than the
// instance's fleet size.
var ErrTooManyRoutes = errors.New("solution: number of routes exceeds number of vehicles")
