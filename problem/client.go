package problem

// Client describes one customer (or, for index 0, the depot): its location,
// demand, service duration, time window and release time. Client values are
// immutable once a Data instance has been constructed.
type Client struct {
	// X, Y are the client's integer coordinates.
	X, Y int

	// Demand is the quantity to deliver/collect; must be 0 for the depot.
	Demand int

	// ServiceDuration is the time spent serving the client; must be 0 for
	// the depot.
	ServiceDuration int

	// TWEarly, TWLate bound the feasible arrival window. For the depot,
	// this is the working horizon within which every route must start and end.
	TWEarly, TWLate int

	// ReleaseTime is the earliest moment at which a route carrying this
	// client may leave the depot.
	ReleaseTime int
}
