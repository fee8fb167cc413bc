package problem

import "errors"

// Sentinel errors returned by Data construction. Wrap with fmt.Errorf and
// "%w" at call boundaries when more context is useful; callers should match
// with errors.Is.
var (
	// ErrNoClients is returned when fewer than one client (the depot) is given.
	ErrNoClients = errors.New("problem: instance must contain at least the depot")

	// ErrInvalidDepot is returned when client 0 has nonzero demand or service
	// duration, per spec: "Client 0 is the depot: demand and service duration
	// must be zero".
	ErrInvalidDepot = errors.New("problem: depot must have zero demand and zero service duration")

	// ErrNegativeDemand is returned for a client with demand < 0.
	ErrNegativeDemand = errors.New("problem: client demand must be non-negative")

	// ErrNegativeServiceDuration is returned for a client with service duration < 0.
	ErrNegativeServiceDuration = errors.New("problem: client service duration must be non-negative")

	// ErrNegativeReleaseTime is returned for a client with release time < 0.
	ErrNegativeReleaseTime = errors.New("problem: client release time must be non-negative")

	// ErrInvalidTimeWindow is returned when twEarly > twLate for some client.
	ErrInvalidTimeWindow = errors.New("problem: client time window must satisfy twEarly <= twLate")

	// ErrInvalidCapacity is returned when vehicle capacity is not positive.
	ErrInvalidCapacity = errors.New("problem: vehicle capacity must be positive")

	// ErrInvalidVehicleCount is returned when the number of vehicles is not positive.
	ErrInvalidVehicleCount = errors.New("problem: number of vehicles must be positive")

	// ErrDimensionMismatch is returned when the distance or duration matrix
	// is not square with size equal to the number of clients (including depot).
	ErrDimensionMismatch = errors.New("problem: distance/duration matrix dimension mismatch")
)
