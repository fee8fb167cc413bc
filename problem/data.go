package problem

// Data is the immutable, shared-by-reference description of a routing
// instance: the depot plus every client, the fleet's capacity and size, and
// the distance/duration matrices between every pair of clients (index 0 is
// the depot). Once constructed, a Data value is never mutated; every other
// component in this module holds it by reference for the lifetime of a search.
type Data struct {
	clients  []Client
	capacity int
	vehicles int
	dist     Matrix
	dur      Matrix
}

// New validates and constructs a Data instance.
//
// clients[0] must be the depot: it must have zero demand and zero service
// duration, and its time window bounds the working horizon. dist and dur
// must each be square with size len(clients).
func New(clients []Client, capacity, numVehicles int, dist, dur Matrix) (*Data, error) {
	if len(clients) == 0 {
		return nil, ErrNoClients
	}

	depot := clients[0]
	if depot.Demand != 0 || depot.ServiceDuration != 0 {
		return nil, ErrInvalidDepot
	}

	for i, c := range clients {
		if c.Demand < 0 {
			return nil, ErrNegativeDemand
		}
		if c.ServiceDuration < 0 {
			return nil, ErrNegativeServiceDuration
		}
		if c.ReleaseTime < 0 {
			return nil, ErrNegativeReleaseTime
		}
		if c.TWEarly > c.TWLate {
			return nil, ErrInvalidTimeWindow
		}
		_ = i
	}

	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if numVehicles <= 0 {
		return nil, ErrInvalidVehicleCount
	}

	n := len(clients)
	if dist.Size() != n || dur.Size() != n {
		return nil, ErrDimensionMismatch
	}

	clientsCopy := make([]Client, n)
	copy(clientsCopy, clients)

	return &Data{
		clients:  clientsCopy,
		capacity: capacity,
		vehicles: numVehicles,
		dist:     dist,
		dur:      dur,
	}, nil
}

// NumClients returns the number of non-depot clients.
func (d *Data) NumClients() int { return len(d.clients) - 1 }

// NumVehicles returns the fleet size.
func (d *Data) NumVehicles() int { return d.vehicles }

// VehicleCapacity returns the (shared) vehicle capacity.
func (d *Data) VehicleCapacity() int { return d.capacity }

// Client returns the client (or depot, for index 0) at the given index.
func (d *Data) Client(idx int) Client { return d.clients[idx] }

// Depot returns client 0.
func (d *Data) Depot() Client { return d.clients[0] }

// Dist returns the travel distance from client i to client j.
func (d *Data) Dist(i, j int) int { return d.dist.At(i, j) }

// Dur returns the travel duration from client i to client j.
func (d *Data) Dur(i, j int) int { return d.dur.At(i, j) }

// DurationMatrix returns the full duration matrix, for components (such as
// segment.TimeWindowSegment) that must carry it by value to merge segments
// without retraversing the route.
func (d *Data) DurationMatrix() Matrix { return d.dur }
