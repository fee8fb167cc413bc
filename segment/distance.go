package segment

import "github.com/vrp-hgs/core/problem"

// DistanceSegment summarizes the cumulative travel distance over a
// contiguous traversal of clients [firstClient..lastClient]. It exists
// alongside TimeWindowSegment so that distance (which uses the dist matrix)
// and time accounting (which uses the dur matrix) can be merged
// independently when evaluating a move.
type DistanceSegment struct {
	dist                    problem.Matrix
	firstClient, lastClient int
	distance                int
}

// NewDistanceSegment builds the one-client (zero-length) segment for client.
func NewDistanceSegment(dist problem.Matrix, client int) DistanceSegment {
	return DistanceSegment{dist: dist, firstClient: client, lastClient: client}
}

// FirstClient returns the client at the start of the segment.
func (d DistanceSegment) FirstClient() int { return d.firstClient }

// LastClient returns the client at the end of the segment.
func (d DistanceSegment) LastClient() int { return d.lastClient }

// Distance returns the total travel distance within the segment.
func (d DistanceSegment) Distance() int { return d.distance }

func mergeTwoDistance(a, b DistanceSegment) DistanceSegment {
	return DistanceSegment{
		dist:        a.dist,
		firstClient: a.firstClient,
		lastClient:  b.lastClient,
		distance:    a.distance + a.dist.At(a.lastClient, b.firstClient) + b.distance,
	}
}

// MergeDistance combines two or more distance segments in order, respecting
// travel from the last client of each operand to the first client of the next.
func MergeDistance(first, second DistanceSegment, rest ...DistanceSegment) DistanceSegment {
	res := mergeTwoDistance(first, second)
	for _, seg := range rest {
		res = mergeTwoDistance(res, seg)
	}
	return res
}
