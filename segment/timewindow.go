package segment

import "github.com/vrp-hgs/core/problem"

// TimeWindowSegment summarizes a contiguous traversal over clients
// [firstClient..lastClient]: accumulated duration (travel + service +
// waiting), accumulated time warp, and the effective time window and
// release time of the segment as a whole.
//
// Grounded on TimeWindowSegment in
// _examples/original_source/hgs/include/TimeWindowSegment.h and
// _examples/original_source/hgs/src/TimeWindowSegment.cpp.
type TimeWindowSegment struct {
	dur                     problem.Matrix
	firstClient, lastClient int
	duration                int
	timeWarp                int
	twEarly                 int
	twLate                  int
	release                 int
}

// NewTimeWindowSegment builds the one-client segment for client, using dur
// as the duration matrix consulted by Merge.
func NewTimeWindowSegment(dur problem.Matrix, client, serviceDuration, twEarly, twLate, releaseTime int) TimeWindowSegment {
	return TimeWindowSegment{
		dur:         dur,
		firstClient: client,
		lastClient:  client,
		duration:    serviceDuration,
		twEarly:     twEarly,
		twLate:      twLate,
		release:     releaseTime,
	}
}

// FirstClient returns the client at the start of the segment.
func (t TimeWindowSegment) FirstClient() int { return t.firstClient }

// LastClient returns the client at the end of the segment.
func (t TimeWindowSegment) LastClient() int { return t.lastClient }

// Duration returns the total duration (travel + waiting + service) within
// the segment, assuming the earliest feasible departure.
func (t TimeWindowSegment) Duration() int { return t.duration }

// TWEarly returns the segment's effective earliest-visit moment for its
// first client.
func (t TimeWindowSegment) TWEarly() int { return t.twEarly }

// TWLate returns the segment's effective latest-visit moment for its last
// client.
func (t TimeWindowSegment) TWLate() int { return t.twLate }

// ReleaseTime returns the segment's effective release time.
func (t TimeWindowSegment) ReleaseTime() int { return t.release }

// SegmentTimeWarp returns the time warp accumulated along the segment,
// assuming we can depart in time (ignoring release time).
func (t TimeWindowSegment) SegmentTimeWarp() int { return t.timeWarp }

// TotalTimeWarp returns the segment time warp plus any extra time warp
// caused by too late a release time.
func (t TimeWindowSegment) TotalTimeWarp() int {
	warp := t.release - t.twLate
	if warp < 0 {
		warp = 0
	}
	return t.timeWarp + warp
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func mergeTwo(a, b TimeWindowSegment) TimeWindowSegment {
	distance := a.dur.At(a.lastClient, b.firstClient)
	delta := a.duration - a.timeWarp + distance
	deltaWait := maxInt(b.twEarly-delta-a.twLate, 0)
	deltaWarp := maxInt(a.twEarly+delta-b.twLate, 0)

	return TimeWindowSegment{
		dur:         a.dur,
		firstClient: a.firstClient,
		lastClient:  b.lastClient,
		duration:    a.duration + b.duration + distance + deltaWait,
		timeWarp:    a.timeWarp + b.timeWarp + deltaWarp,
		twEarly:     maxInt(b.twEarly-delta, a.twEarly) - deltaWait,
		twLate:      minInt(b.twLate-delta, a.twLate) + deltaWarp,
		release:     maxInt(a.release, b.release),
	}
}

// Merge combines two or more segments in order, respecting travel from the
// last client of each operand to the first client of the next. Merge is
// associative but not commutative: callers choose the fold order.
func Merge(first, second TimeWindowSegment, rest ...TimeWindowSegment) TimeWindowSegment {
	res := mergeTwo(first, second)
	for _, seg := range rest {
		res = mergeTwo(res, seg)
	}
	return res
}
