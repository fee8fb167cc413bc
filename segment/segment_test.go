package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/segment"
)

// durMatrix builds a duration matrix for n+1 clients (0 = depot) where
// dur[i][j] = |i-j| * 10, a simple asymmetric-free but non-trivial metric.
func durMatrix(t *testing.T, n int) problem.Matrix {
	rows := make([][]int, n+1)
	for i := range rows {
		rows[i] = make([]int, n+1)
		for j := range rows[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			rows[i][j] = d * 10
		}
	}
	m, err := problem.NewMatrix(rows)
	require.NoError(t, err)
	return m
}

func TestMerge_Associative(t *testing.T) {
	dur := durMatrix(t, 5)

	seg := func(client int) segment.TimeWindowSegment {
		return segment.NewTimeWindowSegment(dur, client, 5, 0, 1000, 0)
	}

	a, b, c := seg(1), seg(2), seg(3)

	left := segment.Merge(segment.Merge(a, b), c)
	right := segment.Merge(a, segment.Merge(b, c))

	require.Equal(t, left.Duration(), right.Duration())
	require.Equal(t, left.SegmentTimeWarp(), right.SegmentTimeWarp())
	require.Equal(t, left.TWEarly(), right.TWEarly())
	require.Equal(t, left.TWLate(), right.TWLate())
	require.Equal(t, left.ReleaseTime(), right.ReleaseTime())
}

func TestMerge_TimeWarpAccumulates(t *testing.T) {
	// S3: depot tw [0,100]; A tw [0,10] dist 5 from depot; B tw [50,60], dist
	// from A = 100. Route [A,B] must report timeWarp = (5+100) - 60 = 45.
	rows := [][]int{
		{0, 5, 105},
		{5, 0, 100},
		{105, 100, 0},
	}
	dur, err := problem.NewMatrix(rows)
	require.NoError(t, err)

	depot := segment.NewTimeWindowSegment(dur, 0, 0, 0, 100, 0)
	a := segment.NewTimeWindowSegment(dur, 1, 0, 0, 10, 0)
	b := segment.NewTimeWindowSegment(dur, 2, 0, 50, 60, 0)

	route := segment.Merge(depot, a, b)
	require.Equal(t, 45, route.SegmentTimeWarp())
}

func TestMerge_NoWarpWhenOnTime(t *testing.T) {
	dur := durMatrix(t, 2)
	a := segment.NewTimeWindowSegment(dur, 1, 5, 0, 1000, 0)
	b := segment.NewTimeWindowSegment(dur, 2, 5, 0, 1000, 0)

	merged := segment.Merge(a, b)
	require.Equal(t, 0, merged.SegmentTimeWarp())
	require.Equal(t, 0, merged.TotalTimeWarp())
}

func TestMerge_ReleaseTimePropagates(t *testing.T) {
	dur := durMatrix(t, 2)
	a := segment.NewTimeWindowSegment(dur, 1, 5, 0, 1000, 20)
	b := segment.NewTimeWindowSegment(dur, 2, 5, 0, 1000, 5)

	merged := segment.Merge(a, b)
	require.Equal(t, 20, merged.ReleaseTime())
}

func TestMergeLoad(t *testing.T) {
	a := segment.NewLoadSegment(3)
	b := segment.NewLoadSegment(4)
	c := segment.NewLoadSegment(5)

	require.Equal(t, 7, segment.MergeLoad(a, b).Load())
	require.Equal(t, 12, segment.MergeLoad(a, b, c).Load())
	require.Equal(t, segment.MergeLoad(segment.MergeLoad(a, b), c).Load(),
		segment.MergeLoad(a, segment.MergeLoad(b, c)).Load())
}

func TestMergeDistance(t *testing.T) {
	rows := [][]int{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	dist, err := problem.NewMatrix(rows)
	require.NoError(t, err)

	a := segment.NewDistanceSegment(dist, 0)
	b := segment.NewDistanceSegment(dist, 1)
	c := segment.NewDistanceSegment(dist, 2)

	ab := segment.MergeDistance(a, b)
	require.Equal(t, 1, ab.Distance())

	abc := segment.MergeDistance(ab, c)
	require.Equal(t, 2, abc.Distance())

	direct := segment.MergeDistance(a, b, c)
	require.Equal(t, abc.Distance(), direct.Distance())
}
