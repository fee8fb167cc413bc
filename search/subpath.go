package search

import "github.com/vrp-hgs/core/segment"

// enumerateSubpaths tries the permutations of every node segment of length
// k in route u, where k = min(PostProcessPathLength, u.size()); k <= 1 is a
// no-op. Only the first improving permutation per window is applied, so the
// applied order is not necessarily the best permutation of that window.
//
// Grounded on LocalSearch::enumerateSubpaths in
// _examples/original_source/hgs/src/LocalSearch.cpp.
func (ls *LocalSearch) enumerateSubpaths(u *route) {
	k := ls.params.PostProcessPathLength
	if u.size() < k {
		k = u.size()
	}
	if k <= 1 {
		return
	}

	path := make([]int, k)
	for start := 1; start+k <= u.size()+1; start++ {
		prev := ls.p(u.at(start))
		next := u.at(start + k)

		for i := range path {
			path[i] = start + i
		}

		currCost := ls.evaluateSubpath(path, u, prev, next)

		for nextPermutation(path) {
			cost := ls.evaluateSubpath(path, u, prev, next)
			if cost < currCost {
				cursor := prev
				for _, pos := range path {
					node := u.at(pos)
					ls.insertAfter(node, cursor)
					cursor = node
				}
				ls.update(u, u)
				break
			}
		}
	}
}

// evaluateSubpath computes the distance plus time-warp penalty of
// traversing before -> nodes at the given positions (taken from their
// pre-permutation positions in u) -> after.
func (ls *LocalSearch) evaluateSubpath(positions []int, u *route, before, after nodeRef) int {
	totalDist := 0
	tws := ls.arena[before].twBefore
	from := ls.clientOf(before)

	for _, pos := range positions {
		to := u.at(pos)
		toClient := ls.clientOf(to)

		totalDist += ls.data.Dist(from, toClient)
		tws = segment.Merge(tws, ls.arena[to].tw)
		from = toClient
	}

	totalDist += ls.data.Dist(from, ls.clientOf(after))
	tws = segment.Merge(tws, ls.arena[after].twAfter)

	return totalDist + ls.ce.TimeWarpPenalty(tws.TotalTimeWarp())
}

// nextPermutation advances positions to its next lexicographic permutation
// in place, reporting whether one existed (the classic std::next_permutation
// algorithm, since the slice starts sorted ascending by construction).
func nextPermutation(positions []int) bool {
	n := len(positions)
	if n < 2 {
		return false
	}

	i := n - 2
	for i >= 0 && positions[i] >= positions[i+1] {
		i--
	}
	if i < 0 {
		reverseInts(positions, 0, n-1)
		return false
	}

	j := n - 1
	for positions[j] <= positions[i] {
		j--
	}
	positions[i], positions[j] = positions[j], positions[i]
	reverseInts(positions, i+1, n-1)
	return true
}

func reverseInts(a []int, i, j int) {
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}
