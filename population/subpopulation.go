package population

import (
	"sort"

	"github.com/vrp-hgs/core/penalty"
	"github.com/vrp-hgs/core/solution"
)

// proximityEntry pairs a peer item with its broken-pairs distance to the
// owning item, kept in ascending-distance order.
type proximityEntry struct {
	dist int
	peer *item
}

// item is a Population-owned wrapper around one Individual: its cached
// biased fitness and its ascending-distance proximity list to every other
// item currently in the same sub-population.
//
// Unlike the reference implementation's Individual::indivsByProximity (a
// friend-accessed member of Individual itself), the proximity list lives
// here, in population, since solution.Individual is a plain immutable value
// with no notion of its owning population (see DESIGN.md).
type item struct {
	indiv     *solution.Individual
	fitness   float64
	proximity []proximityEntry
}

// registerAgainst computes the broken-pairs distance between it and other,
// and inserts each into the other's proximity list in ascending order.
func (it *item) registerAgainst(other *item) {
	dist := it.indiv.BrokenPairsDistance(other.indiv)

	insertProximity(other, proximityEntry{dist: dist, peer: it})
	insertProximity(it, proximityEntry{dist: dist, peer: other})
}

func insertProximity(it *item, entry proximityEntry) {
	idx := sort.Search(len(it.proximity), func(i int) bool {
		return it.proximity[i].dist >= entry.dist
	})
	it.proximity = append(it.proximity, proximityEntry{})
	copy(it.proximity[idx+1:], it.proximity[idx:])
	it.proximity[idx] = entry
}

// removePeer scrubs other from it's own proximity list; used to maintain
// the invariant that a proximity list only ever references items still
// present in the sub-population.
func (it *item) removePeer(other *item) {
	for i, entry := range it.proximity {
		if entry.peer == other {
			it.proximity = append(it.proximity[:i], it.proximity[i+1:]...)
			return
		}
	}
}

// avgBrokenPairsDistanceClosest averages the nbClose smallest proximity
// distances (or fewer, if the sub-population doesn't yet hold that many
// peers) — spec.md §9 open question, resolved against
// SubPopulation::Item::avgDistanceClosest in
// _examples/original_source/pyvrp/cpp/SubPopulation.cpp, which normalizes
// by the actual count considered, not always nbClose.
func (it *item) avgBrokenPairsDistanceClosest(nbClose int) float64 {
	n := len(it.proximity)
	if n == 0 {
		return 0
	}
	if n > nbClose {
		n = nbClose
	}

	sum := 0
	for _, entry := range it.proximity[:n] {
		sum += entry.dist
	}
	return float64(sum) / float64(n)
}

// isDuplicate reports whether it's closest proximity peer is at distance 0
// (original Individual::hasClone).
func (it *item) isDuplicate() bool {
	return len(it.proximity) > 0 && it.proximity[0].dist == 0
}

// subPopulation is one of the two (feasible/infeasible) cost-ordered item
// lists a Population maintains.
//
// Grounded on SubPopulation in
// _examples/original_source/pyvrp/cpp/SubPopulation.{h,cpp}.
type subPopulation struct {
	items []*item
}

func (sp *subPopulation) size() int { return len(sp.items) }

// add inserts indiv, registers its proximity against every existing item,
// and re-sorts by ascending cost.
func (sp *subPopulation) add(indiv *solution.Individual, ce *penalty.CostEvaluator) {
	it := &item{indiv: indiv}
	for _, other := range sp.items {
		it.registerAgainst(other)
	}
	sp.items = append(sp.items, it)
	sp.sortByCost(ce)
}

func (sp *subPopulation) sortByCost(ce *penalty.CostEvaluator) {
	sort.SliceStable(sp.items, func(i, j int) bool {
		return sp.items[i].indiv.Cost(ce) < sp.items[j].indiv.Cost(ce)
	})
}

// remove deletes the item at index idx, scrubbing it from every peer's
// proximity list.
func (sp *subPopulation) remove(idx int) {
	victim := sp.items[idx]
	for _, other := range sp.items {
		if other != victim {
			other.removePeer(victim)
		}
	}
	sp.items = append(sp.items[:idx], sp.items[idx+1:]...)
}

// removeDuplicate removes the first item whose closest proximity distance
// is 0, reporting whether one was found.
func (sp *subPopulation) removeDuplicate() bool {
	for idx, it := range sp.items {
		if it.isDuplicate() {
			sp.remove(idx)
			return true
		}
	}
	return false
}

// removeWorstBiasedFitness removes the item with the largest (worst)
// biased fitness. Callers must call updateBiasedFitness first.
func (sp *subPopulation) removeWorstBiasedFitness() {
	worst := 0
	for i, it := range sp.items {
		if it.fitness > sp.items[worst].fitness {
			worst = i
		}
	}
	sp.remove(worst)
}

// updateBiasedFitness recomputes every item's fitness from its cost rank
// (the current, already cost-ascending, item order) and its diversity rank
// (descending avgBrokenPairsDistanceClosest) — spec.md §4.8.
func (sp *subPopulation) updateBiasedFitness(nbElite, nbClose int) {
	n := len(sp.items)
	if n == 0 {
		return
	}

	type diversityEntry struct {
		dist     float64
		costRank int
	}
	diversity := make([]diversityEntry, n)
	for costRank, it := range sp.items {
		diversity[costRank] = diversityEntry{dist: it.avgBrokenPairsDistanceClosest(nbClose), costRank: costRank}
	}
	sort.SliceStable(diversity, func(i, j int) bool { return diversity[i].dist > diversity[j].dist })

	popSize := float64(n)
	elite := nbElite
	if elite > n {
		elite = n
	}
	divWeight := 1 - float64(elite)/popSize

	for divRank, d := range diversity {
		costRank := d.costRank
		sp.items[costRank].fitness = (float64(costRank) + divWeight*float64(divRank)) / popSize
	}
}
