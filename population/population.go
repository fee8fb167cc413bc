package population

import (
	"github.com/vrp-hgs/core/penalty"
	"github.com/vrp-hgs/core/problem"
	"github.com/vrp-hgs/core/rng"
	"github.com/vrp-hgs/core/solution"
)

// Population manages two cost-ordered sub-populations (feasible,
// infeasible), and is seeded at construction with MinPopSize random
// individuals, matching Population's constructor in
// _examples/original_source/hgs/src/Population.cpp.
type Population struct {
	data   *problem.Data
	ce     *penalty.CostEvaluator
	source rng.RNG
	params Params

	feasible, infeasible subPopulation

	best *solution.Individual
}

// New builds a Population and seeds it with params.MinPopSize random
// individuals.
func New(data *problem.Data, ce *penalty.CostEvaluator, source rng.RNG, params Params) *Population {
	p := &Population{data: data, ce: ce, source: source, params: params}

	for i := 0; i < params.MinPopSize; i++ {
		p.Add(solution.NewRandom(data, source))
	}

	return p
}

// Add inserts indiv into its feasible/infeasible sub-population, recomputes
// biased fitness, triggers survivor selection if the sub-population has
// grown past MinPopSize+GenerationSize, and updates the best-known feasible
// solution (spec.md §4.8).
func (p *Population) Add(indiv *solution.Individual) {
	sp := &p.infeasible
	if indiv.IsFeasible() {
		sp = &p.feasible
	}

	sp.add(indiv, p.ce)
	sp.updateBiasedFitness(p.params.NbElite, p.params.NbClose)

	if sp.size() > p.params.maxPopSize() {
		p.purge(sp)
	}

	if indiv.IsFeasible() && (p.best == nil || indiv.Cost(p.ce) < p.best.Cost(p.ce)) {
		p.best = indiv
	}
}

// purge first removes duplicates (closest-proximity distance 0) one at a
// time until MinPopSize is reached or none remain, then repeatedly
// recomputes biased fitness and removes the worst item until MinPopSize is
// reached (spec.md §4.8 step 4).
func (p *Population) purge(sp *subPopulation) {
	for sp.size() > p.params.MinPopSize {
		if !sp.removeDuplicate() {
			break
		}
	}

	for sp.size() > p.params.MinPopSize {
		sp.updateBiasedFitness(p.params.NbElite, p.params.NbClose)
		sp.removeWorstBiasedFitness()
	}
}

// Size returns the combined size of both sub-populations.
func (p *Population) Size() int { return p.feasible.size() + p.infeasible.size() }

// FeasibleSize returns the size of the feasible sub-population.
func (p *Population) FeasibleSize() int { return p.feasible.size() }

// InfeasibleSize returns the size of the infeasible sub-population.
func (p *Population) InfeasibleSize() int { return p.infeasible.size() }

// All returns every individual currently held, feasible sub-population
// first, each in ascending-cost order.
func (p *Population) All() []*solution.Individual {
	out := make([]*solution.Individual, 0, p.Size())
	for _, it := range p.feasible.items {
		out = append(out, it.indiv)
	}
	for _, it := range p.infeasible.items {
		out = append(out, it.indiv)
	}
	return out
}

// Best returns the best-known feasible individual, or ErrEmpty if none has
// been added yet.
func (p *Population) Best() (*solution.Individual, error) {
	if p.best == nil {
		return nil, ErrEmpty
	}
	return p.best, nil
}

// getBinaryTournament draws two uniform-random items from the union of both
// sub-populations and returns the one with lower (better) biased fitness.
func (p *Population) getBinaryTournament() *item {
	a := p.randomItem()
	b := p.randomItem()
	if a.fitness < b.fitness {
		return a
	}
	return b
}

func (p *Population) randomItem() *item {
	fSize := p.feasible.size()
	idx := p.source.Randint(fSize + p.infeasible.size())
	if idx < fSize {
		return p.feasible.items[idx]
	}
	return p.infeasible.items[idx-fSize]
}

// SelectParents performs two binary tournaments over the union of both
// sub-populations; if the two parents' broken-pairs distance falls outside
// [lbDiversity*nbClients, ubDiversity*nbClients], the second parent is
// redrawn up to 10 times to find a more diverse partner (spec.md §4.8).
func (p *Population) SelectParents() (*solution.Individual, *solution.Individual) {
	par1 := p.getBinaryTournament()
	par2 := p.getBinaryTournament()

	nbClients := float64(p.data.NumClients())
	lower := p.params.LBDiversity * nbClients
	upper := p.params.UBDiversity * nbClients

	diversity := float64(par1.indiv.BrokenPairsDistance(par2.indiv))
	for tries := 1; (diversity < lower || diversity > upper) && tries <= 10; tries++ {
		par2 = p.getBinaryTournament()
		diversity = float64(par1.indiv.BrokenPairsDistance(par2.indiv))
	}

	return par1.indiv, par2.indiv
}
