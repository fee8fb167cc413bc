package population

// Params bundles the Population manager's tunable knobs (spec.md §6).
type Params struct {
	// MinPopSize is the lower bound on sub-population size after purge.
	MinPopSize int
	// GenerationSize is the overflow allowance before purge triggers.
	GenerationSize int
	// NbElite is the elitism count used in the biased-fitness weight.
	NbElite int
	// NbClose is the number of closest neighbours averaged for diversity.
	NbClose int
	// LBDiversity and UBDiversity bound (as a fraction of nbClients) the
	// broken-pairs distance accepted between selected parents.
	LBDiversity, UBDiversity float64
}

// Default population parameters, matching
// _examples/original_source/hgs/include/params/PopulationParams.h.
const (
	DefaultMinPopSize     = 25
	DefaultGenerationSize = 40
	DefaultNbElite        = 4
	DefaultNbClose        = 5
	DefaultLBDiversity    = 0.1
	DefaultUBDiversity    = 0.5
)

// DefaultParams returns the reference implementation's default Population
// parameters.
func DefaultParams() Params {
	return Params{
		MinPopSize:     DefaultMinPopSize,
		GenerationSize: DefaultGenerationSize,
		NbElite:        DefaultNbElite,
		NbClose:        DefaultNbClose,
		LBDiversity:    DefaultLBDiversity,
		UBDiversity:    DefaultUBDiversity,
	}
}

func (p Params) maxPopSize() int { return p.MinPopSize + p.GenerationSize }
