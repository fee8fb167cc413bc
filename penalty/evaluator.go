package penalty

// CostEvaluator maps excess vehicle load and accumulated time warp to
// additive cost penalties. Total cost of a route is its distance plus
// LoadPenalty(load, capacity) plus TimeWarpPenalty(timeWarp), summed over
// routes (spec.md §4.3).
type CostEvaluator struct {
	capacityPenalty int
	timeWarpPenalty int
}

// New builds a CostEvaluator with the given per-unit penalty coefficients.
func New(capacityPenalty, timeWarpPenalty int) *CostEvaluator {
	return &CostEvaluator{capacityPenalty: capacityPenalty, timeWarpPenalty: timeWarpPenalty}
}

// CapacityPenalty returns the current per-unit excess-load penalty.
func (c *CostEvaluator) CapacityPenalty() int { return c.capacityPenalty }

// TimeWarpPenaltyCoefficient returns the current per-unit time-warp penalty.
func (c *CostEvaluator) TimeWarpPenaltyCoefficient() int { return c.timeWarpPenalty }

// SetCapacityPenalty updates the per-unit excess-load penalty. The update
// schedule (when/how to call this) is an external, adaptive concern; this
// core only consumes the resulting coefficient.
func (c *CostEvaluator) SetCapacityPenalty(v int) { c.capacityPenalty = v }

// SetTimeWarpPenalty updates the per-unit time-warp penalty.
func (c *CostEvaluator) SetTimeWarpPenalty(v int) { c.timeWarpPenalty = v }

// LoadPenalty computes the additive cost of carrying load over capacity.
func (c *CostEvaluator) LoadPenalty(load, capacity int) int {
	excess := load - capacity
	if excess < 0 {
		excess = 0
	}
	return excess * c.capacityPenalty
}

// TimeWarpPenalty computes the additive cost of accumulated time warp.
func (c *CostEvaluator) TimeWarpPenalty(timeWarp int) int {
	return timeWarp * c.timeWarpPenalty
}

// Boost temporarily scales both penalty coefficients by factor (repairing
// otherwise-infeasible solutions is easier when infeasibility is made more
// expensive). It returns a restore function that resets the coefficients to
// their pre-boost values; callers must invoke it exactly once, typically via
// defer, mirroring the RAII PenaltyBooster in
// _examples/original_source/hgs/include/PenaltyManager.h.
func (c *CostEvaluator) Boost(factor int) (restore func()) {
	oldCapacity, oldTimeWarp := c.capacityPenalty, c.timeWarpPenalty
	c.capacityPenalty *= factor
	c.timeWarpPenalty *= factor
	return func() {
		c.capacityPenalty = oldCapacity
		c.timeWarpPenalty = oldTimeWarp
	}
}
