// Package population implements the Population manager: two cost-sorted
// sub-populations (feasible, infeasible), each Individual paired with a
// proximity list of broken-pairs distances to its sub-population peers,
// biased-fitness ranking over cost and diversity, and diversity-filtered
// binary-tournament parent selection.
//
// Grounded on Population/SubPopulation in
// _examples/original_source/hgs/{include,src}/Population.{h,cpp} and
// _examples/original_source/pyvrp/cpp/{Population,SubPopulation}.{h,cpp}.
package population
