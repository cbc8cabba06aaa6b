// Package constraints decides whether a partition is a valid plan.
//
// A Validator ANDs an ordered list of Constraint values and stops at the first
// failure, reporting its name. Built-ins cover the usual redistricting rules:
//
//	WithinPercentOfIdealPopulation  every district within ±ε of total/k
//	WithinPercentOfPopulation       every district within ±ε of a fixed target
//	UpperBound / LowerBound         a scalar metric against a bound
//	CompactnessBound                cut-edge count ≤ multiplier × initial count
//	Contiguous                      every district induces a connected subgraph
//
// Constraints are pure functions of the partition; they read only cached
// updater values and the frozen graph, so a Validator may be shared by
// concurrent chains.
package constraints
