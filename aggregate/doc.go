// Package aggregate combines multiple rules' implicated output samples
// into one sample vector per output variable via pointwise max.
//
// Aggregation is a commutative fold: pointwise max is commutative and
// associative, so the result is independent of rule ordering. Callers may
// therefore evaluate rules in any order, or in parallel, and merge the
// results with pointwise max — the result is bit-identical up to floating-point
// associativity (exact under MinMax/Clip).
package aggregate
