// Package defuzz computes the centroid of area over an aggregated sample
// vector, collapsing a fuzzy output variable's membership curve into a
// single crisp number.
//
// 🚀 What is centroid defuzzification?
//
//	Given samples mu_0..mu_{n-1} taken at x_0..x_{n-1} on a uniform grid,
//	the centroid is Σ(x_i*mu_i) / Σ(mu_i) — the "center of mass" of the
//	aggregated membership curve. This is the standard centroid
//	approximation under a uniform grid using left-aligned sample weighting,
//	equivalent up to an O(step) constant to trapezoidal integration (both
//	weights cancel in the ratio).
//
// If no rule activated against a variable, the denominator is zero and
// Defuzzify reports math.NaN() for that variable rather than failing: a
// rule set simply not firing for one output is not an error.
package defuzz
