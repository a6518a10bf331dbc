// Package sampler discretizes a real interval into a uniform grid of n
// inclusive points. Rule implication samples its output domains with it;
// defuzzification recomputes the same (max-min)/(n-1) step from the
// sample count, so both agree on the x-coordinate of every sample index.
package sampler
