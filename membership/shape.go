package membership

// Shape evaluates a membership degree μ(x) ∈ [0, 1] for a crisp value x.
//
// The built-in shapes (Triangular, Trapezoidal, Gaussian) cover the closed
// set this package validates at construction time, but Shape is exposed so
// a host may plug in a custom membership function for a Term: any type with
// a total, panic-free Eval method satisfies the contract Term relies on.
type Shape interface {
	// Eval returns the membership degree for x. It must be total (defined
	// for every real x) and must never panic.
	Eval(x float64) float64
}

// epsilon is the relative tolerance used for the Triangular apex
// comparison, scaled by the shape's width. Trapezoidal plateau bounds are
// compared exactly.
const epsilon = 1e-9

// clamp01 forces v into [0, 1], guarding against floating point drift at
// the edges of a shape's support.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// slope computes the unified ramp formula shared by Triangular and
// Trapezoidal: delta=+1 for an up-ramp from a to b, delta=-1 for a
// down-ramp from a to b.
func slope(x, a, b, delta float64) float64 {
	return clamp01(delta*(x-a)/(b-a) + (1-delta)/2)
}
