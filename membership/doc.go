// Package membership provides the closed set of membership-function shapes
// used to build fuzzy Terms: Triangular, Trapezoidal, and Gaussian.
//
// 🚀 What is a membership function?
//
//	A membership function μ maps a crisp value x to a degree of truth in
//	[0, 1]. This package supplies three shapes wide enough to model most
//	linguistic terms ("cold", "warm", "hot"):
//	  • Triangular  — rises then falls linearly, zero outside its legs.
//	  • Trapezoidal — like Triangular but with a flat plateau at 1.
//	  • Gaussian    — a bell curve, strictly positive everywhere.
//
// Every shape's constructor validates its own invariants and returns
// fzerr.ErrInvalidShape on violation; eval itself never fails and is
// always clamped to [0, 1].
package membership
