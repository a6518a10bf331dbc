// Package term wraps a named membership shape into an immutable Term,
// the unit Variable stores by registration key.
package term

import "github.com/JoshuaKento/lvlath-fuzzy/membership"

// Term pairs an advisory label with an owned membership Shape. The label
// is for diagnostics only: lookup always uses the key a Term is registered
// under in a Variable, which may diverge from Term.Label.
type Term struct {
	label string
	shape membership.Shape
}

// New constructs a Term. Construction cannot fail: shape is assumed
// already validated by its own constructor (e.g. membership.NewTriangular).
func New(label string, shape membership.Shape) *Term {
	return &Term{label: label, shape: shape}
}

// Label returns the term's advisory name.
func (t *Term) Label() string {
	return t.label
}

// Eval delegates to the underlying shape's membership function.
func (t *Term) Eval(x float64) float64 {
	return t.shape.Eval(x)
}
