package membership

import "github.com/JoshuaKento/lvlath-fuzzy/fzerr"

// Triangular is a membership shape that rises linearly from 0 at Left to 1
// at Center, then falls linearly back to 0 at Right.
type Triangular struct {
	left, center, right float64
}

// NewTriangular constructs a Triangular shape, validating left < center <
// right. Violations return fzerr.ErrInvalidShape.
func NewTriangular(left, center, right float64) (*Triangular, error) {
	if !(left < center && center < right) {
		return nil, fzerr.Wrap(fzerr.ErrInvalidShape, "NewTriangular",
			"require left < center < right, got (%v, %v, %v)", left, center, right)
	}
	return &Triangular{left: left, center: center, right: right}, nil
}

// Eval returns μ(x): 0 outside (left, right), 1 at center, linear ramps
// between. The apex comparison uses a small tolerance relative to the
// shape's scale.
func (t *Triangular) Eval(x float64) float64 {
	if x <= t.left || x >= t.right {
		return 0
	}
	if absf(x-t.center) < epsilon*(t.right-t.left) {
		return 1
	}
	if x < t.center {
		return slope(x, t.left, t.center, 1)
	}
	return slope(x, t.center, t.right, -1)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
