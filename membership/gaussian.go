package membership

import (
	"math"

	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
)

// Gaussian is a membership shape defined on all reals, strictly positive,
// peaking at 1 when x == mean.
type Gaussian struct {
	mean  float64
	sd    float64
	denom float64 // precomputed -2*sd^2, avoids recomputation per Eval call
}

// NewGaussian constructs a Gaussian shape, validating sd > 0. Violations
// return fzerr.ErrInvalidShape.
func NewGaussian(mean, sd float64) (*Gaussian, error) {
	if sd <= 0 {
		return nil, fzerr.Wrap(fzerr.ErrInvalidShape, "NewGaussian", "require sd > 0, got %v", sd)
	}
	return &Gaussian{mean: mean, sd: sd, denom: -2 * sd * sd}, nil
}

// Eval returns μ(x) = exp(-(x-mean)^2 / (2*sd^2)), already within [0, 1]
// by construction.
func (g *Gaussian) Eval(x float64) float64 {
	d := x - g.mean
	return math.Exp((d * d) / g.denom)
}
