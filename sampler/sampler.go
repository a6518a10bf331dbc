package sampler

import "github.com/JoshuaKento/lvlath-fuzzy/fzerr"

// UniformSampler discretizes [min, max] into N inclusive, evenly spaced
// points. It is immutable after construction and safe to share read-only
// across goroutines.
type UniformSampler struct {
	n int
}

// NewUniformSampler constructs a sampler with n points. n must be at least
// 2 (one point at each endpoint); otherwise fzerr.ErrOutOfBounds is
// returned.
func NewUniformSampler(n int) (*UniformSampler, error) {
	if n < 2 {
		return nil, fzerr.Wrap(fzerr.ErrOutOfBounds, "NewUniformSampler", "require n >= 2, got %d", n)
	}
	return &UniformSampler{n: n}, nil
}

// N returns the configured sample count.
func (s *UniformSampler) N() int {
	return s.n
}

// Sample generates the grid point_i = min + i*(max-min)/(n-1) for
// i in [0, n), forcing the final point to be exactly max so that
// floating-point accumulation never leaves the domain.
//
// Complexity: O(n) time, O(n) space.
func (s *UniformSampler) Sample(min, max float64) []float64 {
	points := make([]float64, s.n)
	step := (max - min) / float64(s.n-1)
	for i := 0; i < s.n; i++ {
		points[i] = min + float64(i)*step
	}
	points[s.n-1] = max
	return points
}
