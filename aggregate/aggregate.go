package aggregate

import (
	"fmt"

	"github.com/JoshuaKento/lvlath-fuzzy/ops"
	"github.com/JoshuaKento/lvlath-fuzzy/rule"
	"github.com/JoshuaKento/lvlath-fuzzy/sampler"
	"github.com/JoshuaKento/lvlath-fuzzy/variable"
)

// Aggregate computes each rule's activation and implication against
// inputs, then folds all implicated vectors per output variable with
// pointwise max. Evaluation stops at the first error: aggregation that
// encounters an error on rule k does not commit the partial results of
// rules < k.
//
// Complexity: O(rules * consequents-per-rule * sampler.N()).
func Aggregate(
	rules []*rule.Rule,
	inputs map[string]float64,
	vars map[string]*variable.Variable,
	fam ops.Family,
	mode rule.ImplicationMode,
	smp *sampler.UniformSampler,
) (map[string][]float64, error) {
	acc := make(map[string][]float64)

	for _, r := range rules {
		alpha, err := r.Activation(inputs, vars, fam)
		if err != nil {
			return nil, err
		}

		implicated, err := r.Implicate(alpha, vars, smp, mode)
		if err != nil {
			return nil, err
		}

		for outVar, vec := range implicated {
			cur, exists := acc[outVar]
			if !exists {
				acc[outVar] = vec
				continue
			}
			if len(cur) != len(vec) {
				// Two rules disagree on the sample-grid length for the same
				// output variable. Both derive their grid length solely from
				// the shared sampler, so this is a programmer error, not a
				// user-triggerable one.
				panic(fmt.Sprintf("aggregate: Aggregate: mismatched sample length for %q: %d vs %d", outVar, len(cur), len(vec)))
			}
			elementsMax(cur, vec)
		}
	}

	return acc, nil
}

// elementsMax mutates dst in place: dst[i] = max(dst[i], src[i]).
func elementsMax(dst, src []float64) {
	for i := range dst {
		if src[i] > dst[i] {
			dst[i] = src[i]
		}
	}
}
