package defuzz

import (
	"math"

	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/variable"
)

// Defuzzify reduces each output variable's aggregated sample vector to a
// crisp value via centroid of area.
//
// For each (outVar, samples) pair:
//  1. outVar must be registered in vars, else fzerr.ErrUnknownVariable.
//  2. step = (max-min) / (len(samples)-1), the same grid the sampler and
//     rule implication used to produce samples.
//  3. num = Σ x_i*mu_i, den = Σ mu_i, with x_i = min + i*step.
//  4. If den == 0 (no rule activated against outVar), the result is
//     math.NaN() — this is a defined outcome, not an error.
//  5. Otherwise the result is num/den.
//
// Complexity: O(Σ len(samples)).
func Defuzzify(agg map[string][]float64, vars map[string]*variable.Variable) (map[string]float64, error) {
	result := make(map[string]float64, len(agg))

	for outVar, samples := range agg {
		v, ok := vars[outVar]
		if !ok {
			return nil, fzerr.Wrap(fzerr.ErrUnknownVariable, "defuzz.Defuzzify", "output variable %q not registered", outVar)
		}

		varMin, varMax := v.Domain()
		n := len(samples)
		step := (varMax - varMin) / float64(n-1)

		var numerator, denominator float64
		for i, mu := range samples {
			x := varMin + float64(i)*step
			numerator += x * mu
			denominator += mu
		}

		if denominator == 0 {
			result[outVar] = math.NaN()
			continue
		}
		result[outVar] = numerator / denominator
	}

	return result, nil
}
