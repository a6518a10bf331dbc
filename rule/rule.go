package rule

import (
	"github.com/JoshuaKento/lvlath-fuzzy/antecedent"
	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/ops"
	"github.com/JoshuaKento/lvlath-fuzzy/sampler"
	"github.com/JoshuaKento/lvlath-fuzzy/variable"
)

// Activation evaluates the rule's antecedent against the given crisp
// inputs under the selected operator family, yielding alpha in [0, 1].
func (r *Rule) Activation(inputs map[string]float64, vars map[string]*variable.Variable, fam ops.Family) (float64, error) {
	return antecedent.Eval(r.Antecedent, inputs, vars, fam)
}

// Implicate reduces each consequent term's membership by alpha, sampled
// over its output variable's domain. mode selects Clip (min(alpha, mu)) or
// ProductImplication (alpha*mu). The returned map has one entry per
// consequent's output variable, each a vector of length sampler.N().
//
// Complexity: O(len(Consequent) * sampler.N()).
func (r *Rule) Implicate(alpha float64, vars map[string]*variable.Variable, smp *sampler.UniformSampler, mode ImplicationMode) (map[string][]float64, error) {
	result := make(map[string][]float64, len(r.Consequent))

	for _, c := range r.Consequent {
		v, ok := vars[c.Var]
		if !ok {
			return nil, fzerr.Wrap(fzerr.ErrUnknownVariable, "Rule.Implicate", "output variable %q not registered", c.Var)
		}
		domMin, domMax := v.Domain()
		points := smp.Sample(domMin, domMax)

		samples := make([]float64, len(points))
		for i, x := range points {
			mu, err := v.Eval(c.Term, x)
			if err != nil {
				return nil, err
			}
			samples[i] = implicate(alpha, mu, mode)
		}
		result[c.Var] = samples
	}

	return result, nil
}

// implicate applies the selected implication operator to a single sample.
func implicate(alpha, mu float64, mode ImplicationMode) float64 {
	if mode == ProductImplication {
		return alpha * mu
	}
	if alpha < mu {
		return alpha
	}
	return mu
}
