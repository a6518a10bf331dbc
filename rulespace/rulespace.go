package rulespace

import (
	"github.com/JoshuaKento/lvlath-fuzzy/aggregate"
	"github.com/JoshuaKento/lvlath-fuzzy/defuzz"
	"github.com/JoshuaKento/lvlath-fuzzy/sampler"
)

// Aggregate runs the aggregation step (rule activation, implication, and
// pointwise-max merge across rules) for every rule against inputs, storing
// the result internally for inspection and for a subsequent Defuzzify.
//
// Complexity: O(rules * consequents-per-rule * smp.N()).
func (rs *RuleSpace) Aggregate(inputs map[string]float64, smp *sampler.UniformSampler) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	agg, err := aggregate.Aggregate(rs.rules, inputs, rs.vars, rs.family, rs.implication, smp)
	if err != nil {
		return err
	}
	rs.agg = agg

	return nil
}

// Defuzzify runs Aggregate and then reduces the stored aggregation to a
// crisp value per output variable via centroid of area.
func (rs *RuleSpace) Defuzzify(inputs map[string]float64, smp *sampler.UniformSampler) (map[string]float64, error) {
	if err := rs.Aggregate(inputs, smp); err != nil {
		return nil, err
	}

	rs.mu.RLock()
	defer rs.mu.RUnlock()

	return defuzz.Defuzzify(rs.agg, rs.vars)
}
