package rulespace_test

import (
	"math"
	"testing"

	"github.com/JoshuaKento/lvlath-fuzzy/antecedent"
	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/membership"
	"github.com/JoshuaKento/lvlath-fuzzy/rule"
	"github.com/JoshuaKento/lvlath-fuzzy/rulespace"
	"github.com/JoshuaKento/lvlath-fuzzy/sampler"
	"github.com/JoshuaKento/lvlath-fuzzy/term"
	"github.com/JoshuaKento/lvlath-fuzzy/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildClimateSystem builds a small climate-control system: temp (input),
// fanspeed and pumpspeed (outputs).
func buildClimateSystem(t *testing.T) (map[string]*variable.Variable, []*rule.Rule) {
	t.Helper()

	temp, err := variable.New(-10, 10)
	require.NoError(t, err)
	cold, err := membership.NewTriangular(-10, -5, 0)
	require.NoError(t, err)
	hot, err := membership.NewTriangular(0, 5, 10)
	require.NoError(t, err)
	require.NoError(t, temp.InsertTerm("cold", term.New("cold", cold)))
	require.NoError(t, temp.InsertTerm("hot", term.New("hot", hot)))

	fan, err := variable.New(0, 10)
	require.NoError(t, err)
	fanHigh, err := membership.NewTriangular(5, 7.5, 10)
	require.NoError(t, err)
	fanLow, err := membership.NewTriangular(0, 2.5, 5)
	require.NoError(t, err)
	require.NoError(t, fan.InsertTerm("High", term.New("High", fanHigh)))
	require.NoError(t, fan.InsertTerm("Low", term.New("Low", fanLow)))

	pump, err := variable.New(0, 100)
	require.NoError(t, err)
	pumpHigh, err := membership.NewTriangular(80, 90, 100)
	require.NoError(t, err)
	pumpLow, err := membership.NewTriangular(0, 10, 20)
	require.NoError(t, err)
	require.NoError(t, pump.InsertTerm("High", term.New("High", pumpHigh)))
	require.NoError(t, pump.InsertTerm("Low", term.New("Low", pumpLow)))

	vars := map[string]*variable.Variable{"temp": temp, "fanspeed": fan, "pumpspeed": pump}

	r1, err := rule.New(
		antecedent.And(antecedent.Atom("temp", "hot"), antecedent.Not(antecedent.Atom("temp", "cold"))),
		[]rule.Consequent{{Var: "fanspeed", Term: "High"}, {Var: "pumpspeed", Term: "High"}},
	)
	require.NoError(t, err)
	r2, err := rule.New(
		antecedent.And(antecedent.Atom("temp", "cold"), antecedent.Not(antecedent.Atom("temp", "hot"))),
		[]rule.Consequent{{Var: "fanspeed", Term: "Low"}, {Var: "pumpspeed", Term: "Low"}},
	)
	require.NoError(t, err)

	return vars, []*rule.Rule{r1, r2}
}

// TestEndToEndHotSide runs a full aggregate-then-defuzzify pass for a
// hot-side input.
func TestEndToEndHotSide(t *testing.T) {
	vars, rules := buildClimateSystem(t)
	rs, err := rulespace.New(vars, rules)
	require.NoError(t, err)

	smp, err := sampler.NewUniformSampler(101)
	require.NoError(t, err)

	out, err := rs.Defuzzify(map[string]float64{"temp": 7.5}, smp)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, out["fanspeed"], 6.5)
	assert.LessOrEqual(t, out["fanspeed"], 8.5)
	assert.GreaterOrEqual(t, out["pumpspeed"], 70.0)
	assert.LessOrEqual(t, out["pumpspeed"], 95.0)
}

// TestEndToEndColdSide runs a full aggregate-then-defuzzify pass for a
// cold-side input.
func TestEndToEndColdSide(t *testing.T) {
	vars, rules := buildClimateSystem(t)
	rs, err := rulespace.New(vars, rules)
	require.NoError(t, err)

	smp, err := sampler.NewUniformSampler(101)
	require.NoError(t, err)

	out, err := rs.Defuzzify(map[string]float64{"temp": -7.5}, smp)
	require.NoError(t, err)

	assert.Less(t, out["fanspeed"], 5.0)
	assert.Less(t, out["pumpspeed"], 50.0)
}

// TestZeroActivationYieldsNaN checks that an input activating no rule
// yields NaN outputs rather than an error.
func TestZeroActivationYieldsNaN(t *testing.T) {
	vars, rules := buildClimateSystem(t)
	rs, err := rulespace.New(vars, rules)
	require.NoError(t, err)

	smp, err := sampler.NewUniformSampler(101)
	require.NoError(t, err)

	out, err := rs.Defuzzify(map[string]float64{"temp": 0}, smp)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out["fanspeed"]))
	assert.True(t, math.IsNaN(out["pumpspeed"]))
}

func TestNewRejectsEmptyVarsOrRules(t *testing.T) {
	vars, rules := buildClimateSystem(t)

	_, err := rulespace.New(map[string]*variable.Variable{}, rules)
	assert.ErrorIs(t, err, fzerr.ErrEmptyInput)

	_, err = rulespace.New(vars, nil)
	assert.ErrorIs(t, err, fzerr.ErrEmptyInput)
}

func TestAddRulesRejectsEmpty(t *testing.T) {
	vars, rules := buildClimateSystem(t)
	rs, err := rulespace.New(vars, rules)
	require.NoError(t, err)

	err = rs.AddRules(nil)
	assert.ErrorIs(t, err, fzerr.ErrEmptyInput)
	assert.Equal(t, 2, rs.RuleCount())
}

func TestAddRulesAppends(t *testing.T) {
	vars, rules := buildClimateSystem(t)
	rs, err := rulespace.New(vars, rules[:1])
	require.NoError(t, err)
	require.Equal(t, 1, rs.RuleCount())

	require.NoError(t, rs.AddRules(rules[1:]))
	assert.Equal(t, 2, rs.RuleCount())
}
