package antecedent_test

import (
	"testing"

	"github.com/JoshuaKento/lvlath-fuzzy/antecedent"
	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/membership"
	"github.com/JoshuaKento/lvlath-fuzzy/ops"
	"github.com/JoshuaKento/lvlath-fuzzy/term"
	"github.com/JoshuaKento/lvlath-fuzzy/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempVariable(t *testing.T) *variable.Variable {
	t.Helper()
	v, err := variable.New(-10, 10)
	require.NoError(t, err)

	cold, err := membership.NewTriangular(-10, -5, 0)
	require.NoError(t, err)
	hot, err := membership.NewTriangular(0, 5, 10)
	require.NoError(t, err)

	require.NoError(t, v.InsertTerm("cold", term.New("cold", cold)))
	require.NoError(t, v.InsertTerm("hot", term.New("hot", hot)))
	return v
}

// TestAntecedentAndNotCombination checks an AND of a hot atom with the
// negation of a cold atom on the same variable.
func TestAntecedentAndNotCombination(t *testing.T) {
	vars := map[string]*variable.Variable{"temp": tempVariable(t)}
	inputs := map[string]float64{"temp": 7.5}

	ast := antecedent.And(
		antecedent.Atom("temp", "hot"),
		antecedent.Not(antecedent.Atom("temp", "cold")),
	)

	y, err := antecedent.Eval(ast, inputs, vars, ops.MinMax)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y, 1e-9)
}

func TestAntecedentOrBehavior(t *testing.T) {
	vars := map[string]*variable.Variable{"temp": tempVariable(t)}
	inputs := map[string]float64{"temp": -5}

	ast := antecedent.Or(antecedent.Atom("temp", "cold"), antecedent.Atom("temp", "hot"))
	y, err := antecedent.Eval(ast, inputs, vars, ops.MinMax)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-9)
}

// TestAtomRoundTrip checks that evaluating a bare Atom node matches
// calling Variable.Eval directly.
func TestAtomRoundTrip(t *testing.T) {
	v := tempVariable(t)
	vars := map[string]*variable.Variable{"temp": v}
	inputs := map[string]float64{"temp": 3.0}

	ast := antecedent.Atom("temp", "hot")
	y, err := antecedent.Eval(ast, inputs, vars, ops.MinMax)
	require.NoError(t, err)

	direct, err := v.Eval("hot", 3.0)
	require.NoError(t, err)
	assert.Equal(t, direct, y)
}

// TestNegationInvolution checks that Not(Not(x)) equals x.
func TestNegationInvolution(t *testing.T) {
	vars := map[string]*variable.Variable{"temp": tempVariable(t)}
	inputs := map[string]float64{"temp": 2.0}

	atom := antecedent.Atom("temp", "hot")
	doubleNot := antecedent.Not(antecedent.Not(atom))

	y1, err := antecedent.Eval(atom, inputs, vars, ops.MinMax)
	require.NoError(t, err)
	y2, err := antecedent.Eval(doubleNot, inputs, vars, ops.MinMax)
	require.NoError(t, err)
	assert.InDelta(t, y1, y2, 1e-12)
}

func TestEvalUnknownVariable(t *testing.T) {
	vars := map[string]*variable.Variable{"temp": tempVariable(t)}
	inputs := map[string]float64{"temp": 1.0}

	ast := antecedent.Atom("humidity", "high")
	_, err := antecedent.Eval(ast, inputs, vars, ops.MinMax)
	assert.ErrorIs(t, err, fzerr.ErrUnknownVariable)
}

func TestEvalMissingInput(t *testing.T) {
	vars := map[string]*variable.Variable{"temp": tempVariable(t)}
	inputs := map[string]float64{}

	ast := antecedent.Atom("temp", "hot")
	_, err := antecedent.Eval(ast, inputs, vars, ops.MinMax)
	assert.ErrorIs(t, err, fzerr.ErrMissingInput)
}

func TestEvalPropagatesOutOfBounds(t *testing.T) {
	vars := map[string]*variable.Variable{"temp": tempVariable(t)}
	inputs := map[string]float64{"temp": 100}

	ast := antecedent.Atom("temp", "hot")
	_, err := antecedent.Eval(ast, inputs, vars, ops.MinMax)
	assert.ErrorIs(t, err, fzerr.ErrOutOfBounds)
}
