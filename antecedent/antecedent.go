package antecedent

import (
	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/ops"
	"github.com/JoshuaKento/lvlath-fuzzy/variable"
)

// kind discriminates the four node shapes of an Antecedent tree.
type kind int

const (
	kindAtom kind = iota
	kindAnd
	kindOr
	kindNot
)

// Antecedent is a node in a rule's Boolean-expression AST. The zero value
// is not meaningful; build trees with Atom, And, Or, and Not.
type Antecedent struct {
	k kind

	// kindAtom fields
	varName  string
	termName string

	// kindAnd / kindOr fields
	left, right *Antecedent

	// kindNot field
	inner *Antecedent
}

// Atom builds a leaf node referencing a variable/term pair.
func Atom(varName, termName string) *Antecedent {
	return &Antecedent{k: kindAtom, varName: varName, termName: termName}
}

// And builds a conjunction of two antecedents.
func And(left, right *Antecedent) *Antecedent {
	return &Antecedent{k: kindAnd, left: left, right: right}
}

// Or builds a disjunction of two antecedents.
func Or(left, right *Antecedent) *Antecedent {
	return &Antecedent{k: kindOr, left: left, right: right}
}

// Not builds a negation of an antecedent.
func Not(inner *Antecedent) *Antecedent {
	return &Antecedent{k: kindNot, inner: inner}
}

// Eval recursively reduces the antecedent tree to a membership degree in
// [0, 1] under the given operator family.
//
//   - Atom: looks up varName in vars (fzerr.ErrUnknownVariable if missing),
//     looks up varName in inputs (fzerr.ErrMissingInput if missing), then
//     delegates to Variable.Eval(termName, x).
//   - And/Or: recursively evaluates both operands, then applies the
//     family's T-norm/S-norm.
//   - Not: recursively evaluates the operand, then complements it.
//
// Complexity: O(size of the tree); recursion depth equals tree height.
func Eval(a *Antecedent, inputs map[string]float64, vars map[string]*variable.Variable, fam ops.Family) (float64, error) {
	switch a.k {
	case kindAtom:
		v, ok := vars[a.varName]
		if !ok {
			return 0, fzerr.Wrap(fzerr.ErrUnknownVariable, "antecedent.Eval", "variable %q not registered", a.varName)
		}
		x, ok := inputs[a.varName]
		if !ok {
			return 0, fzerr.Wrap(fzerr.ErrMissingInput, "antecedent.Eval", "no crisp input for variable %q", a.varName)
		}
		return v.Eval(a.termName, x)

	case kindAnd:
		left, err := Eval(a.left, inputs, vars, fam)
		if err != nil {
			return 0, err
		}
		right, err := Eval(a.right, inputs, vars, fam)
		if err != nil {
			return 0, err
		}
		return fam.And(left, right), nil

	case kindOr:
		left, err := Eval(a.left, inputs, vars, fam)
		if err != nil {
			return 0, err
		}
		right, err := Eval(a.right, inputs, vars, fam)
		if err != nil {
			return 0, err
		}
		return fam.Or(left, right), nil

	case kindNot:
		inner, err := Eval(a.inner, inputs, vars, fam)
		if err != nil {
			return 0, err
		}
		return ops.Not(inner), nil

	default:
		// Unreachable: kind is only ever set by the constructors above.
		return 0, fzerr.Wrap(fzerr.ErrUnknownVariable, "antecedent.Eval", "unrecognized antecedent kind %d", a.k)
	}
}
