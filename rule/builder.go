// builder.go — a fluent Rule builder: small chained calls that accumulate
// state in a private struct, with validation deferred to a final Build()
// call rather than panicking mid-chain.
package rule

import "github.com/JoshuaKento/lvlath-fuzzy/antecedent"

// Builder accumulates an antecedent tree and a consequent list via chained
// calls, then produces a Rule with Build.
//
// Example:
//
//	r, err := rule.NewBuilder().
//	    If("temp", "hot").
//	    AndNot("temp", "cold").
//	    Then("fanspeed", "High").
//	    Then("pumpspeed", "High").
//	    Build()
type Builder struct {
	ant   *antecedent.Antecedent
	conds []Consequent
}

// NewBuilder starts an empty rule builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// If sets the initial atomic condition of the antecedent.
func (b *Builder) If(varName, termName string) *Builder {
	b.ant = antecedent.Atom(varName, termName)
	return b
}

// And conjoins another atomic condition onto the antecedent built so far.
func (b *Builder) And(varName, termName string) *Builder {
	b.ant = antecedent.And(b.ant, antecedent.Atom(varName, termName))
	return b
}

// AndNot conjoins the negation of another atomic condition.
func (b *Builder) AndNot(varName, termName string) *Builder {
	b.ant = antecedent.And(b.ant, antecedent.Not(antecedent.Atom(varName, termName)))
	return b
}

// Or disjoins another atomic condition onto the antecedent built so far.
func (b *Builder) Or(varName, termName string) *Builder {
	b.ant = antecedent.Or(b.ant, antecedent.Atom(varName, termName))
	return b
}

// Then appends a consequent: if the antecedent fires, var is assigned term.
func (b *Builder) Then(varName, termName string) *Builder {
	b.conds = append(b.conds, Consequent{Var: varName, Term: termName})
	return b
}

// Build validates and constructs the Rule. Returns fzerr.ErrEmptyInput if
// If/And/AndNot/Or was never called (nil antecedent) or if no consequent
// was ever added via Then.
func (b *Builder) Build() (*Rule, error) {
	return New(b.ant, b.conds)
}
