package rule

import (
	"github.com/JoshuaKento/lvlath-fuzzy/antecedent"
	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
)

// Consequent assigns a linguistic term to an output variable; a rule's
// activation clips or scales that term's membership.
type Consequent struct {
	Var  string
	Term string
}

// ImplicationMode selects how a rule's activation reduces a consequent
// term's membership.
type ImplicationMode int

const (
	// Clip implicates via min(alpha, mu): the standard Mamdani clip.
	Clip ImplicationMode = iota

	// ProductImplication implicates via alpha*mu.
	ProductImplication
)

// Rule is an antecedent expression plus a non-empty list of consequents.
type Rule struct {
	Antecedent *antecedent.Antecedent
	Consequent []Consequent
}

// New constructs a Rule. ant must be non-nil and consequents must be
// non-empty; otherwise fzerr.ErrEmptyInput is returned.
func New(ant *antecedent.Antecedent, consequents []Consequent) (*Rule, error) {
	if ant == nil {
		return nil, fzerr.Wrap(fzerr.ErrEmptyInput, "rule.New", "antecedent must not be nil")
	}
	if len(consequents) == 0 {
		return nil, fzerr.Wrap(fzerr.ErrEmptyInput, "rule.New", "consequent list must not be empty")
	}
	return &Rule{Antecedent: ant, Consequent: consequents}, nil
}
