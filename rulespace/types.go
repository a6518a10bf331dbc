package rulespace

import (
	"sync"

	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/ops"
	"github.com/JoshuaKento/lvlath-fuzzy/rule"
	"github.com/JoshuaKento/lvlath-fuzzy/variable"
)

// RuleSpace owns a fixed set of variables and a mutable list of rules, and
// caches the last aggregation for inspection.
type RuleSpace struct {
	mu sync.RWMutex

	vars        map[string]*variable.Variable
	rules       []*rule.Rule
	agg         map[string][]float64
	family      ops.Family
	implication rule.ImplicationMode
}

// Option configures a RuleSpace at construction time.
type Option func(*RuleSpace)

// WithOperatorFamily selects the T-norm/S-norm family used to evaluate
// every rule's antecedent. Default: ops.MinMax.
func WithOperatorFamily(fam ops.Family) Option {
	return func(rs *RuleSpace) { rs.family = fam }
}

// WithImplication selects the implication operator used to reduce
// consequent memberships by a rule's activation. Default: rule.Clip.
func WithImplication(mode rule.ImplicationMode) Option {
	return func(rs *RuleSpace) { rs.implication = mode }
}

// New constructs a RuleSpace. Both vars and rules must be non-empty;
// otherwise fzerr.ErrEmptyInput is returned. Options are applied
// left-to-right after the defaults (ops.MinMax, rule.Clip) are set.
func New(vars map[string]*variable.Variable, rules []*rule.Rule, opts ...Option) (*RuleSpace, error) {
	if len(vars) == 0 {
		return nil, fzerr.Wrap(fzerr.ErrEmptyInput, "rulespace.New", "vars must not be empty")
	}
	if len(rules) == 0 {
		return nil, fzerr.Wrap(fzerr.ErrEmptyInput, "rulespace.New", "rules must not be empty")
	}

	rs := &RuleSpace{
		vars:        vars,
		rules:       append([]*rule.Rule(nil), rules...),
		agg:         make(map[string][]float64),
		family:      ops.MinMax,
		implication: rule.Clip,
	}
	for _, opt := range opts {
		opt(rs)
	}

	return rs, nil
}
