// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and
// the rule-set mutator. Orchestration logic (Aggregate/Defuzzify) lives in
// rulespace.go.
package rulespace

import (
	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/ops"
	"github.com/JoshuaKento/lvlath-fuzzy/rule"
)

// AddRules appends more to the rule set. more must be non-empty; otherwise
// fzerr.ErrEmptyInput is returned and the existing rule set is untouched.
//
// Complexity: O(len(more)). Concurrency: safe; write-locked.
func (rs *RuleSpace) AddRules(more []*rule.Rule) error {
	if len(more) == 0 {
		return fzerr.Wrap(fzerr.ErrEmptyInput, "RuleSpace.AddRules", "more must not be empty")
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.rules = append(rs.rules, more...)

	return nil
}

// RuleCount reports the number of rules currently held.
//
// Complexity: O(1). Concurrency: safe; read-locked.
func (rs *RuleSpace) RuleCount() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	return len(rs.rules)
}

// OperatorFamily reports the operator family used to evaluate antecedents.
//
// Complexity: O(1). Concurrency: safe; read-locked.
func (rs *RuleSpace) OperatorFamily() ops.Family {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	return rs.family
}
