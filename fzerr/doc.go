// Package fzerr defines the shared error taxonomy used across every
// package of this module: membership, variable, antecedent, rule,
// aggregate, defuzz, and rulespace all return one of these eight
// sentinels, wrapped with Wrap for context.
//
// Errors:
//
//	ErrEmptyInput      - zero-length name, empty rule/variable/consequent set.
//	ErrInvalidShape    - membership shape constructor invariant violated.
//	ErrInvalidDomain   - variable constructed with min >= max or non-finite bound.
//	ErrDuplicateTerm   - term name already registered on a variable.
//	ErrUnknownTerm     - eval referenced an unregistered term name.
//	ErrUnknownVariable - antecedent/consequent referenced an unregistered variable.
//	ErrMissingInput    - antecedent referenced a variable absent from crisp inputs.
//	ErrOutOfBounds     - crisp input outside a variable's domain, or sampler n < 2.
package fzerr
