// SPDX-License-Identifier: MIT
// Package fzerr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared across the
// whole module. Every package that can fail returns one of these sentinels,
// optionally wrapped with Wrap for call-site context, and tests MUST check
// them via errors.Is. No algorithm in this module panics on a user-triggered
// error condition; panics are reserved for programmer errors (mismatched
// internal invariants) that a caller cannot trigger through the public API.
package fzerr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the fuzzy inference packages.
var (
	// ErrEmptyInput indicates a zero-length name, empty rule set, empty
	// variable set, or empty consequent list.
	ErrEmptyInput = errors.New("fzerr: empty input")

	// ErrInvalidShape indicates a membership shape constructor's invariant
	// was violated (bad ordering, non-positive standard deviation).
	ErrInvalidShape = errors.New("fzerr: invalid shape")

	// ErrInvalidDomain indicates a variable was constructed with min >= max
	// or a non-finite bound.
	ErrInvalidDomain = errors.New("fzerr: invalid domain")

	// ErrDuplicateTerm indicates a term name is already registered on a
	// variable.
	ErrDuplicateTerm = errors.New("fzerr: duplicate term")

	// ErrUnknownTerm indicates an eval referenced an unregistered term name.
	ErrUnknownTerm = errors.New("fzerr: unknown term")

	// ErrUnknownVariable indicates an antecedent or consequent referenced an
	// unregistered variable.
	ErrUnknownVariable = errors.New("fzerr: unknown variable")

	// ErrMissingInput indicates an antecedent referenced a variable absent
	// from the crisp input map.
	ErrMissingInput = errors.New("fzerr: missing input")

	// ErrOutOfBounds indicates a crisp input fell outside a variable's
	// inclusive domain, or a sampler was constructed with n < 2.
	ErrOutOfBounds = errors.New("fzerr: out of bounds")
)

// Wrap attaches call-site context to a taxonomy sentinel without losing
// errors.Is compatibility. The returned error message has the form
// "<op>: <msg>: <sentinel>"; callers MUST keep matching against the
// sentinel itself, never against the formatted string.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func Wrap(sentinel error, op, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", op, msg, sentinel)
}
