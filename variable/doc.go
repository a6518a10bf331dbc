// Package variable defines Variable, a bounded real domain with a set of
// named fuzzy Terms, and provides thread-safe primitives for registering
// and evaluating terms.
//
// A Variable owns its Terms; there are no back-references. Antecedent
// atoms and Consequents refer to variables and terms by string name,
// resolved through Variable.Eval at evaluation time.
//
// Errors:
//
//	ErrInvalidDomain   - min >= max or a non-finite bound passed to New.
//	ErrEmptyInput      - empty term name passed to InsertTerm.
//	ErrDuplicateTerm   - InsertTerm called twice with the same name.
//	ErrUnknownTerm     - Eval referenced an unregistered term name.
//	ErrOutOfBounds     - Eval's x fell outside [min, max].
package variable
