// Package antecedent defines the Boolean expression tree evaluated against
// fuzzified inputs to produce a rule's activation degree.
//
// An Antecedent is one of four node kinds:
//
//	Atom(var, term) - membership of term for variable var
//	And(left, right) - T-norm of the two operands under the selected Family
//	Or(left, right)  - S-norm of the two operands
//	Not(inner)       - complement of the operand
//
// Evaluation is a straightforward recursive descent: depth is expected to
// be small (tens of nodes), so no explicit work stack is used here.
package antecedent
