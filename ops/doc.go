// Package ops provides the operator families used to reduce antecedent
// ASTs: a T-norm for AND, an S-norm for OR, and a complement for NOT.
//
// Three families are built in:
//
//	MinMax (default) - T(a,b)=min(a,b)         S(a,b)=max(a,b)
//	Product          - T(a,b)=a*b              S(a,b)=a+b-a*b
//	Lukasiewicz      - T(a,b)=max(0,a+b-1)     S(a,b)=min(1,a+b)
//
// Complement is C(a)=1-a for all three families and is shared.
package ops
