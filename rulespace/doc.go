// Package rulespace provides RuleSpace, the orchestrator that owns a
// fuzzy inference system's variables and rules and runs the
// aggregate-then-defuzzify pipeline against a crisp input vector.
//
// RuleSpace holds no inputs itself; every call is parameterized by the
// inputs and sampler the caller supplies. The internal aggregation cache
// is overwritten by every successful call to Aggregate/Defuzzify (a failed
// call leaves it as it was) and exists purely to
// aid inspection and testing — callers should not rely on its retention
// across unrelated calls.
package rulespace
