// Package rule defines a fuzzy Rule: an antecedent expression paired with
// one or more consequents, plus the activation and implication steps that
// turn a crisp input vector into a per-output-variable sample vector.
package rule
