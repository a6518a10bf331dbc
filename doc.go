// Package lvlathfuzzy is your in-memory playground for building and
// evaluating Mamdani-style fuzzy inference systems in Go.
//
// 🚀 What is lvlath-fuzzy?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//
//	  • Membership shapes: triangular, trapezoidal, Gaussian
//	  • Linguistic variables: named terms over a bounded domain
//	  • Antecedents: AND/OR/NOT trees evaluated under a chosen operator family
//	  • Rules: antecedent → consequent list, clip or product implication
//	  • Aggregation + centroid-of-area defuzzification
//
// ✨ Why choose lvlath-fuzzy?
//
//   - Beginner-friendly    — minimal API, clear, intuitive naming
//   - Rock-solid           — built-in R/W locks ensure thread-safety
//   - Extensible           — swap operator families and implication modes
//   - Pure Go              — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	membership/ — Shape implementations (triangular, trapezoidal, gaussian)
//	ops/        — T-norm/S-norm operator families (MinMax, Product, Lukasiewicz)
//	sampler/    — uniform domain discretization used by implication
//	term/       — named (label, Shape) pair
//	variable/   — a bounded domain plus its named terms
//	antecedent/ — recursive AND/OR/NOT condition trees
//	rule/       — antecedent, consequent list, activation and implication
//	aggregate/  — pointwise-max merge of implicated rule outputs
//	defuzz/     — centroid-of-area reduction to a crisp value
//	rulespace/  — orchestrator owning variables and rules end to end
//	fzerr/      — shared sentinel error vocabulary
//
// Quick example: a thermostat rule "IF temp IS hot THEN fanspeed IS High"
// evaluates an antecedent against a crisp input, implicates a consequent's
// membership curve by the resulting activation, aggregates across rules,
// and reduces the aggregate to a single crisp fan speed.
//
// See example_test.go for worked end-to-end examples.
//
//	go get github.com/JoshuaKento/lvlath-fuzzy
package lvlathfuzzy
