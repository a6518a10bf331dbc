package variable

import (
	"math"
	"sync"

	"github.com/JoshuaKento/lvlath-fuzzy/fzerr"
	"github.com/JoshuaKento/lvlath-fuzzy/term"
)

// Variable is a bounded real domain [min, max] with a map of named Terms.
// Variable owns its Terms. A single sync.RWMutex guards the term map so
// hosts may register terms from one goroutine while evaluating from
// others, with the usual Go caveat that writes still need exclusivity.
type Variable struct {
	mu    sync.RWMutex
	min   float64
	max   float64
	terms map[string]*term.Term
}

// New constructs a Variable over [min, max]. Both bounds must be finite
// and min must be strictly less than max; otherwise fzerr.ErrInvalidDomain
// is returned.
func New(min, max float64) (*Variable, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fzerr.Wrap(fzerr.ErrInvalidDomain, "variable.New", "bounds must be finite, got (%v, %v)", min, max)
	}
	if min >= max {
		return nil, fzerr.Wrap(fzerr.ErrInvalidDomain, "variable.New", "require min < max, got (%v, %v)", min, max)
	}
	return &Variable{
		min:   min,
		max:   max,
		terms: make(map[string]*term.Term),
	}, nil
}

// Domain returns the variable's inclusive bounds.
//
// Complexity: O(1). Concurrency: safe; read-locked.
func (v *Variable) Domain() (min, max float64) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.min, v.max
}

// InsertTerm registers t under name. An empty name returns
// fzerr.ErrEmptyInput; a name already registered returns
// fzerr.ErrDuplicateTerm — InsertTerm never silently overwrites.
//
// Complexity: O(1). Concurrency: safe; write-locked.
func (v *Variable) InsertTerm(name string, t *term.Term) error {
	if name == "" {
		return fzerr.Wrap(fzerr.ErrEmptyInput, "Variable.InsertTerm", "term name must not be empty")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.terms[name]; exists {
		return fzerr.Wrap(fzerr.ErrDuplicateTerm, "Variable.InsertTerm", "term %q already registered", name)
	}
	v.terms[name] = t

	return nil
}

// Eval looks up the term registered under name and evaluates it at x.
// An unregistered name returns fzerr.ErrUnknownTerm; an x outside
// [min, max] returns fzerr.ErrOutOfBounds.
//
// Complexity: O(1). Concurrency: safe; read-locked.
func (v *Variable) Eval(name string, x float64) (float64, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	t, ok := v.terms[name]
	if !ok {
		return 0, fzerr.Wrap(fzerr.ErrUnknownTerm, "Variable.Eval", "term %q not registered", name)
	}
	if x < v.min || x > v.max {
		return 0, fzerr.Wrap(fzerr.ErrOutOfBounds, "Variable.Eval", "x=%v outside [%v, %v]", x, v.min, v.max)
	}

	return t.Eval(x), nil
}
