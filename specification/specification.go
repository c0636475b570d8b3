// Package specification implements the specification pattern: predicate
// objects over a single item type, combined with boolean operators and
// applied to sequences with Filter.
//
// The Specification interface has a single method, IsSatisfiedBy. All
// combinators (And, Or, Not, Conjunction, Disjunction) are package-level
// functions returning new specifications, so further combinators can be
// added without modifying any existing specification type.
package specification

// Specification is a predicate over a single item of type T.
// Use New to create a specification from an ordinary function.
//
// Implementations must be pure: IsSatisfiedBy must not mutate t or any
// shared state and must return the same result for equal items. A pure
// specification is safe to share across goroutines.
type Specification[T any] interface {
	// IsSatisfiedBy reports whether t is satisfied by the specification.
	IsSatisfiedBy(t T) bool
}

// specification is the leaf created by New.
type specification[T any] struct {
	isSatisfiedBy func(t T) bool
}

// New creates a Specification from an ordinary predicate function.
func New[T any](isSatisfiedBy func(t T) bool) Specification[T] {
	return &specification[T]{isSatisfiedBy: isSatisfiedBy}
}

func (spec *specification[T]) IsSatisfiedBy(t T) bool {
	return spec.isSatisfiedBy(t)
}
