package specification

import "golang.org/x/exp/slices"

// disjunction is the OR of any number of specifications.
type disjunction[T any] struct {
	specs []Specification[T]
}

// Disjunction creates a new specification satisfied by items that satisfy
// at least one element of specs. An empty disjunction is satisfied by no
// item. It returns ErrSpecificationNil if any element is nil.
func Disjunction[T any](specs ...Specification[T]) (Specification[T], error) {
	for _, spec := range specs {
		if spec == nil {
			return nil, ErrSpecificationNil
		}
	}
	return &disjunction[T]{specs: slices.Clone(specs)}, nil
}

func (spec *disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, spec := range spec.specs {
		if spec.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}
