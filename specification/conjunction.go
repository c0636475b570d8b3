package specification

import "golang.org/x/exp/slices"

// conjunction is the AND of any number of specifications.
type conjunction[T any] struct {
	specs []Specification[T]
}

// Conjunction creates a new specification satisfied by items that satisfy
// every element of specs. An empty conjunction is satisfied by every item.
// It returns ErrSpecificationNil if any element is nil.
func Conjunction[T any](specs ...Specification[T]) (Specification[T], error) {
	for _, spec := range specs {
		if spec == nil {
			return nil, ErrSpecificationNil
		}
	}
	return &conjunction[T]{specs: slices.Clone(specs)}, nil
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, spec := range spec.specs {
		if !spec.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}
