package specification

// or is the OR of two other specifications.
type or[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// Or creates a new specification that is the OR of two other
// specifications. It returns ErrSpecificationNil if either child is nil.
func Or[T any](left Specification[T], right Specification[T]) (Specification[T], error) {
	if left == nil || right == nil {
		return nil, ErrSpecificationNil
	}
	return &or[T]{left: left, right: right}, nil
}

// IsSatisfiedBy reports whether t satisfies either child, skipping the
// right child once the left reports true.
func (spec *or[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) || spec.right.IsSatisfiedBy(t)
}
