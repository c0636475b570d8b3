package specification

// and is the AND of two other specifications.
type and[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// And creates a new specification that is the AND of two other
// specifications. It returns ErrSpecificationNil if either child is nil.
func And[T any](left Specification[T], right Specification[T]) (Specification[T], error) {
	if left == nil || right == nil {
		return nil, ErrSpecificationNil
	}
	return &and[T]{left: left, right: right}, nil
}

// IsSatisfiedBy reports whether t satisfies both children, skipping the
// right child once the left reports false.
func (spec *and[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) && spec.right.IsSatisfiedBy(t)
}
