package specification

// not is the inverse (NOT) of another specification.
type not[T any] struct {
	spec Specification[T]
}

// Not creates a new specification that is the inverse (NOT) of the given
// specification. It returns ErrSpecificationNil if spec is nil.
func Not[T any](spec Specification[T]) (Specification[T], error) {
	if spec == nil {
		return nil, ErrSpecificationNil
	}
	return &not[T]{spec: spec}, nil
}

func (spec *not[T]) IsSatisfiedBy(t T) bool {
	return !spec.spec.IsSatisfiedBy(t)
}
