package specification

import "errors"

var (
	// ErrSpecificationNil a required child specification is nil
	ErrSpecificationNil = errors.New("specification is nil")
)
