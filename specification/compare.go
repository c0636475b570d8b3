package specification

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Eq creates a specification satisfied by items equal to target.
func Eq[T comparable](target T) Specification[T] {
	return New(func(t T) bool { return t == target })
}

// In creates a specification satisfied by items equal to any of targets.
func In[T comparable](targets ...T) Specification[T] {
	targets = slices.Clone(targets)
	return New(func(t T) bool { return slices.Contains(targets, t) })
}

// Gt creates a specification satisfied by items greater than target.
func Gt[T constraints.Ordered](target T) Specification[T] {
	return New(func(t T) bool { return t > target })
}

// Gte creates a specification satisfied by items greater than or equal to
// target.
func Gte[T constraints.Ordered](target T) Specification[T] {
	return New(func(t T) bool { return t >= target })
}

// Lt creates a specification satisfied by items less than target.
func Lt[T constraints.Ordered](target T) Specification[T] {
	return New(func(t T) bool { return t < target })
}

// Lte creates a specification satisfied by items less than or equal to
// target.
func Lte[T constraints.Ordered](target T) Specification[T] {
	return New(func(t T) bool { return t <= target })
}
