package specification

import (
	"errors"
	"iter"
)

// ErrNilSpecification is returned when a combinator receives a nil operand.
var ErrNilSpecification = errors.New("specification operand must not be nil")

// Specification decides whether a candidate value meets a criterion.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// Func adapts a plain predicate function to the Specification interface.
type Func[T any] func(candidate T) bool

// IsSatisfiedBy evaluates the wrapped predicate.
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// And builds the logical conjunction of two specifications.
// Evaluation short-circuits: the right operand is not consulted when the
// left one already rejects the candidate.
func And[T any](left Specification[T], right Specification[T]) (Specification[T], error) {
	if left == nil || right == nil {
		return nil, ErrNilSpecification
	}

	return Func[T](func(candidate T) bool {
		return left.IsSatisfiedBy(candidate) && right.IsSatisfiedBy(candidate)
	}), nil
}

// Or builds the logical disjunction of two specifications.
// Evaluation short-circuits on the first satisfied operand.
func Or[T any](left Specification[T], right Specification[T]) (Specification[T], error) {
	if left == nil || right == nil {
		return nil, ErrNilSpecification
	}

	return Func[T](func(candidate T) bool {
		return left.IsSatisfiedBy(candidate) || right.IsSatisfiedBy(candidate)
	}), nil
}

// Not builds the negation of a specification.
func Not[T any](spec Specification[T]) (Specification[T], error) {
	if spec == nil {
		return nil, ErrNilSpecification
	}

	return Func[T](func(candidate T) bool {
		return !spec.IsSatisfiedBy(candidate)
	}), nil
}

// AllOf folds one or multiple specifications into a single conjunction.
func AllOf[T any](spec Specification[T], specs ...Specification[T]) (Specification[T], error) {
	combined := spec

	for _, next := range specs {
		var err error

		combined, err = And(combined, next)
		if err != nil {
			return nil, err
		}
	}

	if combined == nil {
		return nil, ErrNilSpecification
	}

	return combined, nil
}

// AnyOf folds one or multiple specifications into a single disjunction.
func AnyOf[T any](spec Specification[T], specs ...Specification[T]) (Specification[T], error) {
	combined := spec

	for _, next := range specs {
		var err error

		combined, err = Or(combined, next)
		if err != nil {
			return nil, err
		}
	}

	if combined == nil {
		return nil, ErrNilSpecification
	}

	return combined, nil
}

// Filter returns the lazy subsequence of candidates satisfying the
// specification, preserving input order. The input slice is not mutated.
// A nil specification satisfies nothing.
func Filter[T any](candidates []T, spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if spec == nil {
			return
		}

		for _, candidate := range candidates {
			if !spec.IsSatisfiedBy(candidate) {
				continue
			}

			if !yield(candidate) {
				return
			}
		}
	}
}

// Collect materializes a filtered sequence into a fresh slice.
func Collect[T any](candidates []T, spec Specification[T]) []T {
	result := make([]T, 0)

	for candidate := range Filter(candidates, spec) {
		result = append(result, candidate)
	}

	return result
}
