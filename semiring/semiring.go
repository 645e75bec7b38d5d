// SPDX-License-Identifier: MIT

package semiring

import "fmt"

// Number is the set of element types the arithmetic built-ins are defined for.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Monoid is an associative, commutative binary operator with an identity.
type Monoid[T any] struct {
	Name     string
	Op       func(x, y T) T
	Identity T
}

// Semiring pairs an additive Monoid with a multiplicative operator.
//
// Elide, when non-nil, marks output values that must not be stored. It is an
// explicit policy of the semiring; a nil Elide keeps every computed entry.
type Semiring[T any] struct {
	Name     string
	Add      Monoid[T]
	Multiply func(a, b T) T
	Elide    func(v T) bool
}

// Validate reports ErrNilOperator when either operator is missing.
// Complexity: O(1).
func (s Semiring[T]) Validate() error {
	if s.Add.Op == nil {
		return fmt.Errorf("Semiring(%s): add: %w", s.Name, ErrNilOperator)
	}
	if s.Multiply == nil {
		return fmt.Errorf("Semiring(%s): multiply: %w", s.Name, ErrNilOperator)
	}

	return nil
}

// Keep reports whether v survives the elision policy.
func (s Semiring[T]) Keep(v T) bool {
	return s.Elide == nil || !s.Elide(v)
}

// WithElideIdentity returns a copy of s that drops values equal to the
// additive identity.
func WithElideIdentity[T comparable](s Semiring[T]) Semiring[T] {
	id := s.Add.Identity
	s.Elide = func(v T) bool { return v == id }

	return s
}

// String implements fmt.Stringer.
func (s Semiring[T]) String() string {
	return s.Name
}
