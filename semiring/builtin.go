// SPDX-License-Identifier: MIT

package semiring

import (
	"math"
	"reflect"
)

// PlusMonoid is (+, 0).
func PlusMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Name: "plus", Op: func(x, y T) T { return x + y }, Identity: 0}
}

// MinMonoid is (min, +Inf) for floats and (min, max value) for integers.
func MinMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Name: "min", Op: func(x, y T) T { return min(x, y) }, Identity: maxValue[T]()}
}

// MaxMonoid is (max, -Inf) for floats and (max, min value) for integers.
func MaxMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Name: "max", Op: func(x, y T) T { return max(x, y) }, Identity: minValue[T]()}
}

// LorMonoid is (||, false).
func LorMonoid() Monoid[bool] {
	return Monoid[bool]{Name: "lor", Op: func(x, y bool) bool { return x || y }, Identity: false}
}

// PlusTimes is the conventional arithmetic semiring.
func PlusTimes[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_times", Add: PlusMonoid[T](), Multiply: func(a, b T) T { return a * b }}
}

// MinPlus is the tropical semiring used for shortest paths.
func MinPlus[T Number]() Semiring[T] {
	return Semiring[T]{Name: "min_plus", Add: MinMonoid[T](), Multiply: func(a, b T) T { return a + b }}
}

// MaxPlus is the max-plus semiring used for critical-path problems.
func MaxPlus[T Number]() Semiring[T] {
	return Semiring[T]{Name: "max_plus", Add: MaxMonoid[T](), Multiply: func(a, b T) T { return a + b }}
}

// MaxMin is the bottleneck (widest path) semiring.
func MaxMin[T Number]() Semiring[T] {
	return Semiring[T]{Name: "max_min", Add: MaxMonoid[T](), Multiply: func(a, b T) T { return min(a, b) }}
}

// PlusFirst sums the values of the left operand.
func PlusFirst[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_first", Add: PlusMonoid[T](), Multiply: func(a, _ T) T { return a }}
}

// PlusSecond sums the values of the right operand.
func PlusSecond[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_second", Add: PlusMonoid[T](), Multiply: func(_, b T) T { return b }}
}

// MinSecond selects the smallest right operand; BFS uses it to pick parents.
func MinSecond[T Number]() Semiring[T] {
	return Semiring[T]{Name: "min_second", Add: MinMonoid[T](), Multiply: func(_, b T) T { return b }}
}

// PlusPair counts the number of (i,k,j) paths; values are ignored.
func PlusPair[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_pair", Add: PlusMonoid[T](), Multiply: func(_, _ T) T { return 1 }}
}

// LorLand is the boolean semiring used for reachability.
func LorLand() Semiring[bool] {
	return Semiring[bool]{Name: "lor_land", Add: LorMonoid(), Multiply: func(a, b bool) bool { return a && b }}
}

// Structural marks every structurally reachable entry true, regardless of values.
func Structural() Semiring[bool] {
	return Semiring[bool]{Name: "structural", Add: LorMonoid(), Multiply: func(_, _ bool) bool { return true }}
}

// maxValue returns +Inf for floats and the largest representable integer otherwise.
func maxValue[T Number]() T {
	var out T
	v := reflect.ValueOf(&out).Elem()
	bits := v.Type().Bits()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(uint64(1)<<(bits-1) - 1))
	default:
		v.SetUint(^uint64(0) >> (64 - bits))
	}

	return out
}

// minValue returns -Inf for floats, zero for unsigned and the smallest signed integer.
func minValue[T Number]() T {
	var out T
	v := reflect.ValueOf(&out).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(-1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(-int64(uint64(1) << (v.Type().Bits() - 1)))
	}

	return out
}
