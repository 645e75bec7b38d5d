// SPDX-License-Identifier: MIT

// Package semiring defines the pluggable multiply/add operator pairs that the
// sparse kernels are written against.
//
// What & Why:
//
//	A Semiring pairs an additive Monoid (associative, commutative operator with
//	an identity) with a multiplicative operator. Swapping the pair turns the
//	same SpGEMM kernel into arithmetic multiplication (PlusTimes), shortest
//	paths (MinPlus), reachability (LorLand) or structural counting (PlusPair).
//
// Numeric policy:
//
//	The kernels never drop an entry for being numerically zero. A semiring may
//	opt into elision by setting Elide; the driver applies it when compacting
//	each output column.
//
// Complexity:
//
//	All operators are expected to run in O(1).
package semiring
