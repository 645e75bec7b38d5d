// SPDX-License-Identifier: MIT

package spgemm

import "github.com/giserh/RedisGraph/sparse"

// Variant names one of the four kernel instantiations.
type Variant uint8

const (
	// PlainNoMask: all operands standard, no mask.
	PlainNoMask Variant = iota
	// PlainMask: all operands standard, masked.
	PlainMask
	// HyperNoMask: some operand hypersparse, no mask.
	HyperNoMask
	// HyperMask: some operand hypersparse, masked.
	HyperMask
)

var variantNames = [...]string{
	PlainNoMask: "plain_nomask",
	PlainMask:   "plain_mask",
	HyperNoMask: "hyper_nomask",
	HyperMask:   "hyper_mask",
}

// String implements fmt.Stringer; the names double as metric labels.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// Hyper reports whether column existence is resolved by search.
func (v Variant) Hyper() bool { return v == HyperNoMask || v == HyperMask }

// Masked reports whether the masked kernel runs.
func (v Variant) Masked() bool { return v == PlainMask || v == HyperMask }

// Dispatch selects the kernel for C = A*B, or C<M> = A*B when m is non-nil.
// If any of A, B, C or M is hypersparse the hypersparse-aware path is used.
func Dispatch[T any](a, b sparse.Columns[T], m *Mask, c sparse.Format) Variant {
	hyper := a.IsHyper() || b.IsHyper() || c == sparse.Hypersparse || (m != nil && m.IsHyper())
	switch {
	case hyper && m != nil:
		return HyperMask
	case hyper:
		return HyperNoMask
	case m != nil:
		return PlainMask
	default:
		return PlainNoMask
	}
}
