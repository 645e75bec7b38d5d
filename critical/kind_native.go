// SPDX-License-Identifier: MIT

//go:build critical_native && !critical_mutex

package critical

// DefaultKind is selected by the critical_native build tag.
const DefaultKind = KindNative
