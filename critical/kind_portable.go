// SPDX-License-Identifier: MIT

//go:build critical_portable && !critical_mutex && !critical_native

package critical

// DefaultKind is selected by the critical_portable build tag.
const DefaultKind = KindPortable
