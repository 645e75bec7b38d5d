// SPDX-License-Identifier: MIT

//go:build !critical_mutex && !critical_native && !critical_portable

package critical

// DefaultKind is the backend compiled in when no critical_* build tag is set.
const DefaultKind = KindNamed
