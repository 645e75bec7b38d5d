// SPDX-License-Identifier: MIT

//go:build critical_mutex

package critical

// DefaultKind is selected by the critical_mutex build tag.
const DefaultKind = KindMutex
