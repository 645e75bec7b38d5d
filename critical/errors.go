// SPDX-License-Identifier: MIT

package critical

import "errors"

var (
	// ErrPanic signals a synchronization failure. It is fatal: callers must
	// abort the enclosing operation and surface it to the top-level caller.
	ErrPanic = errors.New("critical: synchronization failure")

	// ErrNotHeld is reported by a backend asked to release a lock it does not hold.
	ErrNotHeld = errors.New("critical: unlock of unheld lock")

	// ErrUnknownBackend is returned by NewBackend for an unsupported Kind.
	ErrUnknownBackend = errors.New("critical: unknown backend")
)
