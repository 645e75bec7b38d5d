// SPDX-License-Identifier: MIT

package queue

import "errors"

var (
	// ErrNotInitialized is returned by Finalize when no global queue exists.
	ErrNotInitialized = errors.New("queue: not initialized")

	// ErrAlreadyInitialized is returned by Init when the global queue exists.
	ErrAlreadyInitialized = errors.New("queue: already initialized")

	// ErrNilHandle is returned when a nil Handle is passed to the queue.
	ErrNilHandle = errors.New("queue: nil handle")
)
