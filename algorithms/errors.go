// SPDX-License-Identifier: MIT

package algorithms

import "errors"

var (
	// ErrNotSquare is returned when the adjacency matrix is not n×n.
	ErrNotSquare = errors.New("algorithms: adjacency matrix is not square")

	// ErrVertexOutOfRange is returned for a source outside [0, n).
	ErrVertexOutOfRange = errors.New("algorithms: vertex out of range")

	// ErrNegativeHops is returned by KHop for k < 0.
	ErrNegativeHops = errors.New("algorithms: negative hop count")
)
