// SPDX-License-Identifier: MIT

package semiring

import "errors"

// ErrNilOperator indicates that a Semiring is missing its add or multiply operator.
var ErrNilOperator = errors.New("semiring: nil operator")
