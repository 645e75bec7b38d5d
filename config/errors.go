// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// errReadBytesNotSupported is returned by the map provider, which only supports Read.
var errReadBytesNotSupported = errors.New("config: map provider does not support ReadBytes")
