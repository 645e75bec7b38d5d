// SPDX-License-Identifier: MIT

// Package critical - Backend interface and Kind selection.
//
// Purpose:
//   - Name the four lock implementations and build one from a Kind.
//   - Parse Kind names for configuration.

package critical

import (
	"fmt"
	"strings"
)

// Kind identifies a Backend implementation.
type Kind uint8

const (
	// KindNamed is the named-critical-region backend (default).
	KindNamed Kind = iota
	// KindMutex is the POSIX-style mutex backend.
	KindMutex
	// KindNative is the OS critical-section style backend.
	KindNative
	// KindPortable is the portable thread mutex backend.
	KindPortable
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindMutex:
		return "mutex"
	case KindNative:
		return "native"
	case KindPortable:
		return "portable"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a String form back to its Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range []Kind{KindNamed, KindMutex, KindNative, KindPortable} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownBackend)
}

// Backend is a mutual-exclusion strategy. Implementations report failures
// instead of crashing so that Section can turn them into ErrPanic.
type Backend interface {
	// Lock blocks until the lock is held.
	Lock() error
	// Unlock releases the lock; ErrNotHeld when it was not held.
	Unlock() error
	// TryLock acquires the lock if it is free and reports whether it did.
	TryLock() (bool, error)
	// Kind identifies the implementation.
	Kind() Kind
}

// NewBackend creates a fresh backend of the given kind. KindNamed binds to
// DefaultRegionName.
func NewBackend(k Kind) (Backend, error) {
	switch k {
	case KindNamed:
		return Named(DefaultRegionName), nil
	case KindMutex:
		return NewMutex(), nil
	case KindNative:
		return NewNative(), nil
	case KindPortable:
		return NewPortable(), nil
	default:
		return nil, fmt.Errorf("NewBackend(%s): %w", k, ErrUnknownBackend)
	}
}
