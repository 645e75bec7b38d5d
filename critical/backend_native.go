// SPDX-License-Identifier: MIT

package critical

// Native models an OS critical-section object with a single-token channel:
// holding the lock means the token slot is full.
type Native struct {
	token chan struct{}
}

// NewNative returns an unlocked Native backend.
func NewNative() *Native {
	return &Native{token: make(chan struct{}, 1)}
}

// Lock implements Backend.
func (n *Native) Lock() error {
	n.token <- struct{}{}
	return nil
}

// Unlock implements Backend.
func (n *Native) Unlock() error {
	select {
	case <-n.token:
		return nil
	default:
		return ErrNotHeld
	}
}

// TryLock implements Backend.
func (n *Native) TryLock() (bool, error) {
	select {
	case n.token <- struct{}{}:
		return true, nil
	default:
		return false, nil
	}
}

// Kind implements Backend.
func (n *Native) Kind() Kind { return KindNative }
