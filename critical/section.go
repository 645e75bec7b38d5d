// SPDX-License-Identifier: MIT

// Package critical - Section: run a block under the configured backend.
//
// Purpose:
//   - One entry point (Run) that acquires before the block, releases on
//     every exit path, and reports synchronization failure as ErrPanic.
//   - Skip locking entirely when the library is not multithreaded.
//
// AI-Hints:
//   - Treat any error wrapping ErrPanic as fatal; do not retry the block.
//   - Use TryRun on paths that may give up instead of waiting.
//   - Do is Run for blocks that cannot fail on their own.
//
// Complexity quicksheet:
//   - Run/TryRun/Do: O(1) beyond the block, plus lock wait.

package critical

import (
	"context"
	"fmt"
	"time"

	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/metrics"
)

// Section runs blocks of code under mutual exclusion.
type Section struct {
	backend       Backend
	multithreaded bool
	logger        *logging.Logger
	metrics       metrics.Collector
}

// New builds a Section from options. Without WithBackend the backend is
// created from the configured Kind (DefaultKind unless WithKind is given).
func New(opts ...Option) (*Section, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := o.backend
	if b == nil {
		var err error
		if b, err = NewBackend(o.kind); err != nil {
			return nil, fmt.Errorf("critical.New: %w", err)
		}
	}

	return &Section{
		backend:       b,
		multithreaded: o.multithreaded,
		logger:        logging.OrNoop(o.logger).WithComponent("critical"),
		metrics:       o.metrics,
	}, nil
}

// Backend returns the backend in use.
func (s *Section) Backend() Backend { return s.backend }

// Multithreaded reports whether Run acquires the lock.
func (s *Section) Multithreaded() bool { return s.multithreaded }

// Run executes fn while holding the lock. The lock is released on every exit
// path, including a panic in fn.
//
// Implementation:
//   - Stage 1: without multithreading, call fn and return its result.
//   - Stage 2: Lock; on failure record the wait, log, and return ErrPanic.
//   - Stage 3: run fn; the deferred Unlock turns a release failure into
//     ErrPanic and records the wait either way.
//
// Errors:
//   - wrapping ErrPanic if the lock could not be acquired (fn is not run) or
//     released (fn's result is discarded);
//   - otherwise fn's own error.
func (s *Section) Run(fn func() error) (err error) {
	if !s.multithreaded {
		return fn()
	}

	start := time.Now()
	if lerr := s.backend.Lock(); lerr != nil {
		err = s.fail("lock", lerr)
		s.metrics.RecordCritical(time.Since(start), err)
		return err
	}

	return s.runHeld(time.Since(start), fn)
}

// TryRun is Run without blocking: when the lock is busy it returns
// (false, nil) and fn is not executed.
//
// Returns:
//   - ran: whether fn was executed.
//   - err: fn's error, or one wrapping ErrPanic.
func (s *Section) TryRun(fn func() error) (ran bool, err error) {
	if !s.multithreaded {
		return true, fn()
	}

	ok, lerr := s.backend.TryLock()
	if lerr != nil {
		err = s.fail("lock", lerr)
		s.metrics.RecordCritical(0, err)
		return false, err
	}
	if !ok {
		return false, nil
	}

	return true, s.runHeld(0, fn)
}

// Do runs fn under the lock; the only possible error wraps ErrPanic.
func (s *Section) Do(fn func()) error {
	return s.Run(func() error {
		fn()
		return nil
	})
}

// runHeld executes fn with the lock already held and releases it afterwards.
func (s *Section) runHeld(wait time.Duration, fn func() error) (err error) {
	defer func() {
		var syncErr error
		if uerr := s.backend.Unlock(); uerr != nil {
			syncErr = s.fail("unlock", uerr)
			err = syncErr
		}
		s.metrics.RecordCritical(wait, syncErr)
	}()

	return fn()
}

// fail wraps a backend error into ErrPanic and logs it.
func (s *Section) fail(phase string, cause error) error {
	err := fmt.Errorf("critical(%s): %s: %w: %w", s.backend.Kind(), phase, ErrPanic, cause)
	s.logger.LogCriticalFailure(context.Background(), s.backend.Kind().String(), phase, cause)
	return err
}
