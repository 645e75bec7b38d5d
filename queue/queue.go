// SPDX-License-Identifier: MIT

// Package queue - insertion-ordered set of matrices with pending work.
//
// Purpose:
//   - Track every matrix that owes assembly, oldest first, without duplicates.
//   - Run every mutation inside the critical section; a synchronization
//     failure is returned, never a partial success.
//
// AI-Hints:
//   - Materialize runs outside the section, so a handle may remove itself
//     from the queue while Wait drains it.
//
// Complexity quicksheet:
//   - Insert/Remove/Contains/RemoveHead: O(1); Snapshot: O(n); Wait: O(n)
//     plus the materializations.

package queue

import (
	"container/list"
	"context"
	"fmt"

	"github.com/giserh/RedisGraph/critical"
	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/metrics"
)

// Handle is a matrix with deferred work.
type Handle interface {
	// HandleID is unique per matrix for the life of the process.
	HandleID() uint64
	// Materialize finishes all deferred work. It is called outside the
	// critical section and may call back into the queue.
	Materialize() error
}

// Queue is an insertion-ordered set of Handles.
// All fields below section are only touched inside section.Run.
type Queue struct {
	section *critical.Section
	logger  *logging.Logger
	metrics metrics.Collector

	order *list.List               // of Handle, oldest first
	index map[uint64]*list.Element // HandleID -> element in order
}

// New creates an empty queue.
func New(opts ...Option) (*Queue, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.OrNoop(o.logger)
	s := o.section
	if s == nil {
		var err error
		s, err = critical.New(
			critical.WithMultithreaded(o.multithreaded),
			critical.WithLogger(logger),
			critical.WithMetrics(o.metrics),
		)
		if err != nil {
			return nil, fmt.Errorf("queue.New: %w", err)
		}
	}

	return &Queue{
		section: s,
		logger:  logger.WithComponent("queue"),
		metrics: o.metrics,
		order:   list.New(),
		index:   make(map[uint64]*list.Element),
	}, nil
}

// Section returns the critical section guarding q.
func (q *Queue) Section() *critical.Section { return q.section }

// Insert appends h unless it is already queued and reports whether it was added.
//
// Errors:
//   - ErrNilHandle for a nil h.
//   - an error wrapping critical.ErrPanic when the section fails; h is then
//     not reported as added.
//
// Complexity:
//   - O(1) under the lock.
func (q *Queue) Insert(h Handle) (bool, error) {
	if h == nil {
		return false, ErrNilHandle
	}
	var added bool
	err := q.section.Do(func() {
		id := h.HandleID()
		if _, ok := q.index[id]; ok {
			return
		}
		q.index[id] = q.order.PushBack(h)
		added = true
		q.metrics.RecordQueueLen(q.order.Len())
	})
	if err != nil {
		return false, fmt.Errorf("queue.Insert(%d): %w", h.HandleID(), err)
	}
	return added, nil
}

// Remove deletes h if present and reports whether it was queued.
func (q *Queue) Remove(h Handle) (bool, error) {
	if h == nil {
		return false, ErrNilHandle
	}
	var removed bool
	err := q.section.Do(func() {
		removed = q.removeLocked(h.HandleID())
	})
	if err != nil {
		return false, fmt.Errorf("queue.Remove(%d): %w", h.HandleID(), err)
	}
	return removed, nil
}

// Contains reports whether h is queued.
func (q *Queue) Contains(h Handle) (bool, error) {
	if h == nil {
		return false, ErrNilHandle
	}
	var ok bool
	err := q.section.Do(func() {
		_, ok = q.index[h.HandleID()]
	})
	if err != nil {
		return false, fmt.Errorf("queue.Contains(%d): %w", h.HandleID(), err)
	}
	return ok, nil
}

// RemoveHead pops the oldest handle, or returns nil when the queue is empty.
func (q *Queue) RemoveHead() (Handle, error) {
	var h Handle
	err := q.section.Do(func() {
		front := q.order.Front()
		if front == nil {
			return
		}
		h = front.Value.(Handle)
		q.removeLocked(h.HandleID())
	})
	if err != nil {
		return nil, fmt.Errorf("queue.RemoveHead: %w", err)
	}
	return h, nil
}

// Len returns the number of queued handles.
func (q *Queue) Len() (int, error) {
	var n int
	err := q.section.Do(func() { n = q.order.Len() })
	if err != nil {
		return 0, fmt.Errorf("queue.Len: %w", err)
	}
	return n, nil
}

// Snapshot returns the queued handles, oldest first.
func (q *Queue) Snapshot() ([]Handle, error) {
	var out []Handle
	err := q.section.Do(func() {
		out = make([]Handle, 0, q.order.Len())
		for e := q.order.Front(); e != nil; e = e.Next() {
			out = append(out, e.Value.(Handle))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("queue.Snapshot: %w", err)
	}
	return out, nil
}

// Wait materializes every queued handle, oldest first, until the queue is
// empty. Handles queued while Wait runs are materialized too. It stops at the
// first error and returns the number of handles materialized before it.
func (q *Queue) Wait() (int, error) {
	n := 0
	for {
		h, err := q.RemoveHead()
		if err != nil {
			q.logger.LogQueueWait(context.Background(), n, err)
			return n, err
		}
		if h == nil {
			q.logger.LogQueueWait(context.Background(), n, nil)
			return n, nil
		}
		if err := h.Materialize(); err != nil {
			err = fmt.Errorf("queue.Wait: materialize %d: %w", h.HandleID(), err)
			q.logger.LogQueueWait(context.Background(), n, err)
			return n, err
		}
		n++
	}
}

// removeLocked deletes id; callers hold the section.
func (q *Queue) removeLocked(id uint64) bool {
	e, ok := q.index[id]
	if !ok {
		return false
	}
	q.order.Remove(e)
	delete(q.index, id)
	q.metrics.RecordQueueLen(q.order.Len())
	return true
}
