// SPDX-License-Identifier: MIT

package queue_test

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/giserh/RedisGraph/critical"
	"github.com/giserh/RedisGraph/metrics"
	"github.com/giserh/RedisGraph/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handle is a minimal queue.Handle that counts materializations.
type handle struct {
	id   uint64
	done atomic.Int32
	err  error
}

func (h *handle) HandleID() uint64 { return h.id }
func (h *handle) Materialize() error {
	h.done.Add(1)
	return h.err
}

// brokenBackend fails every lock attempt.
type brokenBackend struct{}

func (brokenBackend) Lock() error            { return errors.New("EINVAL") }
func (brokenBackend) Unlock() error          { return nil }
func (brokenBackend) TryLock() (bool, error) { return false, errors.New("EINVAL") }
func (brokenBackend) Kind() critical.Kind    { return critical.KindPortable }

func newQueue(t *testing.T, opts ...queue.Option) *queue.Queue {
	t.Helper()
	s, err := critical.New(critical.WithBackend(critical.NewMutex()))
	require.NoError(t, err)
	q, err := queue.New(append([]queue.Option{queue.WithSection(s)}, opts...)...)
	require.NoError(t, err)
	return q
}

func ids(t *testing.T, q *queue.Queue) []uint64 {
	t.Helper()
	snap, err := q.Snapshot()
	require.NoError(t, err)
	out := make([]uint64, len(snap))
	for i, h := range snap {
		out[i] = h.HandleID()
	}
	return out
}

func TestInsert_NoDuplicates(t *testing.T) {
	q := newQueue(t)
	a, b := &handle{id: 1}, &handle{id: 2}

	added, err := q.Insert(a)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = q.Insert(a)
	require.NoError(t, err)
	assert.False(t, added, "second insert of the same handle is a no-op")

	_, err = q.Insert(b)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, ids(t, q))

	ok, err := q.Contains(b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemove(t *testing.T) {
	q := newQueue(t)
	a, b, c := &handle{id: 1}, &handle{id: 2}, &handle{id: 3}
	for _, h := range []*handle{a, b, c} {
		_, err := q.Insert(h)
		require.NoError(t, err)
	}

	removed, err := q.Remove(b)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = q.Remove(b)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, []uint64{1, 3}, ids(t, q))
	n, err := q.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRemoveHead_FIFO(t *testing.T) {
	q := newQueue(t)
	for id := uint64(1); id <= 3; id++ {
		_, err := q.Insert(&handle{id: id})
		require.NoError(t, err)
	}
	for want := uint64(1); want <= 3; want++ {
		h, err := q.RemoveHead()
		require.NoError(t, err)
		require.NotNil(t, h)
		assert.Equal(t, want, h.HandleID())
	}
	h, err := q.RemoveHead()
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestNilHandle(t *testing.T) {
	q := newQueue(t)
	_, err := q.Insert(nil)
	require.ErrorIs(t, err, queue.ErrNilHandle)
	_, err = q.Remove(nil)
	require.ErrorIs(t, err, queue.ErrNilHandle)
	_, err = q.Contains(nil)
	require.ErrorIs(t, err, queue.ErrNilHandle)
}

func TestWait_MaterializesAll(t *testing.T) {
	col := &metrics.Basic{}
	q := newQueue(t, queue.WithMetrics(col))
	hs := []*handle{{id: 1}, {id: 2}, {id: 3}}
	for _, h := range hs {
		_, err := q.Insert(h)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), col.GetStats().QueueLen)

	n, err := q.Wait()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	for _, h := range hs {
		assert.Equal(t, int32(1), h.done.Load())
	}
	assert.Empty(t, ids(t, q))
	assert.Equal(t, int64(0), col.GetStats().QueueLen)
}

func TestWait_StopsAtFirstError(t *testing.T) {
	q := newQueue(t)
	bad := &handle{id: 2, err: errors.New("assemble failed")}
	for _, h := range []*handle{{id: 1}, bad, {id: 3}} {
		_, err := q.Insert(h)
		require.NoError(t, err)
	}

	n, err := q.Wait()
	require.ErrorIs(t, err, bad.err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []uint64{3}, ids(t, q))
}

func TestSyncFailure_SurfacesPanic(t *testing.T) {
	s, err := critical.New(critical.WithBackend(brokenBackend{}))
	require.NoError(t, err)
	q, err := queue.New(queue.WithSection(s))
	require.NoError(t, err)

	h := &handle{id: 7}
	added, err := q.Insert(h)
	require.ErrorIs(t, err, critical.ErrPanic)
	assert.False(t, added, "no success after a failed acquire")

	_, err = q.Remove(h)
	require.ErrorIs(t, err, critical.ErrPanic)
	_, err = q.Contains(h)
	require.ErrorIs(t, err, critical.ErrPanic)
	_, err = q.Len()
	require.ErrorIs(t, err, critical.ErrPanic)
	_, err = q.Snapshot()
	require.ErrorIs(t, err, critical.ErrPanic)
	_, err = q.Wait()
	require.ErrorIs(t, err, critical.ErrPanic)
}

func TestConcurrentInsertRemove_AllBackends(t *testing.T) {
	kinds := []critical.Kind{critical.KindNamed, critical.KindMutex, critical.KindNative, critical.KindPortable}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			var b critical.Backend
			if k == critical.KindNamed {
				b = critical.Named(t.Name())
			} else {
				var err error
				b, err = critical.NewBackend(k)
				require.NoError(t, err)
			}
			s, err := critical.New(critical.WithBackend(b))
			require.NoError(t, err)
			q, err := queue.New(queue.WithSection(s))
			require.NoError(t, err)

			const workers, perWorker = 8, 200
			var wg sync.WaitGroup
			wg.Add(workers)
			for w := 0; w < workers; w++ {
				go func(w int) {
					defer wg.Done()
					for i := 0; i < perWorker; i++ {
						h := &handle{id: uint64(w*perWorker + i)}
						_, err := q.Insert(h)
						assert.NoError(t, err)
						// insert twice to exercise duplicate suppression under contention
						_, err = q.Insert(h)
						assert.NoError(t, err)
						if i%2 == 1 {
							_, err = q.Remove(h)
							assert.NoError(t, err)
						}
					}
				}(w)
			}
			wg.Wait()

			got := ids(t, q)
			sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
			var want []uint64
			for w := 0; w < workers; w++ {
				for i := 0; i < perWorker; i += 2 {
					want = append(want, uint64(w*perWorker+i))
				}
			}
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
			assert.Equal(t, want, got)
		})
	}
}

func TestSingleThreadedQueue(t *testing.T) {
	q, err := queue.New(queue.WithMultithreaded(false))
	require.NoError(t, err)
	assert.False(t, q.Section().Multithreaded())

	added, err := q.Insert(&handle{id: 1})
	require.NoError(t, err)
	assert.True(t, added)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { queue.WithSection(nil) })
	assert.Panics(t, func() { queue.WithLogger(nil) })
	assert.Panics(t, func() { queue.WithMetrics(nil) })
}
