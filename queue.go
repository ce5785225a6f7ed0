// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bcq

import (
	"fmt"

	"code.hybscloud.com/spin"
)

// Queue is a CAS-based multi-producer multi-consumer bounded queue.
//
// Producers and consumers claim logical positions by CAS on the tail and
// head cursors. The cursors only grow; position p lives in slot
// p % capacity during lap p / capacity. Each slot carries a lap-tagged
// phase word, so claiming a position and publishing its element are
// separate steps:
//   - A consumer that claims a position whose element is still being
//     written waits for the writer's publish instead of reading early.
//   - A producer that claims a position whose previous-lap element is
//     still being read waits for the reader to hand the slot back.
//
// Capacity is exact (not rounded), and any capacity >= 1 is valid.
//
// Memory: capacity slots, each padded to a cache line.
type Queue[T any] struct {
	_        pad
	tail     word // Producer cursor
	_        pad
	head     word // Consumer cursor
	_        pad
	closed   word
	buffer   []slot[T]
	capacity uint64
	release  func(T)
}

// New creates a queue holding at most capacity elements.
// Returns ErrInvalidCapacity if capacity < 1.
func New[T any](capacity int) (*Queue[T], error) {
	return Configure[T](capacity).Build()
}

// MustNew is like New but panics if capacity < 1.
func MustNew[T any](capacity int) *Queue[T] {
	q, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

func newQueue[T any](opts options[T]) (*Queue[T], error) {
	if opts.capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, opts.capacity)
	}

	n := uint64(opts.capacity)
	return &Queue[T]{
		buffer:   make([]slot[T], n),
		capacity: n,
		release:  opts.release,
	}, nil
}

// Enqueue copies *elem into the queue.
//
// Returns ErrFull if the queue holds Cap() elements and ErrClosed after
// Dispose. On error *elem is left untouched and still belongs to the
// caller.
func (q *Queue[T]) Enqueue(elem *T) error {
	if q.closed.LoadAcquire() != 0 {
		return ErrClosed
	}

	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		head := q.head.LoadAcquire()
		if head > tail {
			// tail went stale while head was loaded
			sw.Once()
			continue
		}
		if tail-head >= q.capacity {
			return ErrFull
		}
		if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
			q.buffer[tail%q.capacity].put(tail/q.capacity, elem)
			return nil
		}
		sw.Once()
	}
}

// Dequeue removes and returns the oldest claimed element.
// Returns (zero-value, ErrEmpty) if no element has been claimed for
// enqueue past the head cursor.
func (q *Queue[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		tail := q.tail.LoadAcquire()
		if head >= tail {
			var zero T
			return zero, ErrEmpty
		}
		if q.head.CompareAndSwapAcqRel(head, head+1) {
			return q.buffer[head%q.capacity].take(head / q.capacity), nil
		}
		sw.Once()
	}
}

// Empty reports whether the queue was empty at the moment of the call.
//
// The answer is advisory: concurrent producers and consumers may
// invalidate it before Empty returns. Use the error from Dequeue as the
// authoritative signal.
func (q *Queue[T]) Empty() bool {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return head >= tail
}

// Full reports whether the queue was full at the moment of the call.
//
// The answer is advisory, like Empty. Use the error from Enqueue as the
// authoritative signal.
func (q *Queue[T]) Full() bool {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	return tail >= head && tail-head >= q.capacity
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}

// Dispose closes the queue and drains every resident element.
//
// Each drained element is passed exactly once to the release function
// configured with [Builder.Release]; elements already returned by
// Dequeue are never released. Dispose returns the number of elements
// drained. Subsequent Enqueue calls return ErrClosed, and a second
// Dispose drains nothing.
//
// All producers must have returned before Dispose is called. Concurrent
// consumers are allowed; they race the drain for the remaining elements.
func (q *Queue[T]) Dispose() int {
	q.closed.StoreRelease(1)

	n := 0
	for {
		elem, err := q.Dequeue()
		if err != nil {
			return n
		}
		if q.release != nil {
			q.release(elem)
		}
		n++
	}
}
