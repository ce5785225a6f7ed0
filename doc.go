// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bcq provides a bounded, lock-free, multi-producer
// multi-consumer FIFO queue.
//
// A [Queue] has a fixed capacity chosen at construction. Enqueue and
// Dequeue never block and never take a lock: when the queue is full or
// empty they return immediately and the caller picks the policy (retry,
// back off, drop).
//
// # Quick Start
//
//	q, err := bcq.New[Event](1024)
//	if err != nil {
//	    return err // ErrInvalidCapacity
//	}
//
//	// Enqueue (non-blocking)
//	ev := Event{ID: 1}
//	if err := q.Enqueue(&ev); bcq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	ev, err = q.Dequeue()
//	if bcq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Retry With Backoff
//
// The queue has no blocking or timed variants. Callers wanting to wait
// wrap the call in a backoff loop:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&ev) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Algorithm
//
// Two logical cursors, head and tail, count how many positions have been
// claimed for dequeue and enqueue. They only grow, so full and empty are
// unambiguous (tail-head == capacity, head == tail) and no slot is
// reserved as a sentinel. Position p maps to slot p % capacity.
//
// Each slot cycles through four phases tagged with the lap p / capacity:
//
//	Empty → Writing → Ready → Reading → Empty (next lap)
//
// A producer first claims a position with a CAS on tail, then writes the
// element and publishes Ready with a release store. A consumer claims a
// position with a CAS on head, then waits for Ready with an acquire load
// before reading. Separating claim from publish means a consumer never
// observes a position that has been claimed but not yet written.
//
// # Ordering
//
// Elements are delivered in tail-claim order: if Enqueue A claims its
// position before Enqueue B, A is dequeued before B. With one producer
// and one consumer this is plain FIFO. Across producers the order is
// the order of successful CAS on tail, not the order in which their
// copies complete.
//
// # Progress
//
// Claiming is lock-free: a failed CAS means another goroutine claimed a
// position. After a successful claim a goroutine may spin while the
// goroutine holding the same slot one step ahead finishes its copy. If
// that goroutine is descheduled mid-copy the spinner waits for it. This
// is expected to resolve within a scheduler quantum; it is not a
// real-time guarantee.
//
// # Advisory Queries
//
// [Queue.Empty] and [Queue.Full] are snapshots. Concurrent operations can
// invalidate them before they return, so never use them as the only
// gate before an Enqueue or Dequeue; use the returned error instead.
//
// # Disposal
//
// Go has no destructors. [Queue.Dispose] stands in for destruction: it
// closes the queue and hands every resident element, exactly once, to
// the release function set with [Builder.Release]:
//
//	q := bcq.Configure[*Buffer](64).Release(pool.Put).MustBuild()
//	// ...
//	producers.Wait()
//	q.Dispose() // buffers still queued go back to the pool
//
// # Error Handling
//
// ErrFull and ErrEmpty wrap [ErrWouldBlock] (an alias of
// [iox.ErrWouldBlock]). They are control flow signals, not failures:
//
//	if bcq.IsWouldBlock(err) {
//	    // Full or empty - retry later
//	}
//
// ErrInvalidCapacity and ErrClosed are real errors.
//
// # Race Detection
//
// Under -race the cursors and slot phases use sync/atomic so the
// detector can see the publish edges. [RaceEnabled] reports the mode.
//
// # Dependencies
//
// This package uses:
//   - [code.hybscloud.com/atomix] for atomic primitives with explicit memory ordering
//   - [code.hybscloud.com/spin] for spin-wait primitives
//   - [code.hybscloud.com/iox] for semantic errors (ErrWouldBlock)
//   - [golang.org/x/sys/cpu] for cache line padding
package bcq
