// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bcq

// Interface is the combined producer-consumer view of a queue.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
type Interface[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// Hand a Producer to code that must only send, such as an event source
// that should not be able to steal work from the consumers.
type Producer[T any] interface {
	// Enqueue copies *elem into the queue (non-blocking).
	// Returns nil on success, ErrFull if the queue is full.
	// Safe for concurrent use by any number of goroutines.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value and its slot is cleared to allow
// garbage collection of referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element (non-blocking).
	// Returns (zero-value, ErrEmpty) if the queue is empty.
	// Safe for concurrent use by any number of goroutines.
	Dequeue() (T, error)
}

var _ Interface[int] = (*Queue[int])(nil)
