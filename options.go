// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bcq

// options configures queue creation.
type options[T any] struct {
	// Exact number of slots
	capacity int

	// Called by Dispose for every resident element
	release func(T)
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Plain queue
//	q, err := bcq.Configure[Event](1024).Build()
//
//	// Queue that returns pooled buffers still resident at Dispose
//	q := bcq.Configure[[]byte](256).Release(pool.Put).MustBuild()
type Builder[T any] struct {
	opts options[T]
}

// Configure creates a queue builder with the given capacity.
//
// Capacity is used as given; it is not rounded. Validation happens in
// Build.
func Configure[T any](capacity int) *Builder[T] {
	return &Builder[T]{opts: options[T]{capacity: capacity}}
}

// Release sets the function Dispose calls for each element still
// resident in the queue. A nil fn drops resident elements silently.
func (b *Builder[T]) Release(fn func(T)) *Builder[T] {
	b.opts.release = fn
	return b
}

// Build creates the queue.
// Returns ErrInvalidCapacity if the capacity is below 1.
func (b *Builder[T]) Build() (*Queue[T], error) {
	return newQueue(b.opts)
}

// MustBuild is like Build but panics on invalid configuration.
func (b *Builder[T]) MustBuild() *Queue[T] {
	q, err := b.Build()
	if err != nil {
		panic(err)
	}
	return q
}
