// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bcq_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/bcq"
	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// =============================================================================
// Single Goroutine
// =============================================================================

func BenchmarkQueue_SingleOp(b *testing.B) {
	q := bcq.MustNew[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkChannel_SingleOp(b *testing.B) {
	ch := make(chan int, 1024)

	b.ResetTimer()
	for i := range b.N {
		ch <- i
		<-ch
	}
}

// BenchmarkQueue_Capacity compares power-of-2 and odd capacities, since
// slot indexing uses a modulo rather than a mask.
func BenchmarkQueue_Capacity(b *testing.B) {
	for _, capacity := range []int{1, 7, 64, 1000, 1024} {
		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			q := bcq.MustNew[int](capacity)
			b.ResetTimer()
			for i := range b.N {
				v := i
				q.Enqueue(&v)
				q.Dequeue()
			}
		})
	}
}

// =============================================================================
// SPSC: 1 Producer → 1 Consumer
// =============================================================================

func BenchmarkQueue_SPSC(b *testing.B) {
	q := bcq.MustNew[int](1024)
	var done atomic.Bool
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for !done.Load() {
			q.Dequeue()
		}
	}()

	b.ResetTimer()
	for i := range b.N {
		v := i
		for q.Enqueue(&v) != nil {
		}
	}
	b.StopTimer()
	done.Store(true)
	<-consumerDone
}

// BenchmarkShardedRing_SPSC is go-lock-free-ring with 1 shard, for
// comparison.
func BenchmarkShardedRing_SPSC(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 1)
	var done atomic.Bool
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for !done.Load() {
			r.TryRead()
		}
	}()

	b.ResetTimer()
	for i := range b.N {
		for !r.Write(0, i) {
		}
	}
	b.StopTimer()
	done.Store(true)
	<-consumerDone
}

// =============================================================================
// MPMC: RunParallel goroutines, each both producing and consuming
// =============================================================================

func BenchmarkQueue_MPMC(b *testing.B) {
	q := bcq.MustNew[int](1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			v := i
			for q.Enqueue(&v) != nil {
				q.Dequeue()
			}
			q.Dequeue()
			i++
		}
	})
}

func BenchmarkChannel_MPMC(b *testing.B) {
	ch := make(chan int, 1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			ch <- i
			<-ch
			i++
		}
	})
}
