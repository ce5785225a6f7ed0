// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package bcq

import "sync/atomic"

// word is the 64-bit atomic used for cursors and slot states.
//
// Under the race detector atomix accesses look like plain memory
// accesses, so the detector cannot see the edge between a slot's Ready
// store and the reader's load. sync/atomic is instrumented; every
// ordering collapses to sequentially consistent here.
type word struct {
	v atomic.Uint64
}

func (w *word) LoadRelaxed() uint64 { return w.v.Load() }

func (w *word) LoadAcquire() uint64 { return w.v.Load() }

func (w *word) StoreRelaxed(v uint64) { w.v.Store(v) }

func (w *word) StoreRelease(v uint64) { w.v.Store(v) }

func (w *word) CompareAndSwapAcqRel(old, val uint64) bool {
	return w.v.CompareAndSwap(old, val)
}
