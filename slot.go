// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bcq

import "code.hybscloud.com/spin"

// Slot phases. A slot state word packs the lap that owns the slot in
// the upper 62 bits and the phase in the low 2 bits:
//
//	lap|Empty → lap|Writing → lap|Ready → lap|Reading → (lap+1)|Empty
//
// The lap tag is the slot's sequence number. It keeps a writer of lap
// L+1 from touching a slot whose lap L element has not been read yet,
// which is the ABA guard across wraparound.
const (
	phaseEmpty   = 0
	phaseWriting = 1
	phaseReady   = 2
	phaseReading = 3

	phaseBits = 2
	phaseMask = 1<<phaseBits - 1
)

type slot[T any] struct {
	state word
	data  T
	_     padWord
}

// stateOf returns the state word for lap in the given phase.
func stateOf(lap uint64, phase uint64) uint64 {
	return lap<<phaseBits | phase
}

// lapOf returns the lap tag of a state word.
func lapOf(state uint64) uint64 {
	return state >> phaseBits
}

// phaseOf returns the phase of a state word.
func phaseOf(state uint64) uint64 {
	return state & phaseMask
}

// await spins until the slot reaches want.
// The caller has already claimed its position, so want is reached as
// soon as the slot's current holder finishes: for a writer, the reader
// of the previous lap; for a reader, the writer of the same lap.
func (s *slot[T]) await(want uint64) {
	if s.state.LoadAcquire() == want {
		return
	}
	sw := spin.Wait{}
	for s.state.LoadAcquire() != want {
		sw.Once()
	}
}

// put moves elem into the slot and publishes it for lap.
// The caller owns position lap*capacity+index for writing.
func (s *slot[T]) put(lap uint64, elem *T) {
	s.await(stateOf(lap, phaseEmpty))
	s.state.StoreRelaxed(stateOf(lap, phaseWriting))
	s.data = *elem
	s.state.StoreRelease(stateOf(lap, phaseReady))
}

// take moves the lap element out of the slot and hands the slot to the
// writer of lap+1.
func (s *slot[T]) take(lap uint64) T {
	s.await(stateOf(lap, phaseReady))
	s.state.StoreRelaxed(stateOf(lap, phaseReading))
	elem := s.data
	var zero T
	s.data = zero
	s.state.StoreRelease(stateOf(lap+1, phaseEmpty))
	return elem
}
