// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bcq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// ErrWouldBlock is a control flow signal, not a failure. ErrFull and
// ErrEmpty both wrap it, so callers that only care about "retry later"
// can test for it alone.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrFull is returned by Enqueue when Cap() elements are resident.
	// The caller decides whether to retry, back off, or drop.
	//
	// Example:
	//
	//	backoff := iox.Backoff{}
	//	for {
	//	    err := q.Enqueue(&item)
	//	    if err == nil {
	//	        backoff.Reset()
	//	        break
	//	    }
	//	    if bcq.IsWouldBlock(err) {
	//	        backoff.Wait()
	//	        continue
	//	    }
	//	    return err // ErrClosed
	//	}
	ErrFull = fmt.Errorf("bcq: queue full: %w", ErrWouldBlock)

	// ErrEmpty is returned by Dequeue when no element is available.
	ErrEmpty = fmt.Errorf("bcq: queue empty: %w", ErrWouldBlock)
)

var (
	// ErrInvalidCapacity is returned when a queue is created with a
	// capacity below 1.
	ErrInvalidCapacity = errors.New("bcq: invalid capacity")

	// ErrClosed is returned by Enqueue after Dispose.
	ErrClosed = errors.New("bcq: queue disposed")
)

// IsWouldBlock reports whether err indicates the operation would block.
// True for ErrFull and ErrEmpty.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil and ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
