// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bcq

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// pad is cache line padding to prevent false sharing.
type pad = cpu.CacheLinePad

// cacheLineSize is the cache line size of the target architecture.
const cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// padWord is padding to fill the cache line after an 8-byte word.
type padWord [cacheLineSize - 8]byte
