// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package bcq

import "code.hybscloud.com/atomix"

// word is the 64-bit atomic used for cursors and slot states.
type word = atomix.Uint64
