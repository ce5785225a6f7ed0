// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package bcq

// RaceEnabled is true when the race detector is active.
// Cursors and slot states are instrumented sync/atomic words in this
// build, so concurrent tests run under the detector as well.
const RaceEnabled = true
