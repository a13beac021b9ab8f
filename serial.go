// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import "code.hybscloud.com/atomix"

// ProcessID is a monotonically increasing process identifier.
// Each spawned process, including those behind futures, takes the next value.
type ProcessID = uint32

// counter is the global monotonic counter for process IDs.
var counter atomix.Uint32

// nextProcessID returns the next monotonically increasing process ID.
func nextProcessID() ProcessID {
	return counter.Add(1)
}
