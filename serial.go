// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing pair identifier, used for log and
// trace correlation (it plays no role in the protocol itself).
type Serial = uint32

// serialCounter is the process-wide monotonic counter for pair serials,
// mirroring the teacher's nextSerial pattern.
var serialCounter atomix.Uint32

func nextSerial() Serial {
	return serialCounter.Add(1)
}
