// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"code.hybscloud.com/kont"

	opstream "code.hybscloud.com/opstream"
)

// RunProducer runs a producer protocol against a pre-created writable half.
// Producer effects never would-block, so this never backs off.
func RunProducer[R any](w *opstream.Writable, protocol kont.Eff[R]) R {
	h := producerHandler[R]{ctx: &producerContext{w: w}}
	return kont.Handle(protocol, h)
}

// RunConsumer runs a consumer protocol against a pre-created readable half.
// Blocks on opstream.ErrNotReady via adaptive backoff (iox.Backoff), without
// spawning goroutines or creating channels.
func RunConsumer[R any](r *opstream.Readable, protocol kont.Eff[R]) R {
	h := consumerHandler[R]{ctx: &consumerContext{r: r}}
	return kont.Handle(protocol, h)
}
