// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"

	opstream "code.hybscloud.com/opstream"
)

// producerContext holds the writable half a producer protocol runs against.
type producerContext struct {
	w *opstream.Writable
}

// consumerContext holds the readable half a consumer protocol runs against.
type consumerContext struct {
	r *opstream.Readable
}

// producerDispatcher is the structural interface for producer-side effects.
type producerDispatcher interface {
	DispatchProducer(ctx *producerContext) (kont.Resumed, error)
}

// consumerDispatcher is the structural interface for consumer-side effects.
type consumerDispatcher interface {
	DispatchConsumer(ctx *consumerContext) (kont.Resumed, error)
}

// producerHandler implements kont.Handler for producer effects. Writable
// mutators never would-block, so any dispatch error is fatal to the
// protocol rather than something to retry.
type producerHandler[R any] struct {
	ctx *producerContext
}

func (h producerHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(producerDispatcher)
	if !ok {
		panic("effect: unhandled producer effect")
	}
	v, err := pop.DispatchProducer(h.ctx)
	if err != nil {
		panic(err)
	}
	return v, true
}

// consumerHandler implements kont.Handler for consumer effects, backing off
// on opstream.ErrNotReady the way the teacher's sessionHandler backs off on
// iox.ErrWouldBlock.
type consumerHandler[R any] struct {
	ctx *consumerContext
}

func (h consumerHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(consumerDispatcher)
	if !ok {
		panic("effect: unhandled consumer effect")
	}
	return dispatchConsumerWait(h.ctx, cop), true
}

// dispatchConsumerWait blocks until DispatchConsumer succeeds, backing off
// on opstream.ErrNotReady with iox.Backoff.
func dispatchConsumerWait(ctx *consumerContext, cop consumerDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := cop.DispatchConsumer(ctx)
		if err == nil {
			return v
		}
		if err != opstream.ErrNotReady {
			panic(err)
		}
		bo.Wait()
	}
}
