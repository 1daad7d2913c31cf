// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"code.hybscloud.com/kont"

	opstream "code.hybscloud.com/opstream"
)

// Write is the producer effect for writing a value of type T.
// Perform(Write[T]{Value: v}) enqueues v and resolves to its Status.
type Write[T any] struct {
	kont.Phantom[*opstream.Status]
	Value T
}

// DispatchProducer handles Write on the writable half. Writable.Write never
// reports would-block — backpressure is advisory (spec §4.B) — so this
// either succeeds or fails the protocol outright.
func (w Write[T]) DispatchProducer(ctx *producerContext) (kont.Resumed, error) {
	return ctx.w.Write(w.Value)
}

// ReadResult is what a Read[T] effect resolves to: either a typed value
// from the next data operation, or Done=true if the stream closed first.
// Op is carried so the caller can Complete/Error it once processed.
type ReadResult[T any] struct {
	Op    *opstream.Operation
	Value T
	Done  bool
}

// Read is the consumer effect for receiving the next operation as type T.
// Perform(Read[T]{}) blocks (via backoff) until the readable side has
// something to dequeue.
type Read[T any] struct {
	kont.Phantom[ReadResult[T]]
}

// DispatchConsumer handles Read on the readable half. Returns
// opstream.ErrNotReady — the consumer handler's would-block signal — when
// the queue is currently empty.
func (Read[T]) DispatchConsumer(ctx *consumerContext) (kont.Resumed, error) {
	op, err := ctx.r.Read()
	if err != nil {
		return nil, err
	}
	if op.Type == opstream.OpClose {
		return ReadResult[T]{Op: op, Done: true}, nil
	}
	return ReadResult[T]{Op: op, Value: op.Argument.(T)}, nil
}

// Close is the producer effect for closing the writable half.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchProducer handles Close on the writable half.
func (Close) DispatchProducer(ctx *producerContext) (kont.Resumed, error) {
	if err := ctx.w.Close(); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Abort is the producer effect for aborting the stream with reason.
type Abort struct {
	kont.Phantom[struct{}]
	Reason any
}

// DispatchProducer handles Abort on the writable half.
func (a Abort) DispatchProducer(ctx *producerContext) (kont.Resumed, error) {
	if err := ctx.w.Abort(a.Reason); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Cancel is the consumer effect for cancelling the stream with reason.
type Cancel struct {
	kont.Phantom[struct{}]
	Reason any
}

// DispatchConsumer handles Cancel on the readable half.
func (c Cancel) DispatchConsumer(ctx *consumerContext) (kont.Resumed, error) {
	if err := ctx.r.Cancel(c.Reason); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}
