// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package opstream provides a bidirectional operation-stream primitive: a
// paired producer/consumer queue carrying data, close, abort, and cancel
// operations between a writable half and a readable half, with pluggable
// backpressure and per-operation completion status.
//
// # Architecture
//
//   - Transport: a single growable FIFO owned by a [Pair], shared by one
//     [Writable] and one [Readable] half-handle. [New] creates a pair.
//   - Backpressure: pluggable via [Strategy]; [NoBackpressure],
//     [ApplyBackpressureWhenNonEmpty], and [Adjustable] are provided.
//   - Completion: every [Writable.Write] returns a [Status] advanced by the
//     reader calling [Operation.Complete] or [Operation.Error] on the
//     dequeued [Operation].
//   - Composition: [Run] pipes a [Readable] into a [Writable], propagating
//     data, close, abort, and cancellation, and linking downstream
//     completion back onto the upstream status.
//
// # Execution model
//
// All composite state transitions on a pair are serialized by a single
// mutex; there is no lock-free fast path and no parallel dispatch of the
// pair's own transitions. Suspension points are one-shot, re-armable gates
// ([Writable.Ready], [Readable.Ready], [Writable.Cancelled],
// [Readable.Errored], [Status.Ready]) — callers select over them rather
// than poll.
//
// # Integration
//
//   - Direct: call [Writable.Write]/[Readable.Read] and complete/error each
//     dequeued operation.
//   - Piped: [Run] couples a readable half to a writable half until one
//     side terminates.
//   - Effectful: [code.hybscloud.com/opstream/effect] composes producer and
//     consumer programs as [code.hybscloud.com/kont] effects.
//
// # Example
//
//	w, r := opstream.New(opstream.ApplyBackpressureWhenNonEmpty{})
//	status, _ := w.Write("hello")
//	op, _ := r.Read()
//	_ = op.Complete("world")
//	<-status.Ready()
package opstream
