// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effect provides a continuation-effect API (code.hybscloud.com/kont)
// over the opstream package's Writable/Readable halves, for protocols
// written as straight-line code rather than explicit state machines.
//
// A producer protocol is built from Write, Close, and Abort effects and run
// with RunProducer; a consumer protocol is built from Read and Cancel and
// run with RunConsumer. Fused helpers (WriteThen, ReadBind, CloseDone,
// AbortDone, CancelDone) avoid the Perform+Bind/Then boilerplate for the
// common case, and Loop expresses a recursive protocol without manual
// trampolining.
//
// Consumer dispatch retries on opstream.ErrNotReady with an adaptive
// backoff (code.hybscloud.com/iox); producer dispatch never retries, since
// Writable's mutators only fail with a terminal-state error.
package effect
