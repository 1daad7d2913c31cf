// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

import "errors"

// Precondition failures, raised synchronously to the caller per spec §7.
var (
	// ErrNotReady is returned by Read when the readable side is not in the
	// readable state, and by the effect package's consumer dispatch as the
	// would-block signal to retry.
	ErrNotReady = errors.New("opstream: not ready")
	// ErrClosed is returned by Write/Close when the writable side already
	// transitioned to closed.
	ErrClosed = errors.New("opstream: writable side closed")
	// ErrAborted is returned by Write/Close when the writable side already
	// transitioned to aborted.
	ErrAborted = errors.New("opstream: writable side aborted")
	// ErrCancelled is returned by the writable side's mutators (Write,
	// Close, Abort) attempted after the reader cancelled the stream;
	// cancellation is absorbing.
	ErrCancelled = errors.New("opstream: stream cancelled")
	// ErrAlreadyTerminal is returned by a second call to Operation.Complete
	// or Operation.Error on the same operation.
	ErrAlreadyTerminal = errors.New("opstream: operation already completed")
	// ErrWrongState is returned when a mutator's state precondition is not
	// met and no more specific sentinel applies (e.g. Cancel on a drained
	// readable side, or Window on an already-cancelled readable side).
	ErrWrongState = errors.New("opstream: precondition not met for current state")
	// ErrPipeClosed is the termination reason the pipe engine uses to error
	// any still-pending upstream statuses once its own src/dst close down
	// (spec §4.E "At-most-once linkage").
	ErrPipeClosed = errors.New("opstream: pipe terminated")
)
