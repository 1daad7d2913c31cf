// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

// OpType identifies what a queued Operation carries.
type OpType int

const (
	// OpData carries a producer-supplied value.
	OpData OpType = iota
	// OpClose is the terminal "graceful end" operation. At most one OpClose
	// is ever enqueued per pair, and it is the only control operation that
	// enters the queue.
	OpClose
	// OpAbort is the terminal "producer-initiated failure" operation. It
	// never sits in the queue — see Writable.Abort — but is the Type of the
	// operation returned by Readable.AbortOperation.
	OpAbort
	// OpCancel is the terminal "consumer-initiated failure" signal. Like
	// OpAbort, it is never queued; it is surfaced via Readable.Cancel
	// short-circuiting the pair directly.
	OpCancel
)

func (t OpType) String() string {
	switch t {
	case OpData:
		return "data"
	case OpClose:
		return "close"
	case OpAbort:
		return "abort"
	case OpCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Operation is a single queued item: a type, an opaque argument, and the
// Status it advances when the reader completes or errors it. Control
// operations carry a Status too, but spec §3 calls it "non-observable" —
// nothing reads it back, since Writable.Close/Writable.Abort return no
// Status of their own.
type Operation struct {
	Type     OpType
	Argument any

	status *Status
}

// Complete transitions the operation's linked status to completed with the
// given result. Fails if the operation was already completed or errored.
func (op *Operation) Complete(result any) error {
	return op.status.transition(StatusCompleted, result)
}

// Error transitions the operation's linked status to errored with the
// given reason. Fails if the operation was already completed or errored.
func (op *Operation) Error(reason any) error {
	return op.status.transition(StatusErrored, reason)
}

// Status exposes the operation's linked completion handle. For control
// operations this is a sentinel never observed by the producer.
func (op *Operation) Status() *Status {
	return op.status
}
