// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package facade provides the high-level readable-side boundary over
// opstream.Readable: exclusive reader leasing plus read/cancel shortcuts,
// for callers that want a single consumer of record rather than raw access
// to the Readable half (spec §4.F).
package facade

import (
	"sync"

	opstream "code.hybscloud.com/opstream"
)

// Stream owns a Readable half and grants exclusive, revocable read access
// to it via GetReader. It consumes the pair purely through the §4.B
// contracts and owns no additional protocol of its own.
type Stream struct {
	r *opstream.Readable

	mu     sync.Mutex
	leased bool
}

// New wraps r for façade-style access.
func New(r *opstream.Readable) *Stream {
	return &Stream{r: r}
}

// ErrAlreadyLeased is returned by GetReader when a Reader has already been
// handed out and not yet released.
var ErrAlreadyLeased = errOnce("facade: reader already leased")

type errOnce string

func (e errOnce) Error() string { return string(e) }

// Reader is the exclusive lease returned by GetReader. Release returns the
// lease so a later caller may obtain it again.
type Reader struct {
	s *Stream
	r *opstream.Readable
}

// GetReader claims exclusive access to the underlying Readable, failing if
// another Reader is currently leased.
func (s *Stream) GetReader() (*Reader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.leased {
		return nil, ErrAlreadyLeased
	}
	s.leased = true
	return &Reader{s: s, r: s.r}, nil
}

// Release gives up the exclusive lease, allowing a subsequent GetReader to
// succeed.
func (rd *Reader) Release() {
	rd.s.mu.Lock()
	defer rd.s.mu.Unlock()
	rd.s.leased = false
}

// Read is a shortcut for the underlying Readable.Read.
func (rd *Reader) Read() (*opstream.Operation, error) {
	return rd.r.Read()
}

// Cancel is a shortcut for the underlying Readable.Cancel.
func (rd *Reader) Cancel(reason any) error {
	return rd.r.Cancel(reason)
}

// Ready exposes the underlying Readable's ready notification.
func (rd *Reader) Ready() <-chan struct{} { return rd.r.Ready() }

// Errored exposes the underlying Readable's errored notification.
func (rd *Reader) Errored() <-chan struct{} { return rd.r.Errored() }

// State exposes the underlying Readable's current state.
func (rd *Reader) State() opstream.ReadableState { return rd.r.State() }
