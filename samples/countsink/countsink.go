// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package countsink is a minimal operation-stream consumer that counts
// bytes whose value is 1 across every []byte or string data operation it
// receives, for use as a pipe destination (spec §8 scenario S5) or a
// direct consumer (S6).
package countsink

import (
	"sync"

	opstream "code.hybscloud.com/opstream"
)

// Sink owns a fresh pair, drains its own readable half in the background,
// and exposes the writable half for a caller (or opstream.Run) to write
// into.
type Sink struct {
	w *opstream.Writable
	r *opstream.Readable

	mu    sync.Mutex
	count int

	done chan struct{}
}

// New starts a Sink and its drain loop.
func New() *Sink {
	w, r := opstream.New(nil)
	s := &Sink{w: w, r: r, done: make(chan struct{})}
	go s.drain()
	return s
}

// Writable returns the half callers write into (or pass to opstream.Run as
// the pipe destination).
func (s *Sink) Writable() *opstream.Writable { return s.w }

// Count returns the running total of 1-valued bytes seen so far, safe to
// call concurrently with the drain loop.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Done resolves once the sink has observed close or abort.
func (s *Sink) Done() <-chan struct{} { return s.done }

func (s *Sink) drain() {
	defer close(s.done)
	for {
		switch s.r.State() {
		case opstream.ReadableReadableState:
			op, err := s.r.Read()
			if err != nil {
				continue
			}
			switch op.Type {
			case opstream.OpData:
				s.mu.Lock()
				s.count += countOnes(op.Argument)
				s.mu.Unlock()
				_ = op.Complete(nil)
			case opstream.OpClose:
				_ = op.Complete(nil)
				return
			}
		case opstream.ReadableAbortedState:
			return
		default:
			<-s.r.Ready()
		}
	}
}

func countOnes(arg any) int {
	switch v := arg.(type) {
	case []byte:
		n := 0
		for _, b := range v {
			if b == 1 {
				n++
			}
		}
		return n
	case string:
		n := 0
		for _, b := range []byte(v) {
			if b == 1 {
				n++
			}
		}
		return n
	default:
		return 0
	}
}
