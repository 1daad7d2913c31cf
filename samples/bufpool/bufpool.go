// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bufpool is a fixed-size pool of reusable byte buffers, meant to
// sit on the producer side of an operation stream: Get blocks until a
// buffer is free, and the caller returns it to the pool once the stream
// has acknowledged the write (spec §5 "Shared resources" — a producer
// must not reuse a buffer before its status reaches a terminal state).
//
// The free list is a single-producer single-consumer queue: the sink side
// returns buffers (producer into the free list), the source side takes
// them (consumer from the free list) — the same shape the teacher's
// session transport queues have, repurposed here as a free list instead
// of a data channel.
package bufpool

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"

	opstream "code.hybscloud.com/opstream"
)

// Pool is a fixed pool of byte buffers, each bufSize bytes long (the size
// passed to New).
type Pool struct {
	free    lfq.SPSC[[]byte]
	bufSize int
}

// New allocates count buffers of bufSize bytes each and seeds the free
// list with them.
func New(count, bufSize int) *Pool {
	p := &Pool{bufSize: bufSize}
	p.free.Init(count)
	for i := 0; i < count; i++ {
		buf := make([]byte, bufSize)
		_ = p.free.Enqueue(&buf)
	}
	return p
}

// Get blocks, backing off adaptively, until a buffer is available.
func (p *Pool) Get() []byte {
	var bo iox.Backoff
	for {
		buf, err := p.free.Dequeue()
		if err == nil {
			return buf[:p.bufSize]
		}
		bo.Wait()
	}
}

// Put returns buf to the free list for reuse.
func (p *Pool) Put(buf []byte) {
	buf = buf[:p.bufSize]
	_ = p.free.Enqueue(&buf)
}

// ReturnOnComplete returns buf to the pool once st reaches a terminal
// state — the idiom a producer uses so a buffer is never recycled while
// the reader might still be holding it (spec §5).
func (p *Pool) ReturnOnComplete(buf []byte, st *opstream.Status) {
	go func() {
		<-st.Ready()
		p.Put(buf)
	}()
}
