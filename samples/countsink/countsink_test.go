// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package countsink_test

import (
	"testing"
	"time"

	opstream "code.hybscloud.com/opstream"
	"code.hybscloud.com/opstream/samples/countsink"
)

func TestCountSinkDirect(t *testing.T) {
	sink := countsink.New()
	w := sink.Writable()

	if _, err := w.Write([]byte{1, 0, 1, 2, 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write(string([]byte{0, 1, 3})); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case <-sink.Done():
	case <-time.After(time.Second):
		t.Fatal("sink did not finish draining")
	}
	if got := sink.Count(); got != 4 {
		t.Fatalf("count = %d, want 4", got)
	}
}

func TestCountSinkViaRun(t *testing.T) {
	srcW, srcR := opstream.New(nil)
	sink := countsink.New()

	if _, err := srcW.Write([]byte{1, 1, 0, 1, 5}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := srcW.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	done := make(chan struct{})
	go func() {
		opstream.Run(srcR, sink.Writable())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not terminate")
	}
	select {
	case <-sink.Done():
	case <-time.After(time.Second):
		t.Fatal("sink did not finish draining")
	}
	if got := sink.Count(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
}
