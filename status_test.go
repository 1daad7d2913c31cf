// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

import (
	"testing"
	"time"
)

func TestSignalFireIdempotent(t *testing.T) {
	s := newSignal(false)
	select {
	case <-s.Wait():
		t.Fatal("signal fired before Fire")
	default:
	}
	s.Fire()
	s.Fire() // must not panic on double close
	select {
	case <-s.Wait():
	default:
		t.Fatal("signal did not fire")
	}
}

func TestSignalResetRearms(t *testing.T) {
	s := newSignal(true)
	<-s.Wait()
	s.Reset()
	select {
	case <-s.Wait():
		t.Fatal("signal fired immediately after reset")
	default:
	}
	s.Fire()
	select {
	case <-s.Wait():
	default:
		t.Fatal("signal did not re-fire after reset")
	}
}

func TestStatusTransitionOnce(t *testing.T) {
	st := newStatus()
	if st.State() != StatusWaiting {
		t.Fatalf("new status state = %v, want waiting", st.State())
	}
	if err := st.transition(StatusCompleted, 42); err != nil {
		t.Fatalf("first transition: %v", err)
	}
	if st.State() != StatusCompleted || st.Result() != 42 {
		t.Fatalf("state=%v result=%v", st.State(), st.Result())
	}
	if err := st.transition(StatusErrored, "boom"); err != ErrAlreadyTerminal {
		t.Fatalf("second transition err = %v, want ErrAlreadyTerminal", err)
	}
}

func TestStatusReadyResolvesOnCancelled(t *testing.T) {
	st := newStatus()
	done := make(chan struct{})
	go func() {
		<-st.Ready()
		close(done)
	}()
	if err := st.transition(StatusCancelled, "reader gone"); err != nil {
		t.Fatalf("transition: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Ready did not resolve on cancelled transition")
	}
}
