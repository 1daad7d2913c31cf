// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

import (
	"testing"
	"time"
)

func TestNewDefaultsNilStrategy(t *testing.T) {
	w, r := New(nil)
	if w.State() != WritableWritableState {
		t.Fatalf("writable state = %v, want writable", w.State())
	}
	if r.State() != ReadableWaitingState {
		t.Fatalf("readable state = %v, want waiting", r.State())
	}
}

func TestWriteThenReadFIFO(t *testing.T) {
	w, r := New(nil)
	st1, err := w.Write("a")
	if err != nil {
		t.Fatalf("write 1: %v", err)
	}
	st2, err := w.Write("b")
	if err != nil {
		t.Fatalf("write 2: %v", err)
	}
	if r.State() != ReadableReadableState {
		t.Fatalf("readable state = %v, want readable", r.State())
	}
	op1, err := r.Read()
	if err != nil || op1.Argument != "a" {
		t.Fatalf("read 1 = %+v, err %v", op1, err)
	}
	op2, err := r.Read()
	if err != nil || op2.Argument != "b" {
		t.Fatalf("read 2 = %+v, err %v", op2, err)
	}
	if r.State() != ReadableWaitingState {
		t.Fatalf("readable state after drain = %v, want waiting", r.State())
	}
	if err := op1.Complete("done-a"); err != nil {
		t.Fatalf("complete op1: %v", err)
	}
	if st1.State() != StatusCompleted || st1.Result() != "done-a" {
		t.Fatalf("st1 = %v/%v", st1.State(), st1.Result())
	}
	if err := op2.Error("failed-b"); err != nil {
		t.Fatalf("error op2: %v", err)
	}
	if st2.State() != StatusErrored || st2.Result() != "failed-b" {
		t.Fatalf("st2 = %v/%v", st2.State(), st2.Result())
	}
}

func TestReadWhenNotReadyFails(t *testing.T) {
	_, r := New(nil)
	if _, err := r.Read(); err != ErrNotReady {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
}

func TestCloseIsTerminalToWrites(t *testing.T) {
	w, r := New(nil)
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := w.Write("late"); err != ErrClosed {
		t.Fatalf("write after close err = %v, want ErrClosed", err)
	}
	if err := w.Close(); err != ErrClosed {
		t.Fatalf("double close err = %v, want ErrClosed", err)
	}
	op, err := r.Read()
	if err != nil || op.Type != OpClose {
		t.Fatalf("read close op = %+v, err %v", op, err)
	}
	if r.State() != ReadableDrained {
		t.Fatalf("readable state = %v, want drained", r.State())
	}
}

func TestAbortDropsQueueAndErrorsStatuses(t *testing.T) {
	w, r := New(nil)
	st, err := w.Write("queued")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Abort("boom"); err != nil {
		t.Fatalf("abort: %v", err)
	}
	if st.State() != StatusErrored || st.Result() != "boom" {
		t.Fatalf("status = %v/%v, want errored/boom", st.State(), st.Result())
	}
	if w.State() != WritableAborted {
		t.Fatalf("writable state = %v, want aborted", w.State())
	}
	if r.State() != ReadableAbortedState {
		t.Fatalf("readable state = %v, want aborted", r.State())
	}
	op, ok := r.AbortOperation()
	if !ok || op.Argument != "boom" {
		t.Fatalf("AbortOperation = %+v, %v", op, ok)
	}
	if _, err := w.Write("after"); err != ErrAborted {
		t.Fatalf("write after abort err = %v, want ErrAborted", err)
	}
}

func TestCancelAbsorbsSubsequentAbort(t *testing.T) {
	w, r := New(nil)
	st, err := w.Write("queued")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := r.Cancel("reader quit"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if st.State() != StatusErrored || st.Result() != "reader quit" {
		t.Fatalf("status = %v/%v", st.State(), st.Result())
	}
	if w.State() != WritableCancelled {
		t.Fatalf("writable state = %v, want cancelled", w.State())
	}
	// Open question (i): cancellation is absorbing — Abort no longer
	// succeeds once the reader has cancelled.
	if err := w.Abort("too late"); err != ErrCancelled {
		t.Fatalf("abort-after-cancel err = %v, want ErrCancelled", err)
	}
	reason, ok := w.CancelReason()
	if !ok || reason != "reader quit" {
		t.Fatalf("CancelReason = %v, %v", reason, ok)
	}
}

func TestCancelOnDrainedReadableFails(t *testing.T) {
	w, r := New(nil)
	_ = w.Close()
	_, _ = r.Read()
	if err := r.Cancel("too late"); err != ErrWrongState {
		t.Fatalf("cancel after drain err = %v, want ErrWrongState", err)
	}
}

func TestSetWindowDrivesBackpressure(t *testing.T) {
	w, r := New(AdjustableStringLength(2))
	if err := r.SetWindow(2); err != nil {
		t.Fatalf("set window: %v", err)
	}
	if _, err := w.Write("a"); err != nil {
		t.Fatalf("write 1: %v", err)
	}
	if w.State() != WritableWritableState {
		t.Fatalf("writable state after first write = %v, want writable", w.State())
	}
	if _, err := w.Write("b"); err != nil {
		t.Fatalf("write 2: %v", err)
	}
	if w.State() != WritableWaitingState {
		t.Fatalf("writable state at window = %v, want waiting", w.State())
	}
	if err := r.SetWindow(4); err != nil {
		t.Fatalf("grow window: %v", err)
	}
	if w.State() != WritableWritableState {
		t.Fatalf("writable state after window growth = %v, want writable", w.State())
	}
}

func TestStrategyPanicAbortsPair(t *testing.T) {
	w, r := New(panicStrategy{})
	if _, err := w.Write("x"); err != ErrAborted {
		t.Fatalf("write with panicking strategy err = %v, want ErrAborted", err)
	}
	if w.State() != WritableAborted {
		t.Fatalf("writable state = %v, want aborted", w.State())
	}
	if r.State() != ReadableAbortedState {
		t.Fatalf("readable state = %v, want aborted", r.State())
	}
}

func TestWritableReadyTogglesWithBackpressure(t *testing.T) {
	w, r := New(ApplyBackpressureWhenNonEmpty{})
	select {
	case <-w.Ready():
	default:
		t.Fatal("writable should start ready")
	}
	if _, err := w.Write("x"); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-w.Ready():
		t.Fatal("writable ready fired while queue non-empty")
	default:
	}
	op, err := r.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	_ = op.Complete(nil)
	select {
	case <-w.Ready():
	case <-time.After(time.Second):
		t.Fatal("writable did not become ready after drain")
	}
}
