// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

import (
	"testing"
	"testing/quick"
)

// TestPropertyFIFOOrderPreserved mirrors the teacher's property_test.go:
// instead of asserting on one hand-picked sequence, it checks the FIFO
// invariant (spec §3 "queue") holds for arbitrary write sequences.
func TestPropertyFIFOOrderPreserved(t *testing.T) {
	f := func(values []string) bool {
		w, r := New(nil)
		for _, v := range values {
			if _, err := w.Write(v); err != nil {
				return false
			}
		}
		for _, want := range values {
			op, err := r.Read()
			if err != nil || op.Argument != want {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyStatusLinkageAtMostOnce checks that every written operation's
// status transitions exactly once regardless of completion/error mix, and
// that a second transition always fails (spec §3 "at most once").
func TestPropertyStatusLinkageAtMostOnce(t *testing.T) {
	f := func(completions []bool) bool {
		w, r := New(nil)
		statuses := make([]*Status, 0, len(completions))
		for range completions {
			st, err := w.Write(nil)
			if err != nil {
				return false
			}
			statuses = append(statuses, st)
		}
		for _, complete := range completions {
			op, err := r.Read()
			if err != nil {
				return false
			}
			var terr error
			if complete {
				terr = op.Complete("ok")
			} else {
				terr = op.Error("no")
			}
			if terr != nil {
				return false
			}
			if op.Error("second") != ErrAlreadyTerminal {
				return false
			}
		}
		for i, complete := range completions {
			want := StatusCompleted
			if !complete {
				want = StatusErrored
			}
			if statuses[i].State() != want {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
