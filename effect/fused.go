// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"code.hybscloud.com/kont"
)

// WriteThen writes a value and then continues with next.
// Fuses Perform(Write[T]{Value: v}) + Then.
func WriteThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Write[T]{Value: v}), next)
}

// ReadBind reads the next operation as type T and passes it to f.
// Fuses Perform(Read[T]{}) + Bind.
func ReadBind[T, B any](f func(ReadResult[T]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Read[T]{}), f)
}

// CloseDone closes the writable half and returns a.
// Fuses Perform(Close{}) + Then + Pure.
func CloseDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close{}), kont.Pure(a))
}

// AbortDone aborts the writable half with reason and returns a.
// Fuses Perform(Abort{Reason: reason}) + Then + Pure.
func AbortDone[A any](reason any, a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Abort{Reason: reason}), kont.Pure(a))
}

// CancelDone cancels the readable half with reason and returns a.
// Fuses Perform(Cancel{Reason: reason}) + Then + Pure.
func CancelDone[A any](reason any, a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Cancel{Reason: reason}), kont.Pure(a))
}
