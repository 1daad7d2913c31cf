// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

// Strategy is the queuing policy a Pair consults when sizing writes and
// deciding whether to assert backpressure. A missing Size is treated as 1
// per item; a missing ShouldApplyBackpressure is treated as always false —
// see sizeOf and applyBackpressure.
type Strategy interface {
	// Size returns the cost of queuing arg. Only data operations are sized;
	// control operations (close, abort, cancel) always cost 0.
	Size(arg any) int
	// ShouldApplyBackpressure reports whether the writable side should
	// report "waiting" given the current total queue size.
	ShouldApplyBackpressure(queueSize int) bool
}

// SpaceReporter is an optional Strategy capability exposing remaining
// capacity. Writable.Space delegates to it when present.
type SpaceReporter interface {
	Space(queueSize int) int
}

// WindowUpdater is an optional Strategy capability notified when the
// readable side's advertised window changes.
type WindowUpdater interface {
	OnWindowUpdate(window int)
}

// sizeOf applies the "missing Size means 1" default from spec §4.A.
func sizeOf(s Strategy, arg any) int {
	if s == nil {
		return 1
	}
	return s.Size(arg)
}

// applyBackpressure applies the "missing ShouldApplyBackpressure means
// false" default from spec §4.A.
func applyBackpressure(s Strategy, queueSize int) bool {
	if s == nil {
		return false
	}
	return s.ShouldApplyBackpressure(queueSize)
}

// NoBackpressure never asserts backpressure; every item sizes as 1. This is
// the strategy substituted for a nil/omitted Strategy at the constructor
// boundary (spec §6.1).
type NoBackpressure struct{}

func (NoBackpressure) Size(any) int                     { return 1 }
func (NoBackpressure) ShouldApplyBackpressure(int) bool { return false }

// ApplyBackpressureWhenNonEmpty asserts backpressure as soon as the queue is
// non-empty — at-most-one-in-flight semantics.
type ApplyBackpressureWhenNonEmpty struct{}

func (ApplyBackpressureWhenNonEmpty) Size(any) int { return 1 }
func (ApplyBackpressureWhenNonEmpty) ShouldApplyBackpressure(queueSize int) bool {
	return queueSize > 0
}

// Adjustable is a window-based strategy: backpressure is asserted once the
// queue size reaches the current window, and Space reports the remaining
// credit. SizeFunc customizes per-item cost (byte length, string length,
// count, ...); a nil SizeFunc defaults to 1 per item.
type Adjustable struct {
	window  int
	SizeFunc func(arg any) int
}

// NewAdjustable constructs an Adjustable strategy with the given initial
// window and an optional sizing function.
func NewAdjustable(window int, sizeFunc func(arg any) int) *Adjustable {
	return &Adjustable{window: window, SizeFunc: sizeFunc}
}

func (a *Adjustable) Size(arg any) int {
	if a.SizeFunc == nil {
		return 1
	}
	return a.SizeFunc(arg)
}

func (a *Adjustable) ShouldApplyBackpressure(queueSize int) bool {
	return queueSize >= a.window
}

func (a *Adjustable) Space(queueSize int) int {
	space := a.window - queueSize
	if space < 0 {
		return 0
	}
	return space
}

func (a *Adjustable) OnWindowUpdate(window int) {
	a.window = window
}

// AdjustableByteLength is an Adjustable strategy sized by byte slice length,
// for byte-buffer producers such as samples/bufpool.
func AdjustableByteLength(window int) *Adjustable {
	return NewAdjustable(window, func(arg any) int {
		b, ok := arg.([]byte)
		if !ok {
			return 1
		}
		return len(b)
	})
}

// AdjustableStringLength is an Adjustable strategy sized by string length.
func AdjustableStringLength(window int) *Adjustable {
	return NewAdjustable(window, func(arg any) int {
		s, ok := arg.(string)
		if !ok {
			return 1
		}
		return len(s)
	})
}
