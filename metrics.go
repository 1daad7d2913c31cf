// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

// Metrics is an optional instrumentation hook for Run, reported on
// alongside (never instead of) the state Run already exposes — the core
// never lets observability influence control flow (spec §7). See
// cmd/opstreamdemo for a github.com/prometheus/client_golang-backed
// implementation.
type Metrics interface {
	// OpForwarded is called once per operation the pipe engine forwards
	// downstream (data or close).
	OpForwarded(t OpType)
	// BytesForwarded is called with the byte length of a forwarded data
	// operation's argument, when it is a []byte or string; 0 otherwise.
	BytesForwarded(n int)
	// QueueDepth reports the number of pending (unresolved) downstream
	// links the pipe engine is currently tracking.
	QueueDepth(n int)
}

// noopMetrics discards every observation; the default when Run is called
// without WithMetrics.
type noopMetrics struct{}

func (noopMetrics) OpForwarded(OpType) {}
func (noopMetrics) BytesForwarded(int) {}
func (noopMetrics) QueueDepth(int)     {}

func byteLength(arg any) int {
	switch v := arg.(type) {
	case []byte:
		return len(v)
	case string:
		return len(v)
	default:
		return 0
	}
}
