// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opstream

import (
	"context"
	"reflect"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Run call.
type Option func(*runConfig)

type runConfig struct {
	logger  zerolog.Logger
	tracer  trace.Tracer
	metrics Metrics
}

// WithLogger attaches a zerolog.Logger that Run uses for diagnostic events
// (abort, cancel, strategy failure). Purely observational.
func WithLogger(l zerolog.Logger) Option {
	return func(c *runConfig) { c.logger = l }
}

// WithTracer attaches an OpenTelemetry tracer; Run opens one span per call
// and records terminal transitions as span events.
func WithTracer(t trace.Tracer) Option {
	return func(c *runConfig) { c.tracer = t }
}

// WithMetrics attaches a Metrics sink.
func WithMetrics(m Metrics) Option {
	return func(c *runConfig) { c.metrics = m }
}

type pendingLink struct {
	upstream   *Operation
	downstream *Status
}

// Run couples src to dst until one side terminates, per spec §4.E: it
// forwards data (linking each downstream completion back onto the
// upstream operation's status), close, and abort, and propagates
// reader-side cancellation upstream. It returns only once the pipe has
// terminated; outcomes are observed through src/dst state and the
// individual statuses, not a return value. After forwarding close, it
// waits until every forwarded write has been resolved downstream before
// returning.
//
// The loop is single-threaded and cooperative: no goroutine is spawned.
// Waiting on "the union of" notifications (spec rule 4) is realized with
// reflect.Select over a case list that grows with the number of
// in-flight (not yet downstream-resolved) forwarded writes — ordinary
// select cannot express a dynamically sized wait set, and no dependency in
// the retrieval pack provides one, so this is stdlib by necessity.
func Run(src *Readable, dst *Writable, opts ...Option) {
	cfg := runConfig{logger: zerolog.Nop(), tracer: trace.NewNoopTracerProvider().Tracer(""), metrics: noopMetrics{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := cfg.tracer.Start(context.Background(), "opstream.Run",
		trace.WithAttributes(attribute.Int64("opstream.serial", int64(src.Serial()))))
	defer span.End()
	_ = ctx

	var pending []pendingLink

	resolvePending := func() {
		kept := pending[:0]
		for _, l := range pending {
			switch l.downstream.State() {
			case StatusWaiting:
				kept = append(kept, l)
			case StatusCompleted:
				_ = l.upstream.Complete(l.downstream.Result())
			default: // errored or cancelled
				_ = l.upstream.Error(l.downstream.Result())
			}
		}
		pending = kept
		cfg.metrics.QueueDepth(len(pending))
	}

	errorPending := func(reason any) {
		for _, l := range pending {
			_ = l.upstream.Error(reason)
		}
		pending = nil
		cfg.metrics.QueueDepth(0)
	}

	for {
		resolvePending()

		if reason, ok := dst.CancelReason(); ok {
			cfg.logger.Debug().Uint32("serial", src.Serial()).Msg("opstream pipe: downstream cancelled")
			span.AddEvent("downstream-cancelled")
			_ = src.Cancel(reason)
			errorPending(reason)
			return
		}

		if op, ok := src.AbortOperation(); ok {
			cfg.logger.Debug().Uint32("serial", src.Serial()).Msg("opstream pipe: upstream aborted")
			span.AddEvent("upstream-aborted")
			_ = dst.Abort(op.Argument)
			errorPending(op.Argument)
			return
		}

		switch src.State() {
		case ReadableDrained, ReadableCancelledState:
			errorPending(ErrPipeClosed)
			return
		}

		if src.State() == ReadableReadableState {
			op, err := src.Read()
			if err == nil {
				switch op.Type {
				case OpData:
					switch dst.State() {
					case WritableWritableState, WritableWaitingState:
						downstream, werr := dst.Write(op.Argument)
						if werr != nil {
							_ = op.Error(werr)
							break
						}
						pending = append(pending, pendingLink{upstream: op, downstream: downstream})
						cfg.metrics.OpForwarded(OpData)
						cfg.metrics.BytesForwarded(byteLength(op.Argument))
						cfg.metrics.QueueDepth(len(pending))
					default:
						_ = op.Error(ErrWrongState)
						errorPending(ErrWrongState)
						return
					}
				case OpClose:
					cfg.logger.Debug().Uint32("serial", src.Serial()).Msg("opstream pipe: upstream closed")
					span.AddEvent("upstream-closed")
					_ = dst.Close()
					_ = op.Complete(nil)
					cfg.metrics.OpForwarded(OpClose)
					// Keep linking until every forwarded write is resolved
					// downstream, so its completion still reaches upstream.
					for len(pending) > 0 {
						waits := make([]reflect.SelectCase, 0, len(pending))
						for _, l := range pending {
							waits = append(waits, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(l.downstream.Ready())})
						}
						reflect.Select(waits)
						resolvePending()
					}
					return
				}
			}
			continue
		}

		cases := []reflect.SelectCase{
			{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(src.Ready())},
		}
		if dst.State() == WritableWaitingState {
			cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(dst.Ready())})
		}
		if dst.State() == WritableWritableState {
			cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(dst.Cancelled())})
		}
		for _, l := range pending {
			cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(l.downstream.Ready())})
		}
		reflect.Select(cases)
	}
}
