// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command opstreamdemo wires a buffer pool, an operation-stream pair, the
// pipe engine, and a counting sink together and runs the piped topology
// (spec §8 S5). It does not run the direct topology (S6).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	opstream "code.hybscloud.com/opstream"
	"code.hybscloud.com/opstream/samples/bufpool"
	"code.hybscloud.com/opstream/samples/countsink"
)

func loadConfig() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("OPSTREAM")
	v.AutomaticEnv()
	v.SetDefault("window", 4)
	v.SetDefault("buffer_count", 4)
	v.SetDefault("buffer_size", 64)
	return v
}

// promMetrics implements opstream.Metrics with Prometheus counters/gauges,
// reported alongside (never in place of) the core's own state.
type promMetrics struct {
	opsForwarded  *prometheus.CounterVec
	bytesForwarded prometheus.Counter
	queueDepth    prometheus.Gauge
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	m := &promMetrics{
		opsForwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "opstream_ops_forwarded_total",
			Help: "Operations forwarded by the pipe engine, by type.",
		}, []string{"type"}),
		bytesForwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "opstream_bytes_forwarded_total",
			Help: "Bytes forwarded by the pipe engine.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "opstream_pipe_pending_links",
			Help: "Pending (unresolved) downstream links the pipe engine is tracking.",
		}),
	}
	reg.MustRegister(m.opsForwarded, m.bytesForwarded, m.queueDepth)
	return m
}

func (m *promMetrics) OpForwarded(t opstream.OpType) { m.opsForwarded.WithLabelValues(t.String()).Inc() }
func (m *promMetrics) BytesForwarded(n int)          { m.bytesForwarded.Add(float64(n)) }
func (m *promMetrics) QueueDepth(n int)              { m.queueDepth.Set(float64(n)) }

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	cfg := loadConfig()
	window := cfg.GetInt("window")
	bufCount := cfg.GetInt("buffer_count")
	bufSize := cfg.GetInt("buffer_size")

	registry := prometheus.NewRegistry()
	metrics := newPromMetrics(registry)

	pool := bufpool.New(bufCount, bufSize)
	srcW, srcR := opstream.New(opstream.AdjustableByteLength(window * bufSize))
	sink := countsink.New()

	logger.Info().Int("window", window).Int("buffer_count", bufCount).Int("buffer_size", bufSize).
		Msg("opstreamdemo: starting piped run (S5)")

	done := make(chan struct{})
	go func() {
		opstream.Run(srcR, sink.Writable(),
			opstream.WithLogger(logger),
			opstream.WithMetrics(metrics),
		)
		close(done)
	}()

	for i := 0; i < bufCount; i++ {
		buf := pool.Get()
		for j := range buf {
			buf[j] = 1
		}
		st, err := srcW.Write(buf)
		if err != nil {
			logger.Error().Err(err).Msg("write failed")
			break
		}
		pool.ReturnOnComplete(buf, st)
	}
	if err := srcW.Close(); err != nil {
		logger.Error().Err(err).Msg("close failed")
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logger.Warn().Msg("pipe did not terminate in time")
	}
	select {
	case <-sink.Done():
	case <-time.After(5 * time.Second):
		logger.Warn().Msg("sink did not finish draining in time")
	}

	logger.Info().Int("counted_bytes", sink.Count()).Msg("opstreamdemo: piped run complete")

	metricFamilies, err := registry.Gather()
	if err != nil {
		logger.Error().Err(err).Msg("failed to gather metrics")
		os.Exit(1)
	}
	for _, mf := range metricFamilies {
		fmt.Fprintf(os.Stdout, "%s\n", mf.GetName())
	}
}
