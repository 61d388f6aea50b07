// SPDX-License-Identifier: MIT

// Package metrics exposes engine evaluation counters over Prometheus.
package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	namespace = "secrecy"
	subsystem = "equivocation"

	shutdownTimeout = 15 * time.Second

	// Result label values.
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector records equivocation evaluations. A nil *Collector is valid and
// records nothing.
type Collector struct {
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	states      *prometheus.GaugeVec
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Number of equivocation evaluations by code and result",
		}, []string{"code", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time of one equivocation evaluation",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"code"}),
		states: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "states",
			Help:      "Size 2^m of the syndrome distribution last evaluated",
		}, []string{"code"}),
	}
	for _, col := range []prometheus.Collector{c.evaluations, c.duration, c.states} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Observe records one evaluation of code with 2^m states.
func (c *Collector) Observe(code string, m int, elapsed time.Duration, err error) {
	if c == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	c.evaluations.WithLabelValues(code, result).Inc()
	c.duration.WithLabelValues(code).Observe(elapsed.Seconds())
	if m >= 0 && m < 64 {
		c.states.WithLabelValues(code).Set(float64(uint64(1) << uint(m)))
	}
}

// Serve exposes g on /metrics at l until ctx is done.
func Serve(ctx context.Context, l net.Listener, g prometheus.Gatherer, log *zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		errC <- server.Serve(l)
	}()
	log.Info().Str("addr", l.Addr().String()).Msg("Starting metrics server")

	select {
	case err := <-errC:
		log.Err(err).Msg("Metrics server quit with error")
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	if err := <-errC; err != http.ErrServerClosed {
		log.Err(err).Msg("Metrics server quit with error")
		return err
	}
	log.Info().Msg("Metrics server stopped")

	return nil
}
