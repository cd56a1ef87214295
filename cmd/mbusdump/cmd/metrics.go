package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// metricsEnabled gates the Prometheus instrumentation in dump.go so the
// Observe/Inc calls are only made when --metrics-addr was actually set.
var metricsEnabled bool

var (
	recordsDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mbusdump",
		Name:      "records_decoded_total",
		Help:      "Total number of Data Records successfully decoded.",
	})
	decodeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mbusdump",
		Name:      "decode_errors_total",
		Help:      "Total number of frame or record decode failures.",
	})
	decodeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mbusdump",
		Name:      "frame_decode_seconds",
		Help:      "Time spent decoding a single frame's envelope.",
		Buckets:   prometheus.DefBuckets,
	})
)

// serveMetrics starts an HTTP listener exposing the mbusdump counters at
// /metrics and returns a function that shuts it down. Registration
// happens unconditionally at package init (promauto); only the listener
// and the Inc/Observe calls in dump.go are conditional on --metrics-addr.
func serveMetrics(addr string, logger *logrus.Logger) func() {
	metricsEnabled = true

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Infof("serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("metrics server stopped unexpectedly")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
