package main

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/combsolve/parallel"
)

// searchMetrics exposes the parallel driver's per-task progress as
// Prometheus gauges, optionally served over HTTP.
type searchMetrics struct {
	tasksCompleted prometheus.Gauge
	tasksTotal     prometheus.Gauge
}

func newSearchMetrics() *searchMetrics {
	return &searchMetrics{
		tasksCompleted: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shipcount_tasks_completed",
			Help: "First-group tasks completed by the parallel driver so far.",
		}),
		tasksTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shipcount_tasks_total",
			Help: "Total first-group tasks dispatched by the parallel driver.",
		}),
	}
}

// hook adapts the metrics to combsolve's parallel.ProgressHook shape.
func (m *searchMetrics) hook() parallel.ProgressHook {
	return func(completed, total int) {
		m.tasksCompleted.Set(float64(completed))
		m.tasksTotal.Set(float64(total))
	}
}

// serve starts a background HTTP server exposing /metrics on addr. The
// returned func shuts the server down; callers should defer it.
func serve(ctx context.Context, addr string, log *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn("metrics server stopped", zap.Error(err))
		}
	}()

	return func() { _ = srv.Shutdown(ctx) }
}
