// Package metrics records build statistics in Prometheus text format, for
// node-exporter style textfile collection from CI or cron.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/leaderboard"
	"github.com/MINT-SJTU/Evo-SOTA.io/internal/output"
)

const namespace = "evosota"

// Build holds the gauges of one build on a private registry.
type Build struct {
	reg *prometheus.Registry

	rows        *prometheus.GaugeVec
	models      prometheus.Gauge
	entries     *prometheus.GaugeVec
	fileBytes   *prometheus.GaugeVec
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// NewBuild registers the build gauges.
func NewBuild() *Build {
	b := &Build{
		reg: prometheus.NewRegistry(),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "rows",
			Help:      "Sheet rows seen in the last build, by outcome",
		}, []string{"outcome"}),
		models: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "models",
			Help:      "Distinct models in the last build",
		}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "leaderboard",
			Name:      "entries",
			Help:      "Leaderboard entries per benchmark, setting and category",
		}, []string{"benchmark", "setting", "category"}),
		fileBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "file_bytes",
			Help:      "Size of each written file",
		}, []string{"file"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "duration_seconds",
			Help:      "Wall time of the last build",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time the last build finished",
		}),
	}
	b.reg.MustRegister(b.rows, b.models, b.entries, b.fileBytes, b.duration, b.lastSuccess)
	return b
}

// Registry exposes the underlying registry.
func (b *Build) Registry() *prometheus.Registry { return b.reg }

// Observe records res, the files written and the elapsed time.
func (b *Build) Observe(res *leaderboard.Result, files []output.File, took time.Duration) {
	st := res.Stats
	b.rows.WithLabelValues("parsed").Set(float64(st.Rows - st.Skipped))
	b.rows.WithLabelValues("skipped").Set(float64(st.Skipped))
	b.rows.WithLabelValues("cited").Set(float64(st.Citations))
	b.models.Set(float64(st.Models))

	for _, c := range leaderboard.Categories {
		b.entries.WithLabelValues("libero", "", string(c)).Set(float64(len(leaderboard.View(res.Libero, c))))
		b.entries.WithLabelValues("metaworld", "", string(c)).Set(float64(len(leaderboard.View(res.MetaWorld, c))))
		for _, s := range leaderboard.CalvinSettings {
			b.entries.WithLabelValues("calvin", s.Key(), string(c)).Set(float64(len(leaderboard.View(res.CalvinBoard(s), c))))
		}
	}
	for _, f := range files {
		b.fileBytes.WithLabelValues(f.Name).Set(float64(f.Size))
	}
	b.duration.Set(took.Seconds())
	b.lastSuccess.SetToCurrentTime()
}

// WriteTextfile writes the registry to path atomically.
func (b *Build) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, b.reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
