// Package metrics records the outcome of a sampling run as Prometheus gauges
// and writes them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RunInfo describes a finished sampling run.
type RunInfo struct {
	Host      string
	Sampler   string
	Interval  int
	Duration  int
	ExitCode  int
	Elapsed   time.Duration
	StartedAt time.Time
}

// Recorder holds the run gauges in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	exitCode  *prometheus.GaugeVec
	elapsed   *prometheus.GaugeVec
	startedAt *prometheus.GaugeVec
	interval  *prometheus.GaugeVec
	duration  *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all gauges registered.
func NewRecorder() *Recorder {
	labels := []string{"host", "sampler"}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		exitCode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "samplerun_last_run_exit_code",
			Help: "Exit code of the last sampling run.",
		}, labels),
		elapsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "samplerun_last_run_duration_seconds",
			Help: "Wall-clock time the last sampling run took.",
		}, labels),
		startedAt: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "samplerun_last_run_timestamp_seconds",
			Help: "Unix time the last sampling run started.",
		}, labels),
		interval: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "samplerun_sampling_interval_seconds",
			Help: "Configured seconds between samples.",
		}, labels),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "samplerun_sampling_duration_seconds",
			Help: "Configured total sampling time.",
		}, labels),
	}
	r.registry.MustRegister(r.exitCode, r.elapsed, r.startedAt, r.interval, r.duration)
	return r
}

// Observe sets the gauges from info.
func (r *Recorder) Observe(info RunInfo) {
	lv := prometheus.Labels{"host": info.Host, "sampler": info.Sampler}
	r.exitCode.With(lv).Set(float64(info.ExitCode))
	r.elapsed.With(lv).Set(info.Elapsed.Seconds())
	r.startedAt.With(lv).Set(float64(info.StartedAt.Unix()))
	r.interval.With(lv).Set(float64(info.Interval))
	r.duration.With(lv).Set(float64(info.Duration))
}

// WriteFile writes the gauges to path. The file is replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
