// SPDX-License-Identifier: MIT
//
// Package metrics exposes Prometheus instrumentation for infection runs.
//
// A Collector is registered on a caller-supplied prometheus.Registerer and
// passed to infection.WithRecorder:
//
//	reg := prometheus.NewRegistry()
//	c, err := metrics.NewCollector(reg)
//	...
//	infection.Limited(g, "v2", 5, infection.WithRecorder(c))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/coachgraph/infection"
)

// Namespace prefixes every metric name.
const Namespace = "coachgraph"

// Collector counts infection runs and infected users per mode.
type Collector struct {
	// Runs counts successful runs, labelled by mode.
	Runs *prometheus.CounterVec

	// Infected counts users whose version was set, labelled by mode.
	Infected *prometheus.CounterVec

	// Size observes the infected-set size of every run, labelled by mode.
	Size *prometheus.HistogramVec

	// Deviation is |infected - requested| of the latest limited run.
	Deviation prometheus.Gauge
}

// NewCollector creates the collectors and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "infections_total",
				Help:      "Total number of successful infection runs",
			},
			[]string{"mode"},
		),
		Infected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "infected_users_total",
				Help:      "Total number of users whose version was set",
			},
			[]string{"mode"},
		),
		Size: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "infection_size",
				Help:      "Number of users infected per run",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"mode"},
		),
		Deviation: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "limited_deviation_users",
				Help:      "Distance between requested and infected size of the latest limited run",
			},
		),
	}
	for _, col := range []prometheus.Collector{c.Runs, c.Infected, c.Size, c.Deviation} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Observe implements infection.Recorder.
func (c *Collector) Observe(r *infection.Result) {
	if r == nil {
		return
	}
	mode := string(r.Mode)
	n := float64(len(r.Infected))
	c.Runs.WithLabelValues(mode).Inc()
	c.Infected.WithLabelValues(mode).Add(n)
	c.Size.WithLabelValues(mode).Observe(n)
	if r.Mode == infection.ModeLimited {
		d := n - float64(r.Requested)
		if d < 0 {
			d = -d
		}
		c.Deviation.Set(d)
	}
}

var _ infection.Recorder = (*Collector)(nil)
