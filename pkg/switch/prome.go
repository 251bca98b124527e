package cswitch

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry  *prometheus.Registry
	frames    *prometheus.CounterVec
	decisions *prometheus.CounterVec
	learns    *prometheus.CounterVec
	invalid   prometheus.Counter
	expired   prometheus.Counter
	entries   prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swengine_port_frames_total",
			Help: "Frames counted on each port, received or sent",
		}, []string{"port"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swengine_frame_decisions_total",
			Help: "Forwarding decisions by action",
		}, []string{"action"}),
		learns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swengine_fdb_learn_total",
			Help: "Addresses learned or moved to another port",
		}, []string{"kind"}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swengine_frame_invalid_total",
			Help: "Frames rejected for out of range values",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swengine_fdb_expired_total",
			Help: "Entries deleted by aging",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "swengine_fdb_entries",
			Help: "Entries in the forwarding table",
		}),
	}
	m.registry.MustRegister(m.frames, m.decisions, m.learns, m.invalid, m.expired, m.entries)
	return m
}

func (m *Metrics) Frame(port int) {
	m.frames.WithLabelValues(strconv.Itoa(port)).Inc()
}

func (m *Metrics) Decision(action Action) {
	m.decisions.WithLabelValues(action.String()).Inc()
}

func (m *Metrics) Learn(kind learnKind) {
	if kind != learnKeep {
		m.learns.WithLabelValues(kind.String()).Inc()
	}
}

func (m *Metrics) Invalid() {
	m.invalid.Inc()
}

func (m *Metrics) Expired(n int, entries int) {
	m.expired.Add(float64(n))
	m.entries.Set(float64(entries))
}

func (m *Metrics) Entries(n int) {
	m.entries.Set(float64(n))
}
