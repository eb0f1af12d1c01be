package export

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus collectors for export calls.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer
	exports  *prometheus.CounterVec
	notices  *prometheus.CounterVec
}

// NewMetrics registers the export collectors with reg. Registering twice with
// the same registry panics. A nil reg gets a fresh registry of its own,
// reachable through Gatherer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	gatherer, _ := reg.(prometheus.Gatherer)
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: gatherer,
		exports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portsheet_exports_total",
				Help: "Total number of export calls by output format",
			},
			[]string{"format"},
		),
		notices: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portsheet_export_notices_total",
				Help: "Total number of export diagnostics by kind",
			},
			[]string{"kind"},
		),
	}
}

// Gatherer returns the registry the collectors were registered with, or nil
// if it cannot be gathered from.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return nil
	}
	return m.gatherer
}

func (m *Metrics) observeExport(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}

func (m *Metrics) observeNotice(kind string) {
	if m == nil {
		return
	}
	m.notices.WithLabelValues(kind).Inc()
}
