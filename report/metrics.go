// SPDX-License-Identifier: MIT

package report

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts reported faults per class.
type Metrics struct {
	faults *prometheus.CounterVec
}

// NewMetrics creates the lvmat_faults_total counter and registers it with
// reg. A nil reg leaves the counter unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	faults := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvmat",
			Name:      "faults_total",
			Help:      "Number of faults reported by the matrix engine, by class.",
		},
		[]string{"class"},
	)
	if reg != nil {
		if err := reg.Register(faults); err != nil {
			return nil, err
		}
	}

	return &Metrics{faults: faults}, nil
}

// Observe increments the counter of class c.
func (m *Metrics) Observe(c Class) {
	m.faults.WithLabelValues(c.String()).Inc()
}

// Counter exposes the underlying vector for collection and assertions.
func (m *Metrics) Counter() *prometheus.CounterVec { return m.faults }

// Count returns the current value of the counter for class c.
func (m *Metrics) Count(c Class) float64 {
	var out dto.Metric
	if err := m.faults.WithLabelValues(c.String()).Write(&out); err != nil {
		return 0
	}
	return out.GetCounter().GetValue()
}
