package events

import (
	"github.com/avc/reading-billing/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics счетчики доставки событий
type Metrics struct {
	dispatched *prometheus.CounterVec
	failed     *prometheus.CounterVec
}

// NewMetrics регистрирует счетчики в переданном registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_event_handler_invocations_total",
			Help: "Number of event handler invocations by event kind.",
		}, []string{"kind"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_event_handler_failures_total",
			Help: "Number of failed event handler invocations by event kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.dispatched, m.failed)
	return m
}

func (m *Metrics) observe(kind domain.EventKind, invoked, failed int) {
	if m == nil {
		return
	}
	m.dispatched.WithLabelValues(string(kind)).Add(float64(invoked))
	if failed > 0 {
		m.failed.WithLabelValues(string(kind)).Add(float64(failed))
	}
}
