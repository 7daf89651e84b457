// Package observability exposes Prometheus counters for the checkout
// flow.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	paymentsResolved *prometheus.CounterVec
	refundsAccepted  *prometheus.CounterVec
	upstreamErrors   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		paymentsResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_payments_resolved_total",
				Help: "Payments resolved to a terminal outcome, by bucket.",
			},
			[]string{"bucket"},
		),
		refundsAccepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_refunds_accepted_total",
				Help: "Refund requests acknowledged by the processor, by status.",
			},
			[]string{"status"},
		),
		upstreamErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_upstream_errors_total",
				Help: "Failed processor calls, by operation.",
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(m.paymentsResolved, m.refundsAccepted, m.upstreamErrors)
	return m
}

func (m *Metrics) PaymentResolved(bucket string) {
	m.paymentsResolved.WithLabelValues(bucket).Inc()
}

func (m *Metrics) RefundAccepted(status string) {
	m.refundsAccepted.WithLabelValues(status).Inc()
}

func (m *Metrics) UpstreamError(operation string) {
	m.upstreamErrors.WithLabelValues(operation).Inc()
}
