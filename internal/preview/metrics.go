package preview

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks preview server activity, exposed on /metrics.
type Metrics struct {
	renders  *prom.CounterVec
	requests prom.Counter
}

// newMetrics constructs and registers preview metrics on the registry.
func newMetrics(reg *prom.Registry) *Metrics {
	m := &Metrics{
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "webineer",
			Name:      "preview_renders_total",
			Help:      "Preview rebuilds by outcome",
		}, []string{"result"}),
		requests: prom.NewCounter(prom.CounterOpts{
			Namespace: "webineer",
			Name:      "preview_requests_total",
			Help:      "HTTP requests served by the preview server",
		}),
	}
	reg.MustRegister(m.renders, m.requests)
	return m
}

// RecordRender counts one rebuild.
func (m *Metrics) RecordRender(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.renders.WithLabelValues(result).Inc()
}

// RecordRequest counts one served request.
func (m *Metrics) RecordRequest() {
	m.requests.Inc()
}
