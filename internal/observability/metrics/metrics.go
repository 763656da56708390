package metrics

import "github.com/prometheus/client_golang/prometheus"

// APIMetrics exposes counters/histograms for the lead API and its store.
type APIMetrics struct {
	leadsTotal   *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
}

func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	m := &APIMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plumberpro",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"status"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "plumberpro",
			Subsystem: "store",
			Name:      "operation_seconds",
			Help:      "Latency of document store operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "success"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.storeLatency)
	return m
}

// ObserveLead counts one lead submission outcome.
func (m *APIMetrics) ObserveLead(status string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(status).Inc()
}

// ObserveStoreOp records the latency and outcome of one store operation.
// It satisfies the store package's OpObserver interface.
func (m *APIMetrics) ObserveStoreOp(op string, seconds float64, err error) {
	if m == nil {
		return
	}
	success := "true"
	if err != nil {
		success = "false"
	}
	m.storeLatency.WithLabelValues(op, success).Observe(seconds)
}
