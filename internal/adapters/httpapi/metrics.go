package httpapi

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service counters.
type Metrics struct {
	checks   *prometheus.CounterVec
	requests *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "palindrome",
				Name:      "checks_total",
				Help:      "Total number of palindrome checks by verdict",
			},
			[]string{"verdict"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "palindrome",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by path and status",
			},
			[]string{"path", "status"},
		),
	}
	reg.MustRegister(m.checks, m.requests)
	return m
}

func (m *Metrics) observeCheck(palindrome bool) {
	verdict := "not_palindrome"
	if palindrome {
		verdict = "palindrome"
	}
	m.checks.WithLabelValues(verdict).Inc()
}

func (m *Metrics) observeRequest(path string, status int) {
	m.requests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}
