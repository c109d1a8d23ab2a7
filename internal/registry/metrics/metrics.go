package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for registries and the coordinator.
// All methods are nil-safe so callers can run without metrics.
type Metrics struct {
	// Operation latency by template version and operation
	OperationLatency *prometheus.HistogramVec

	// Operation outcomes by version, operation and outcome
	OperationOutcome *prometheus.CounterVec

	// Templates held per version
	Templates *prometheus.GaugeVec

	// Templates added to a registry by auto-enrolment
	AutoEnrolled *prometheus.CounterVec

	// Delegate notifications that returned an error
	DelegateFailures prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "facereg_operation_duration_seconds",
			Help:    "Duration of registry operations including recognizer calls",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"version", "operation"}), // operation: "register", "identify", "authenticate"

		OperationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "facereg_operation_outcomes_total",
			Help: "Registry operation outcomes by version, operation and outcome",
		}, []string{"version", "operation", "outcome"}),

		Templates: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "facereg_templates",
			Help: "Number of templates held per template version",
		}, []string{"version"}),

		AutoEnrolled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "facereg_auto_enrolled_templates_total",
			Help: "Templates added to a registry by cross-registry auto-enrolment",
		}, []string{"version"}),

		DelegateFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "facereg_delegate_failures_total",
			Help: "Template-added notifications the delegate failed to handle",
		}),
	}
}

// ObserveOperation records latency and outcome of one registry operation.
func (m *Metrics) ObserveOperation(version, operation, outcome string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(version, operation).Observe(d.Seconds())
		m.OperationOutcome.WithLabelValues(version, operation, outcome).Inc()
	}
}

// SetTemplates records the current template count of a registry.
func (m *Metrics) SetTemplates(version string, n int) {
	if m != nil {
		m.Templates.WithLabelValues(version).Set(float64(n))
	}
}

// AddAutoEnrolled counts templates auto-enrolled into a registry.
func (m *Metrics) AddAutoEnrolled(version string, n int) {
	if m != nil {
		m.AutoEnrolled.WithLabelValues(version).Add(float64(n))
	}
}

// IncrementDelegateFailures counts a failed delegate notification.
func (m *Metrics) IncrementDelegateFailures() {
	if m != nil {
		m.DelegateFailures.Inc()
	}
}
