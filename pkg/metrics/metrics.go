package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the console
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     prometheus.Histogram
	GatewayErrors    *prometheus.CounterVec
	WizardSteps      *prometheus.CounterVec
	WizardRunsDone   prometheus.Counter
	WizardRunsCancel prometheus.Counter
}

// NewMetrics creates new prometheus metrics registered on the default registry
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests handled",
		}, []string{"method", "path", "status"}),
		HTTPDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to handle HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}),
		GatewayErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_errors_total",
			Help:      "The total number of failed calls to the upstream CRUD backend",
		}, []string{"collection", "operation"}),
		WizardSteps: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_steps_completed_total",
			Help:      "The total number of completed wizard steps",
		}, []string{"step"}),
		WizardRunsDone: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_runs_completed_total",
			Help:      "The total number of wizard runs completed through the checklist step",
		}),
		WizardRunsCancel: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_runs_cancelled_total",
			Help:      "The total number of wizard runs abandoned or cancelled",
		}),
	}
}
