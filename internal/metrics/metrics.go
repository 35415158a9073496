package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	DecreesIssued        *prometheus.CounterVec
	ImportRowsClassified *prometheus.CounterVec
	NotificationFailures prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		DecreesIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_decrees_issued_total",
			Help: "Total number of decrees issued, by category",
		}, []string{"category"}),
		ImportRowsClassified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_import_rows_classified_total",
			Help: "Total number of bulk-import rows classified, by outcome",
		}, []string{"outcome"}),
		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registry_notification_failures_total",
			Help: "Total number of notification deliveries that exhausted their retries",
		}),
	}
}

func (m *Metrics) IncrementDecreesIssued(category string) {
	m.DecreesIssued.WithLabelValues(category).Inc()
}

func (m *Metrics) AddImportRows(outcome string, count int) {
	m.ImportRowsClassified.WithLabelValues(outcome).Add(float64(count))
}

func (m *Metrics) IncrementNotificationFailures() {
	m.NotificationFailures.Inc()
}
