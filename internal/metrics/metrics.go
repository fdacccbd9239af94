package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transaction outcomes
const (
	StatusSuccess  = "success"
	StatusReverted = "reverted"
	StatusFailed   = "failed"
)

// Metrics holds the collectors for one client run
type Metrics struct {
	registry *prometheus.Registry

	// TransactionsSent counts transactions by step and outcome
	TransactionsSent *prometheus.CounterVec

	// GasUsed tracks gas used by mined transactions
	GasUsed *prometheus.HistogramVec

	// StepDuration tracks time from submission to receipt
	StepDuration *prometheus.HistogramVec

	// CampaignsCreated counts campaigns created through the factory
	CampaignsCreated prometheus.Counter

	// ErrorsTotal counts errors by step and category
	ErrorsTotal *prometheus.CounterVec
}

// New creates a Metrics instance backed by its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		TransactionsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_client_transactions_total",
				Help: "Total number of transactions sent",
			},
			[]string{"step", "status"},
		),
		GasUsed: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaign_client_gas_used",
				Help:    "Gas used by mined transactions",
				Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000, 1000000},
			},
			[]string{"step"},
		),
		StepDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaign_client_step_duration_seconds",
				Help:    "Time from submission until the receipt is available",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
			},
			[]string{"step"},
		),
		CampaignsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "campaign_client_campaigns_created_total",
				Help: "Total number of campaigns created",
			},
		),
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_client_errors_total",
				Help: "Total number of errors",
			},
			[]string{"step", "category"},
		),
	}
}

// Registry returns the registry the collectors are registered with
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all collected metrics in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
