package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
)

const namespace = "transfer_processor"

// PrometheusMetrics implements core.TransactionMetrics on a private prometheus registry
type PrometheusMetrics struct {
	registry *prometheus.Registry

	activeUnitsOfWork  prometheus.Gauge
	unitsOfWorkTotal   *prometheus.CounterVec
	unitOfWorkDuration *prometheus.HistogramVec
	transfersTotal     *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors and registers them, along with the Go runtime
// and process collectors, on a new registry
func NewPrometheusMetrics() *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		activeUnitsOfWork: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "units_of_work_active",
			Help:      "Units of work currently holding a connection.",
		}),
		unitsOfWorkTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_of_work_total",
			Help:      "Units of work ended, by outcome.",
		}, []string{"outcome"}),
		unitOfWorkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "unit_of_work_duration_seconds",
			Help:      "Time from begin to release of a unit of work.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"outcome"}),
		transfersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Transfers attempted, by outcome and error code.",
		}, []string{"outcome", "code"}),
	}

	m.registry.MustRegister(
		m.activeUnitsOfWork,
		m.unitsOfWorkTotal,
		m.unitOfWorkDuration,
		m.transfersTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// UnitOfWorkBegan records a unit of work that acquired its connection
func (m *PrometheusMetrics) UnitOfWorkBegan() {
	m.activeUnitsOfWork.Inc()
}

// UnitOfWorkEnded records a released unit of work
func (m *PrometheusMetrics) UnitOfWorkEnded(outcome coreport.Outcome, elapsed coreport.Duration) {
	m.activeUnitsOfWork.Dec()
	m.unitsOfWorkTotal.WithLabelValues(string(outcome)).Inc()
	m.unitOfWorkDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

// TransferFinished records the result of a transfer
func (m *PrometheusMetrics) TransferFinished(outcome coreport.Outcome, errorCode int) {
	m.transfersTotal.WithLabelValues(string(outcome), strconv.Itoa(errorCode)).Inc()
}

// Register adds a collector, such as the database pool stats, to the registry
func (m *PrometheusMetrics) Register(collector prometheus.Collector) error {
	return m.registry.Register(collector)
}

// Handler exposes the registry in the prometheus text format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Gatherer returns the underlying registry
func (m *PrometheusMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
