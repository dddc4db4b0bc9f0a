package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JoeShih716/go-teller/pkg/metrics"
)

// Collector 以 Prometheus 實作 metrics.Collector
// 使用獨立的 Registry，不污染全域 DefaultRegisterer
type Collector struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	balance    prometheus.Gauge
}

// NewCollector 建立並註冊所有指標
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of ledger operations by outcome",
			},
			[]string{"op", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Ledger operation latency",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"op"},
		),
		balance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "balance",
				Help:      "Current ledger balance",
			},
		),
	}
	c.registry.MustRegister(c.operations, c.latency, c.balance)
	return c
}

// RecordOperation 紀錄操作次數與耗時
func (c *Collector) RecordOperation(op string, outcome string, duration time.Duration) {
	c.operations.WithLabelValues(op, outcome).Inc()
	c.latency.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordBalance 更新餘額 gauge
func (c *Collector) RecordBalance(balance float64) {
	c.balance.Set(balance)
}

// Registry 回傳底層 Registry (測試用)
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler 回傳 /metrics 的 HTTP handler
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

var _ metrics.Collector = (*Collector)(nil)
