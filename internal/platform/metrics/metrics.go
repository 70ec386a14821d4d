package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics は登録簿サービスの観測値を保持します。レジストリはインスタンスごとに独立しています。
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	AccessDecisions *prometheus.CounterVec
}

// New はメトリクスを生成し、専用レジストリへ登録します。
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "garage_registry_grpc_requests_total",
			Help: "Total number of gRPC requests by method and status code",
		}, []string{"method", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "garage_registry_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests by method",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method"}),
		AccessDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "garage_registry_access_decisions_total",
			Help: "Garage access decisions by result",
		}, []string{"result"}),
		registry: registry,
	}
}

// ObserveRequest は 1 リクエスト分の件数と所要時間を記録します。
func (m *Metrics) ObserveRequest(method, code string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, code).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// RecordAccessDecision はガレージ入場判定の結果を記録します。
func (m *Metrics) RecordAccessDecision(granted bool) {
	if m == nil {
		return
	}
	result := "denied"
	if granted {
		result = "granted"
	}
	m.AccessDecisions.WithLabelValues(result).Inc()
}

// Handler は Prometheus 形式で公開する http.Handler を返します。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
