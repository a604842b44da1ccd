package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/studybuddy-ai/studybuddy/pkg/metrics"
)

type Metrics struct {
	apiResponseTime   *prometheus.HistogramVec
	apiErrorCounter   *prometheus.CounterVec
	embedRequestTime  *prometheus.HistogramVec
	completionTime    *prometheus.HistogramVec
	providerError     *prometheus.CounterVec
	ingestChunks      *prometheus.CounterVec
	ingestFailures    *prometheus.CounterVec
	queryCounter      *prometheus.CounterVec
	rankSkippedVector *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:   metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:   metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		embedRequestTime:  metrics.NewHistogramVec("embed_request_time", []string{"input_type"}),
		completionTime:    metrics.NewHistogramVec("completion_request_time", []string{"driver"}),
		providerError:     metrics.NewCounterVec("provider_error", []string{"provider"}),
		ingestChunks:      metrics.NewCounterVec("ingest_chunks", []string{"scope_kind"}),
		ingestFailures:    metrics.NewCounterVec("ingest_failures", []string{"scope_kind"}),
		queryCounter:      metrics.NewCounterVec("query_total", []string{"mode"}),
		rankSkippedVector: metrics.NewCounterVec("rank_skipped_vectors", nil),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) EmbedRequestTimer(inputType string) *prometheus.Timer {
	return prometheus.NewTimer(m.embedRequestTime.WithLabelValues(inputType))
}

func (m *Metrics) CompletionTimer(driver string) *prometheus.Timer {
	return prometheus.NewTimer(m.completionTime.WithLabelValues(driver))
}

func (m *Metrics) ProviderErrorInc(provider string) {
	m.providerError.WithLabelValues(provider).Inc()
}

func (m *Metrics) IngestChunksAdd(scopeKind string, n int) {
	m.ingestChunks.WithLabelValues(scopeKind).Add(float64(n))
}

func (m *Metrics) IngestFailuresAdd(scopeKind string, n int) {
	m.ingestFailures.WithLabelValues(scopeKind).Add(float64(n))
}

func (m *Metrics) QueryInc(mode string) {
	m.queryCounter.WithLabelValues(mode).Inc()
}

func (m *Metrics) RankSkippedAdd(n int) {
	m.rankSkippedVector.WithLabelValues().Add(float64(n))
}
