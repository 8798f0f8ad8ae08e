package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run and replay outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Evaluation metrics
	RunsTotal       *prometheus.CounterVec
	RunDuration     *prometheus.HistogramVec
	ReplaysTotal    *prometheus.CounterVec
	PoolAvailable   prometheus.Gauge
	PoolDiscarded   prometheus.Counter
	OutputTruncated prometheus.Counter

	// Stream metrics
	StreamConnections prometheus.Gauge
	StreamMessages    *prometheus.CounterVec

	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current metric values for the health endpoint
type Snapshot struct {
	TotalRequests     int64   `json:"totalRequests"`
	TotalErrors       int64   `json:"totalErrors"`
	TotalRuns         int64   `json:"totalRuns"`
	FailedRuns        int64   `json:"failedRuns"`
	TotalReplays      int64   `json:"totalReplays"`
	ActiveConnections int64   `json:"activeConnections"`
	UptimeSeconds     float64 `json:"uptimeSeconds"`
}

// NewMetrics registers every collector with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dsaviz_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dsaviz_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dsaviz_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dsaviz_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Evaluation metrics
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dsaviz_runs_total",
				Help: "Total number of script runs by requested kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dsaviz_run_duration_seconds",
				Help:    "Script run duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 7.5},
			},
			[]string{"kind"},
		),
		ReplaysTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dsaviz_replays_total",
				Help: "Total number of operation replays by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		PoolAvailable: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dsaviz_sandbox_pool_available",
				Help: "Number of idle sandbox runtimes",
			},
		),
		PoolDiscarded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dsaviz_sandbox_discarded_total",
				Help: "Runtimes replaced after failing to stop in time",
			},
		),
		OutputTruncated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dsaviz_output_truncated_total",
				Help: "Runs whose console output hit the line cap",
			},
		),

		// Stream metrics
		StreamConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dsaviz_stream_connections",
				Help: "Number of open live stream connections",
			},
		),
		StreamMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dsaviz_stream_messages_total",
				Help: "Total number of live stream messages",
			},
			[]string{"direction", "type"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "dsaviz_uptime_seconds",
			Help: "Service uptime in seconds",
		},
		m.uptime,
	)

	return m
}

func (m *Metrics) uptime() float64 {
	return time.Since(m.startTime).Seconds()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordRun records one script run
func (m *Metrics) RecordRun(kind, outcome string, duration time.Duration) {
	m.RunsTotal.WithLabelValues(kind, outcome).Inc()
	m.RunDuration.WithLabelValues(kind).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalRuns++
	if outcome != OutcomeSuccess {
		m.snapshot.FailedRuns++
	}
	m.mu.Unlock()
}

// RecordReplay records one operation replay
func (m *Metrics) RecordReplay(kind, outcome string) {
	m.ReplaysTotal.WithLabelValues(kind, outcome).Inc()

	m.mu.Lock()
	m.snapshot.TotalReplays++
	m.mu.Unlock()
}

// SetPoolAvailable sets the number of idle runtimes
func (m *Metrics) SetPoolAvailable(n int) {
	m.PoolAvailable.Set(float64(n))
}

// IncPoolDiscarded counts a replaced runtime
func (m *Metrics) IncPoolDiscarded() {
	m.PoolDiscarded.Inc()
}

// IncOutputTruncated counts a run whose output was capped
func (m *Metrics) IncOutputTruncated() {
	m.OutputTruncated.Inc()
}

// RecordStreamMessage records a live stream message
func (m *Metrics) RecordStreamMessage(direction, msgType string) {
	m.StreamMessages.WithLabelValues(direction, msgType).Inc()
}

// IncStreamConnections increments open stream connections
func (m *Metrics) IncStreamConnections() {
	m.StreamConnections.Inc()
	m.mu.Lock()
	m.snapshot.ActiveConnections++
	m.mu.Unlock()
}

// DecStreamConnections decrements open stream connections
func (m *Metrics) DecStreamConnections() {
	m.StreamConnections.Dec()
	m.mu.Lock()
	m.snapshot.ActiveConnections--
	m.mu.Unlock()
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	s := m.snapshot
	m.mu.RUnlock()
	s.UptimeSeconds = m.uptime()
	return s
}
