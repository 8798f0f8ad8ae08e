/*
Package monitoring provides Prometheus metrics for the visualizer service.

# Overview

Collectors are registered on an injected prometheus.Registerer so tests can
use an isolated registry. The service tracks HTTP traffic, script runs,
operation replays, sandbox pool health and live stream connections.

# Metrics

  - dsaviz_http_requests_total{method,path,status}
  - dsaviz_http_request_duration_seconds{method,path}
  - dsaviz_runs_total{kind,outcome}
  - dsaviz_run_duration_seconds{kind}
  - dsaviz_replays_total{kind,outcome}
  - dsaviz_sandbox_pool_available
  - dsaviz_stream_connections
  - dsaviz_uptime_seconds

# Usage

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(monitoring.Handler(prometheus.DefaultGatherer)))

	timer := monitoring.NewTimer(metrics, "bst")
	// ... run the script ...
	timer.Stop(monitoring.OutcomeSuccess)
*/
package monitoring
