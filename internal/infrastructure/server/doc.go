// Package server assembles the HTTP service.
//
// NewServer builds every collaborator from configuration: the logger, the
// Prometheus collectors, the tracer, the sandbox pool, the evaluator, the
// replayer and the template catalog. It then mounts them on a gin router:
//
//	GET  /                         service banner
//	GET  /health                   run statistics, pool state, counters
//	GET  /metrics                  Prometheus exposition
//	GET  /kinds                    structure kinds and replay operations
//	GET  /templates[/:kind]        starter programs
//	POST /run                      evaluate a script (rate limited)
//	POST /structures/:kind/replay  apply engine operations (rate limited)
//	GET  /stream                   live WebSocket runs (rate limited)
//
// Shutdown drains in-flight requests, closes the pool and flushes spans.
package server
