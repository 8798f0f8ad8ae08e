// Package http provides the HTTP handlers of the visualizer API.
//
// Endpoints:
//   - Banner and health: / and /health
//   - Kinds: /kinds
//   - Templates: /templates, /templates/:kind
//   - Execution: /run
//   - Replay: /structures/:kind/replay
//
// A script that fails still answers 200 with the error inside the
// ExecutionResult; 400 is reserved for malformed requests such as an unknown
// kind or an oversized source.
//
// Example Usage:
//
//	handlers := http.NewHandlers(ev, replayer, tmpl, metrics, cfg.Sandbox.MaxSourceBytes)
//	router.POST("/run", handlers.Run)
//	router.GET("/templates/:kind", handlers.GetTemplate)
package http
