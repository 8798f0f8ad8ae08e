// Package main is the entry point for the DSA Visualizer server.
//
// The server evaluates learner scripts that build data structures and
// returns the captured structure as a positioned node/edge graph for the
// browser UI to draw.
//
// The server provides:
//   - REST API for script runs and direct operation replay
//   - WebSocket streaming for re-run-on-edit
//   - Starter program catalog
//   - Health, Prometheus metrics and rate limiting
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -pool 8
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
