// Package middleware provides HTTP middleware for the visualizer API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing for the separately served UI
//   - RateLimit: Per-IP token bucket rate limiting with idle client cleanup
//   - GlobalRateLimit: One bucket shared by every client
//
// Rate Limiting:
//   - Token bucket algorithm from golang.org/x/time/rate
//   - Configurable RPS and burst capacity
//   - Disabled middleware passes every request through
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.POST("/run", middleware.RateLimit(cfg), handlers.Run)
package middleware
