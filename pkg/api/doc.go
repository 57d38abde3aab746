// Package api provides the HTTP API layer for the vpackd version code service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific identity and logging. The version
// code endpoints themselves live in pkg/server; this layer wires up naming,
// structured logging, and lifecycle.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/vpack/vpack/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /v1/encode  - Pack a value tuple against a component schema
//   - POST /v1/compare - Order two shaped value tuples
//   - GET  /v1/semver  - Parse and encode a Major.Minor.Patch string
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - SHUTDOWN_TIMEOUT_SECONDS: Grace period for in-flight requests
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vpack/vpack/pkg/api.version=1.0.0'"
package api
