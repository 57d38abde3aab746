// Copyright (c) 2026, VPack Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the vpackd HTTP API for encoding and comparing
// version codes.
//
// # Endpoints
//
//   - POST /v1/encode: pack a value tuple against a schema
//   - POST /v1/compare: order two shaped value tuples (-1, 0, 1)
//   - GET  /v1/semver: parse and encode a Major.Minor.Patch string
//   - GET  /health: liveness probe
//   - GET  /ready: readiness probe
//   - GET  /metrics: Prometheus metrics
//
// # Middleware
//
// API endpoints run through a common middleware chain: Prometheus RED
// metrics, request-ID extraction/generation (X-Request-Id), panic
// recovery, token-bucket rate limiting (Retry-After on rejection), and
// request logging. Health and metrics endpoints bypass rate limiting.
//
// # Configuration
//
// Config values come from defaults overridable via environment variables:
// PORT, SHUTDOWN_TIMEOUT_SECONDS, and LOG_LEVEL.
//
// # Error Contract
//
// Failures return a JSON ErrorResponse with a stable code, human-readable
// message, request ID, timestamp, and a retryable hint. Validation
// failures from the version core map to INVALID_SCHEMA, VALUE_RANGE, and
// ARITY_MISMATCH; they are never retryable.
package server
