// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

// Package api provides the HTTP surface of the recommendation service,
// built on the Chi router with production middleware from the Chi
// ecosystem (go-chi/cors, go-chi/httprate).
//
// Endpoints:
//
//	POST /api/v1/recommendations   - score and rank programs for a profile
//	POST /api/v1/similar-students  - nearest historical students for a profile
//	GET  /api/v1/countries         - reference data: countries
//	GET  /api/v1/universities      - reference data: universities
//	GET  /api/v1/fields            - reference data: fields of study
//	GET  /api/v1/status            - engine index and request counters
//	GET  /api/v1/insights/satisfaction-factors - factor/satisfaction correlations
//	GET  /api/v1/health            - full health status
//	GET  /api/v1/health/live       - liveness probe
//	GET  /api/v1/health/ready      - readiness probe
//	GET  /metrics                  - Prometheus metrics
//
// The health endpoints are also mounted at the root (/health, /health/live,
// /health/ready) for load balancers and infrastructure probes.
//
// All endpoints respond with the models.APIResponse envelope. Request
// bodies are validated with go-playground/validator before they reach the
// engine, so malformed input fails fast with a VALIDATION_ERROR payload.
package api
