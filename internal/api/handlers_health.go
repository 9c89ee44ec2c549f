// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package api

import (
	"net/http"
	"time"

	"github.com/ashanr/student-decision-support/internal/models"
)

// Health handles GET /api/v1/health. It reports database connectivity and
// index state; the service is degraded when the database is unreachable or
// the similarity index has not been built yet.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Health(r.Context()) == nil

	engineStatus := h.engine.Status()

	status := "healthy"
	if !dbConnected || !engineStatus.IndexBuilt {
		status = "degraded"
	}

	var builtAt *time.Time
	if !engineStatus.IndexBuiltAt.IsZero() {
		t := engineStatus.IndexBuiltAt
		builtAt = &t
	}

	respondSuccess(w, r, http.StatusOK, models.HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		IndexBuilt:        engineStatus.IndexBuilt,
		IndexSize:         engineStatus.IndexSize,
		IndexBuiltAt:      builtAt,
		Uptime:            time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthLive handles liveness probe requests. Returns 200 if the process
// is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probe requests. Returns 200 only when the
// service can serve enhanced recommendations: database reachable and index
// built. Returns 503 otherwise so load balancers hold traffic back.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Health(r.Context()) == nil
	ready := dbConnected && h.engine.Ready()

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	respondSuccess(w, r, status, map[string]interface{}{
		"ready":              ready,
		"database_connected": dbConnected,
		"index_built":        h.engine.Ready(),
	}, 0)
}
