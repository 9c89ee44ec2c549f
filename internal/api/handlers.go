// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashanr/student-decision-support/internal/cache"
	"github.com/ashanr/student-decision-support/internal/logging"
	"github.com/ashanr/student-decision-support/internal/metrics"
	"github.com/ashanr/student-decision-support/internal/models"
	"github.com/ashanr/student-decision-support/internal/recommend"
	"github.com/ashanr/student-decision-support/internal/store"
)

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// referenceTTL is how long reference data (countries, universities,
// fields) stays cached. The catalog changes rarely.
const referenceTTL = 5 * time.Minute

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	engine    *recommend.Engine
	db        *store.DB
	cache     *cache.Cache
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates a handler backed by the given engine and store. The
// store may be nil in tests; request event recording is then skipped.
func NewHandler(engine *recommend.Engine, db *store.DB, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:    engine,
		db:        db,
		cache:     cache.New(referenceTTL),
		logger:    logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
}

// Recommendations handles POST /api/v1/recommendations. It validates the
// request body, runs the engine pipeline and returns the ranked programs.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	scored, err := h.engine.Recommend(r.Context(), req.Profile(), req.Limit)
	elapsed := time.Since(start)

	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	boosted := false
	for i := range scored {
		if scored[i].Boost > 0 {
			boosted = true
			break
		}
	}

	metrics.ObserveRecommendation(boosted, elapsed)
	h.recordEvent(r, &req, len(scored), boosted, elapsed)

	h.logger.Debug().
		Str("field", sanitizeLogValue(req.FieldOfStudy)).
		Int("returned", len(scored)).
		Bool("boosted", boosted).
		Dur("elapsed", elapsed).
		Msg("Recommendations served")

	respondSuccess(w, r, http.StatusOK, models.RecommendationResult{
		Recommendations: scored,
		Count:           len(scored),
		Boosted:         boosted,
	}, elapsed)
}

// SimilarStudents handles POST /api/v1/similar-students. Unlike the
// recommendations endpoint it fails with 503 when the similarity index has
// not been built; there is no preference-only fallback for this query.
func (h *Handler) SimilarStudents(w http.ResponseWriter, r *http.Request) {
	var req models.SimilarStudentsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	metrics.SimilarStudentQueries.Inc()

	start := time.Now()
	matches, err := h.engine.SimilarStudents(r.Context(), req.Profile(), req.K)
	elapsed := time.Since(start)

	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, models.SimilarStudentsResult{
		Matches: matches,
		Count:   len(matches),
	}, elapsed)
}

// Countries handles GET /api/v1/countries.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	h.referenceData(w, r, "countries", "list_countries", func() (interface{}, int, error) {
		countries, err := h.db.ListCountries(r.Context())
		return countries, len(countries), err
	})
}

// Universities handles GET /api/v1/universities.
func (h *Handler) Universities(w http.ResponseWriter, r *http.Request) {
	h.referenceData(w, r, "universities", "list_universities", func() (interface{}, int, error) {
		universities, err := h.db.ListUniversities(r.Context())
		return universities, len(universities), err
	})
}

// Fields handles GET /api/v1/fields.
func (h *Handler) Fields(w http.ResponseWriter, r *http.Request) {
	h.referenceData(w, r, "fields", "list_fields", func() (interface{}, int, error) {
		fields, err := h.db.ListFields(r.Context())
		return fields, len(fields), err
	})
}

// referenceData serves one reference-data list through the TTL cache.
func (h *Handler) referenceData(w http.ResponseWriter, r *http.Request, name, operation string, fetch func() (interface{}, int, error)) {
	if cached, ok := h.cache.Get(name); ok {
		respondSuccess(w, r, http.StatusOK, cached, 0)
		return
	}

	start := time.Now()
	list, count, err := fetch()
	if err != nil {
		metrics.DBQueryErrors.WithLabelValues(operation).Inc()
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list "+name, err)
		return
	}

	payload := map[string]interface{}{
		name:    list,
		"count": count,
	}
	h.cache.Set(name, payload)

	respondSuccess(w, r, http.StatusOK, payload, time.Since(start))
}

// EngineStatus handles GET /api/v1/status, exposing index state and
// request counters.
func (h *Handler) EngineStatus(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, h.engine.Status(), 0)
}

// SatisfactionFactors handles GET /api/v1/insights/satisfaction-factors:
// the correlation of each historical profile factor with decision
// satisfaction, computed over the indexed dataset.
func (h *Handler) SatisfactionFactors(w http.ResponseWriter, r *http.Request) {
	factors, err := h.engine.SatisfactionFactors()
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"factors": factors,
	}, 0)
}

// respondEngineError maps engine errors onto HTTP status codes.
func (h *Handler) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case recommend.IsValidationError(err):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, recommend.ErrIndexUnavailable):
		respondError(w, http.StatusServiceUnavailable, "INDEX_UNAVAILABLE", "Similarity index has not been built yet", nil)
	case r.Context().Err() != nil:
		respondError(w, http.StatusServiceUnavailable, "REQUEST_CANCELLED", "Request cancelled", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Recommendation failed", err)
	}
}

// recordEvent persists a recommendation event for offline analysis.
// Best effort: a failed insert is logged, never surfaced to the client.
func (h *Handler) recordEvent(r *http.Request, req *models.RecommendationRequest, returned int, boosted bool, elapsed time.Duration) {
	if h.db == nil {
		return
	}

	ev := &store.RecommendationEvent{
		FieldOfStudy: req.FieldOfStudy,
		DegreeLevel:  req.DegreeLevel,
		RequestedK:   req.Limit,
		Returned:     returned,
		Boosted:      boosted,
		Duration:     elapsed,
	}

	if err := h.db.RecordRecommendationEvent(r.Context(), ev); err != nil {
		metrics.DBQueryErrors.WithLabelValues("record_event").Inc()
		log := logging.Ctx(r.Context())
		log.Warn().Err(err).Msg("Failed to record recommendation event")
	}
}
