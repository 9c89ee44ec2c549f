// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

// Package metrics provides Prometheus instrumentation for the API surface,
// the recommendation engine, and the SQLite store.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sds_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sds_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sds_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Recommendation engine metrics.
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sds_recommendations_served_total",
			Help: "Total recommendation requests served, by boost availability",
		},
		[]string{"boosted"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sds_recommendation_duration_seconds",
			Help:    "End-to-end duration of recommendation requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SimilarStudentQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sds_similar_student_queries_total",
			Help: "Total similar-student queries served",
		},
	)

	IndexSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sds_index_students",
			Help: "Number of historical students in the active similarity index",
		},
	)

	IndexRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sds_index_rebuilds_total",
			Help: "Total similarity index rebuilds, by outcome",
		},
		[]string{"outcome"}, // "success", "error"
	)

	IndexLastRebuild = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sds_index_last_rebuild_timestamp_seconds",
			Help: "Unix timestamp of the last successful index rebuild",
		},
	)

	// Store metrics.
	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sds_db_query_errors_total",
			Help: "Total number of database query errors",
		},
		[]string{"operation"},
	)
)

// ObserveAPIRequest records one finished API request.
func ObserveAPIRequest(method, path string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveRecommendation records one served recommendation request.
func ObserveRecommendation(boosted bool, duration time.Duration) {
	RecommendationsServed.WithLabelValues(strconv.FormatBool(boosted)).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// ObserveIndexRebuild records one index rebuild attempt.
func ObserveIndexRebuild(err error, students int) {
	if err != nil {
		IndexRebuilds.WithLabelValues("error").Inc()
		return
	}
	IndexRebuilds.WithLabelValues("success").Inc()
	IndexSize.Set(float64(students))
	IndexLastRebuild.SetToCurrentTime()
}
