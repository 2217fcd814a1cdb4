// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	CompatibilityEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compatibility_evaluations_total",
			Help: "Total number of creator compatibility evaluations by rating label",
		},
		[]string{"rating"},
	)

	RankingBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_batch_size",
			Help:    "Number of creators per ranking request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	ProfileCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_cache_requests_total",
			Help: "Creator profile cache lookups by outcome (hit, miss, error)",
		},
		[]string{"outcome"},
	)
)
