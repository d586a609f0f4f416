package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EvaluationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitscore_evaluation_duration_seconds",
			Help:    "Evaluation pipeline duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		},
		[]string{"mode"},
	)

	EvaluationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitscore_evaluation_total",
			Help: "Total number of candidate evaluations",
		},
		[]string{"submittable"},
	)

	ComponentScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitscore_component_score",
			Help:    "Per-component score distribution",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		[]string{"component"},
	)

	TotalScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitscore_total_score",
			Help:    "Weighted total score distribution",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 8.2, 9, 10},
		},
	)

	RedFlagPenalty = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitscore_red_flag_penalty",
			Help:    "Raw red flag penalty distribution",
			Buckets: []float64{-50, -30, -25, -15, -10, -5, 0},
		},
	)

	InsightRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitscore_insight_requests_total",
			Help: "Total insight service calls",
		},
		[]string{"operation", "status"},
	)

	InsightFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitscore_insight_fallbacks_total",
			Help: "Insight calls that fell back to heuristics",
		},
		[]string{"operation"},
	)
)

func Init() {
	prometheus.MustRegister(EvaluationDuration)
	prometheus.MustRegister(EvaluationTotal)
	prometheus.MustRegister(ComponentScore)
	prometheus.MustRegister(TotalScore)
	prometheus.MustRegister(RedFlagPenalty)
	prometheus.MustRegister(InsightRequests)
	prometheus.MustRegister(InsightFallbacks)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
