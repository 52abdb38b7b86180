package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	QuestionGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_generations_total",
			Help: "Question generation calls by provider and whether the fallback was used",
		},
		[]string{"provider", "fallback"},
	)

	SuggestionsBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestions_built_total",
			Help: "Daily suggestions built, by the rule that produced them",
		},
		[]string{"rule"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(QuestionGenerations)
		prometheus.MustRegister(SuggestionsBuilt)
	})
}

func RecordGeneration(provider string, usedFallback bool) {
	QuestionGenerations.WithLabelValues(provider, strconv.FormatBool(usedFallback)).Inc()
}

func RecordSuggestion(rule string) {
	SuggestionsBuilt.WithLabelValues(rule).Inc()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
