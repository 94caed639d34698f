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

	SubmissionsScored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_scored_total",
			Help: "Number of answers scored and persisted",
		},
		[]string{"kind"},
	)

	SubmissionScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "submission_score",
			Help:    "Distribution of per-answer scores",
			Buckets: []float64{0, 0.1, 0.2, 0.4, 0.6, 0.8, 1, 1.2, 1.4, 1.6, 1.8, 2},
		},
		[]string{"kind"},
	)

	CascadeDeletes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soft_delete_cascades_total",
			Help: "Soft-delete cascades by parent kind and outcome",
		},
		[]string{"kind", "result"},
	)
)

var registerOnce sync.Once

// Init 注册全部指标，重复调用无副作用
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(SubmissionsScored)
		prometheus.MustRegister(SubmissionScore)
		prometheus.MustRegister(CascadeDeletes)
	})
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

// ObserveScores 记录一次提交中各题得分
func ObserveScores(kind string, scores []float64) {
	SubmissionsScored.WithLabelValues(kind).Add(float64(len(scores)))
	for _, s := range scores {
		SubmissionScore.WithLabelValues(kind).Observe(s)
	}
}
