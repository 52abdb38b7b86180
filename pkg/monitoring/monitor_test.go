package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCounters(t *testing.T) {
	Init()

	before := testutil.ToFloat64(QuestionGenerations.WithLabelValues("gemini", "true"))
	RecordGeneration("gemini", true)
	if got := testutil.ToFloat64(QuestionGenerations.WithLabelValues("gemini", "true")); got != before+1 {
		t.Fatalf("question_generations_total: got=%v want=%v", got, before+1)
	}

	before = testutil.ToFloat64(SuggestionsBuilt.WithLabelValues("company_focus"))
	RecordSuggestion("company_focus")
	if got := testutil.ToFloat64(SuggestionsBuilt.WithLabelValues("company_focus")); got != before+1 {
		t.Fatalf("suggestions_built_total: got=%v want=%v", got, before+1)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()

	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", PrometheusHandler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: got=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `http_requests_total{endpoint="/ping",method="GET",status="200"}`) {
		t.Fatalf("request counter missing from /metrics output")
	}
}
