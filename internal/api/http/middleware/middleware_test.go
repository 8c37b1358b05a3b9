package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apitypes "github.com/weisyn/filegen/internal/api/types"
	clockimpl "github.com/weisyn/filegen/internal/core/infrastructure/clock"
	corelog "github.com/weisyn/filegen/internal/core/infrastructure/log"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGenerated(t *testing.T) {
	r := gin.New()
	r.Use(NewRequestID().Middleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}

func TestRequestIDPropagated(t *testing.T) {
	r := gin.New()
	r.Use(NewRequestID().Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestErrorHandlerPlainError(t *testing.T) {
	r := gin.New()
	r.Use(NewRequestID().Middleware(), ErrorHandler(zap.NewNop(), nil))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(HeaderRequestID, "trace-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), apitypes.CodeCommonInternalError)
	assert.Contains(t, w.Body.String(), `"traceId":"trace-1"`)
	assert.Contains(t, w.Body.String(), `"instance":"/boom"`)
}

func TestErrorHandlerProblemDetails(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), nil))
	r.GET("/gone", func(c *gin.Context) {
		_ = c.Error(apitypes.NewProblemDetails(
			apitypes.CodeStorageUnavailable, apitypes.LayerFileService,
			"存储不可用", "no space", http.StatusServiceUnavailable, nil))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gone", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), apitypes.CodeStorageUnavailable)
}

func TestErrorHandlerTimestampFromClock(t *testing.T) {
	clk := clockimpl.NewMockClock(time.Date(2024, 3, 1, 8, 30, 0, 0, time.FixedZone("CST", 8*3600)))
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), clk))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var problem apitypes.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "2024-03-01T00:30:00Z", problem.Timestamp)
}

func TestErrorHandlerNoErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), nil))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(zap.NewNop(), reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/get_file", func(c *gin.Context) { c.String(http.StatusOK, "abc") })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/get_file", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/get_file", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", unmatchedRoute, "404")))

	count, err := testutil.GatherAndCount(reg, "filegen_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAccessLogger(t *testing.T) {
	r := gin.New()
	r.Use(NewLogger(corelog.NewNop()).Middleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
