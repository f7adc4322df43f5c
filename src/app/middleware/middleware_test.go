package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lessonbox/src/app/http/response"
	"lessonbox/src/core/domain"
	"lessonbox/src/infra/config"
	"lessonbox/src/infra/logger"
)

func newRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, buf)

	r := gin.New()
	r.Use(RequestID(), Logging(log), Recovery(log))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })
	r.GET("/ok", func(c *gin.Context) { response.OK(c, "fine") })
	return r
}

func TestRecoveryAnswersInternalError(t *testing.T) {
	var logs bytes.Buffer
	r := newRouter(&logs)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body response.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, domain.KindUnclassified, body.Error.Kind)
	assert.Equal(t, "req-7", body.Error.RequestID)
	assert.NotContains(t, rec.Body.String(), "kaboom")

	assert.Contains(t, logs.String(), "ERROR panic recovered request_id=req-7")
	assert.Contains(t, logs.String(), "kind=unclassified")
}

func TestLoggingTagsRequestID(t *testing.T) {
	var logs bytes.Buffer
	r := newRouter(&logs)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logs.String(), "INFO request handled request_id=req-42 method=GET path=/ok status=200")
}
