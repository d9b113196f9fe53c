package middlewares

import (
	"bellschedule-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	m := NewMiddlewares(zap.NewNop())

	var gotID string
	var gotIsClient bool
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		gotIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("Generated when missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/schedule", nil))

		assert.NotEmpty(t, gotID)
		assert.False(t, gotIsClient)
		assert.Equal(t, gotID, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
		req.Header.Set(constvars.HeaderXRequestID, "abc-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", gotID)
		assert.True(t, gotIsClient)
		assert.Equal(t, "abc-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewMiddlewares(zap.New(core))

	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/current-block", nil))

	assert.Equal(t, 1, logs.FilterMessage("API request started").Len())
	completed := logs.FilterMessage("API request completed").All()
	if assert.Len(t, completed, 1) {
		fields := completed[0].ContextMap()
		assert.EqualValues(t, http.StatusTeapot, fields[constvars.LoggingStatusCodeKey])
		assert.Equal(t, false, fields[constvars.LoggingSuccessKey])
		assert.Equal(t, "/api/current-block", fields[constvars.LoggingEndpointKey])
	}
}
