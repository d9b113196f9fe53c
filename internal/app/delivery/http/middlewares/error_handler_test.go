package middlewares

import (
	"bellschedule-service/internal/pkg/constvars"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	m := NewMiddlewares(zap.NewNop())

	panics := map[string]interface{}{
		"String panic": "boom",
		"Error panic":  errors.New("boom"),
		"Other panic":  42,
	}

	for name, value := range panics {
		t.Run(name, func(t *testing.T) {
			handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(value)
			}))

			rr := httptest.NewRecorder()
			require.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/schedule", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
		})
	}

	t.Run("Passes through without panic", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	m := NewMiddlewares(zap.NewNop())

	rr := httptest.NewRecorder()
	m.NotFound(rr, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	m.MethodNotAllowed(rr, httptest.NewRequest(http.MethodDelete, "/api/schedule", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	m.TooManyRequests(rr, httptest.NewRequest(http.MethodGet, "/api/schedule", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get(constvars.HeaderRetryAfter))
}
