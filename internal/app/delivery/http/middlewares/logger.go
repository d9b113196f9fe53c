package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access log line per request through logrus.
func (m *Middlewares) RequestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.WithFields(logrus.Fields{
				"remote_addr": r.RemoteAddr,
				"method":      r.Method,
				"uri":         r.RequestURI,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration":    time.Since(start).String(),
			}).Info("request served")
		})
	}
}
