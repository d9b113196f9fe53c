package middlewares

import (
	"bellschedule-service/internal/pkg/constvars"
	"bellschedule-service/internal/pkg/exceptions"
	"bellschedule-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrRouteNotFound(r.Method, r.URL.Path))
}

func (m *Middlewares) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrMethodNotAllowed(r.Method, r.URL.Path))
}

func (m *Middlewares) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(constvars.RateLimitWindowSeconds))
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(r.RemoteAddr))
}
