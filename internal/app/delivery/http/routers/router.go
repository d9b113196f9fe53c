package routers

import (
	"bellschedule-service/internal/app/config"
	"bellschedule-service/internal/app/delivery/http/controllers"
	"bellschedule-service/internal/app/delivery/http/middlewares"
	"bellschedule-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	scheduleController *controllers.ScheduleController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RequestLogger(accessLogger))
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodHead, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.Limit(
			internalConfig.App.MaxRequests,
			constvars.RateLimitWindowSeconds*time.Second,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(middlewares.TooManyRequests),
		))
	}

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.NotFound(middlewares.NotFound)
		r.MethodNotAllowed(middlewares.MethodNotAllowed)

		attachScheduleRoutes(r, scheduleController)
	})

	// Everything outside the API prefix is the static front page.
	if internalConfig.App.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(internalConfig.App.StaticDir))
		router.Get("/*", fileServer.ServeHTTP)
		router.Head("/*", fileServer.ServeHTTP)
	}
}
