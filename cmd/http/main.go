package main

import (
	"bellschedule-service/internal/app/config"
	"bellschedule-service/internal/app/delivery/http/controllers"
	"bellschedule-service/internal/app/delivery/http/middlewares"
	"bellschedule-service/internal/app/delivery/http/routers"
	"bellschedule-service/internal/app/drivers/logger"
	"bellschedule-service/internal/app/services/core/schedules"
	"bellschedule-service/internal/pkg/exceptions"
	"bellschedule-service/internal/pkg/utils"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading configuration")
	pflag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Printf("No env file loaded from %s, using process environment: %v", *envFile, err)
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	defer zapLogger.Sync()
	accessLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := utils.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(exceptions.ErrInvalidLocation(err, internalConfig.App.Timezone)))
	}

	chiRouter := chi.NewRouter()

	bootstrap, err := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		Location:       location,
		InternalConfig: internalConfig,
	})
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		internalConfig.App.ShutdownTimeout,
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Failed to release resources", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) (*config.Bootstrap, error) {
	// Schedule
	bellTable, err := schedules.NewBellTable(schedules.DefaultBellPeriods())
	if err != nil {
		return nil, err
	}
	rotationResolver := schedules.NewRotationResolver(schedules.DefaultRotationTable())
	scheduleUsecase := schedules.NewScheduleUsecase(rotationResolver, bellTable, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase, bootstrap.Location)

	// Bell announcer
	if bootstrap.InternalConfig.App.BellAnnouncerEnabled {
		announcer := schedules.NewBellAnnouncer(bootstrap.Logger, bootstrap.InternalConfig, scheduleUsecase, bootstrap.Location)
		announcer.Start()
		bootstrap.WorkerStop = announcer.Stop
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, bootstrap.AccessLogger, middlewares, scheduleController)

	return &bootstrap, nil
}
