package config

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	Location       *time.Location
	InternalConfig *InternalConfig
	// WorkerStop if set will be called during Shutdown to stop the bell announcer
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped background workers")
	}

	return ctx.Err()
}
