package logger

import (
	"bellschedule-service/internal/app/config"
	"bellschedule-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the access logger. Production appends JSON lines to
// LOGGER_ACCESS_OUTPUT_FILENAME and falls back to stderr if the file cannot be opened.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	if internalConfig.App.Env != constvars.AppEnvProduction {
		logger.SetFormatter(&logrus.TextFormatter{})
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	filename := driverConfig.Logger.AccessOutputFileName
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.WithError(err).WithField("filename", filename).Warn("Failed to open access log file, using stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}
