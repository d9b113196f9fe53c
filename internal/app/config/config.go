package config

import (
	"bellschedule-service/internal/pkg/constvars"
	"bellschedule-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnvFile merges variables from the given dotenv files into the process
// environment. Variables that are already set win.
func LoadEnvFile(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:                utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:       utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName:  utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessOutputFileName: utils.GetEnvString("LOGGER_ACCESS_OUTPUT_FILENAME", "access.log"),
			Format:               utils.GetEnvString("LOGGER_FORMAT", constvars.LoggerFormatJSON),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                  utils.GetEnvString("APP_PORT", ":3000"),
			Timezone:              utils.GetEnvString("APP_TIMEZONE", "Local"),
			EndpointPrefix:        utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			StaticDir:             utils.GetEnvString("APP_STATIC_DIR", "public"),
			MaxRequests:           utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:       utils.GetEnvDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
			BellAnnouncerEnabled:  utils.GetEnvBool("APP_BELL_ANNOUNCER_ENABLED", true),
			BellAnnouncerCronSpec: utils.GetEnvString("APP_BELL_ANNOUNCER_CRON_SPEC", "@every 1m"),
		},
	}
}
