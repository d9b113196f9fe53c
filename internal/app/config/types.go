package config

import "time"

type (
	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                   string
		Port                  string
		Timezone              string
		EndpointPrefix        string
		StaticDir             string
		MaxRequests           int
		ShutdownTimeout       time.Duration
		BellAnnouncerEnabled  bool
		BellAnnouncerCronSpec string
	}

	Logger struct {
		Level                string
		OutputFileName       string
		OutputErrorFileName  string
		AccessOutputFileName string
		Format               string
	}
)
