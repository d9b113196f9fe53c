package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	TimeOfDayLayout = "15:04"
	MinutesPerHour  = 60
	MinutesPerDay   = 24 * MinutesPerHour
)

const (
	QueryParamDay = "day"
	QueryParamAt  = "at"
)

const (
	BellAnnouncerFallbackCronSpec = "@every 1m"
)

// RateLimitWindowSeconds is the httprate window; APP_MAX_REQUESTS counts requests per window.
const RateLimitWindowSeconds = 1

const (
	LoggerFormatJSON    = "json"
	LoggerFormatConsole = "console"
)
