package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingIsClientRequestID  = "is_client_request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingWeekdayKey         = "weekday"
	LoggingMinuteOfDayKey     = "minute_of_day"
	LoggingPeriodCountKey     = "period_count"
	LoggingBlockKey           = "block"
	LoggingPeriodNameKey      = "period_name"
	LoggingStartKey           = "start"
	LoggingEndKey             = "end"
	LoggingSchoolDayKey       = "school_day"
	LoggingCronSpecKey        = "cron_spec"
	LoggingResponseMessageKey = "response_message"
	LoggingBusinessEventKey   = "business_event"
	LoggingTimestampKey       = "timestamp"
)
