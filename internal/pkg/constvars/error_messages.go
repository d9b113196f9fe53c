package constvars

// Error messages for validation
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of [%s]",
	"weekday":  "must be a day of the week, for example monday",
	"hhmm":     "must be a time of day in HH:MM format",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientResourceNotFound              = "the requested resource does not exist"
	ErrClientMethodNotAllowed              = "the requested method is not allowed on this resource"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevValidationFailed = "validation failed"
	ErrDevMissingRequestID = "request id not found in context"
	ErrDevRouteNotFound    = "no route registered for %s %s"
	ErrDevMethodNotAllowed = "method %s is not registered for %s"
	ErrDevPanicRecovered   = "recovered from panic while serving request"
	ErrDevTooManyRequests  = "rate limit exceeded for %s"
	ErrDevInvalidTimeOfDay = "invalid time of day %q"
	ErrDevInvalidWeekday   = "invalid weekday %q"
	ErrDevInvalidBellTable = "invalid bell table period at index %d"
	ErrDevInvalidLocation  = "invalid timezone %q"
)
