package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK = 200

	StatusBadRequest       = 400
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusTooManyRequests  = 429

	StatusInternalServerError = 500
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderLink        = "Link"
	HeaderRetryAfter  = "Retry-After"
	HeaderXRequestID  = "X-Request-ID"
)
