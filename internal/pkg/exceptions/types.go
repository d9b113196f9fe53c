package exceptions

import (
	"bellschedule-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidTimeOfDay = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidTimeOfDay, value))
	}
	ErrInvalidWeekday = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidWeekday, value))
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}

	// Routing
	ErrRouteNotFound = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevRouteNotFound, method, path))
	}
	ErrMethodNotAllowed = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusMethodNotAllowed, constvars.ErrClientMethodNotAllowed, fmt.Sprintf(constvars.ErrDevMethodNotAllowed, method, path))
	}
	ErrTooManyRequests = func(remoteAddr string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, remoteAddr))
	}

	// Bell schedule configuration
	ErrInvalidBellTable = func(err error, index int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevInvalidBellTable, index))
	}
	ErrInvalidLocation = func(err error, timezone string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevInvalidLocation, timezone))
	}

	// Default Server
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}
)
