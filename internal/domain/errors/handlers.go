package errors

import (
	"profilecard/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PROFILE_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// Code returns the business error code carried by err, or "" when none.
func Code(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.ErrorCode()
	}

	return ""
}
