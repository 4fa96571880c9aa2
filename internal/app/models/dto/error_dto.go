package dto

import "fmt"

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInternalServer   ErrorCode = "SRV_001"
	ErrorCodeCatalogError     ErrorCode = "SRV_002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityWarning ErrorSeverity = "WARNING"
	ErrorSeverityError   ErrorSeverity = "ERROR"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code      ErrorCode     `json:"code" example:"RES_001"`
	Message   string        `json:"message" example:"course \"00234218\" not found"`
	Field     string        `json:"field,omitempty" example:"q"`
	Severity  ErrorSeverity `json:"severity" example:"ERROR"`
	DebugInfo string        `json:"debugInfo,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField sets the request field the error refers to
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDebugInfo adds debug information (for development/testing only)
func (e *ErrorDetail) WithDebugInfo(format string, args ...interface{}) *ErrorDetail {
	e.DebugInfo = fmt.Sprintf(format, args...)
	return e
}
