package dto

import "time"

// APIResponse is the envelope of every API response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful response
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse wraps an error detail in a failed response
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	}
}
