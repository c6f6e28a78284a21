package response

import (
	"time"

	"warehouse/pkg/apperror"
	"warehouse/pkg/pagination"
)

// Response represents a standard API response format
type Response struct {
	Success   bool                   `json:"success"`
	Timestamp string                 `json:"timestamp"`
	Data      interface{}            `json:"data,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Error     *ErrorBody             `json:"error,omitempty"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
}

// ErrorBody is the error block of a failed response
type ErrorBody struct {
	Message    string                `json:"message"`
	Code       string                `json:"code"`
	StatusCode int                   `json:"statusCode"`
	Details    []apperror.FieldError `json:"details,omitempty"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Success returns a standard success response wrapping the data
func Success(data interface{}, message string) Response {
	return Response{
		Success:   true,
		Timestamp: now(),
		Data:      data,
		Message:   message,
	}
}

// SuccessWithPagination wraps a page of results and its pagination meta
func SuccessWithPagination(data interface{}, meta pagination.Meta, message string) Response {
	resp := Success(data, message)
	resp.Meta = map[string]interface{}{"pagination": meta}
	return resp
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, code, message string, details ...apperror.FieldError) Response {
	return Response{
		Success:   false,
		Timestamp: now(),
		Error: &ErrorBody{
			Message:    message,
			Code:       code,
			StatusCode: statusCode,
			Details:    details,
		},
	}
}
