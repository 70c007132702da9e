package types

import "time"

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

// ApiError carries one or more error detail strings alongside the status,
// so validation responses can report every violation at once.
type ApiError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Errors    []string  `json:"errors"`
}

func NewApiError(status int, message string, errs ...string) ApiError {
	return ApiError{
		Timestamp: time.Now(),
		Status:    status,
		Message:   message,
		Errors:    errs,
	}
}
