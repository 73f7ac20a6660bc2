package common

import "time"

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Code      string            `json:"code,omitempty"`
	Info      string            `json:"info,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// MessageResponse represents a success response carrying only a message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	Time        time.Time `json:"time"`
}
