package dto

import "time"

// APIResponse represents a standard success envelope for API endpoints
type APIResponse struct {
	Success   bool         `json:"success"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp,omitempty"`
}

// ListResponse is the envelope for collection endpoints, carrying the
// element count alongside the data.
type ListResponse struct {
	Success   bool        `json:"success"`
	Count     int         `json:"count"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}
