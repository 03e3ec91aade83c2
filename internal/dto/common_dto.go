package dto

import "github.com/google/uuid"

// ErrorResponse is the uniform failure envelope. Message is safe for display;
// Err carries the underlying error text for diagnostics only.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Err     string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// DataResponse wraps a single record.
type DataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// PagedResponse bundles a data page with count metadata. Count is the number
// of records in this page; Total counts every record matching the filter.
type PagedResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	Data    interface{} `json:"data"`
}

// DeleteResponse acknowledges a hard delete.
type DeleteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	DeletedID string `json:"deletedId"`
}

// CreatorRef is the display-safe subset of the creating admin, resolved on
// every record response. Never includes credentials.
type CreatorRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
