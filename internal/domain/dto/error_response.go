package dto

import "time"

// ErrorResponse is the standardized JSON error body used outside the
// endpoint envelopes (panic recovery, unknown failures).
//
// Fields:
//   - Message: operator-safe description of what failed.
//   - ErrorDetails: underlying error text, omitted when empty.
//   - Timestamp: when the error response was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Server error"`
	ErrorDetails string    `json:"error,omitempty" example:"connection refused"`
	Timestamp    time.Time `json:"timestamp" example:"2024-02-14T10:30:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// up call boundaries like any other error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse from a message and an
// optional underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
