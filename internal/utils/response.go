package utils

import "time"

// APIResponse wraps mutation results that carry a human-readable outcome,
// such as a cancellation that may or may not have been refunded. Read
// endpoints return their payloads bare; errors go through http.Error with
// the status derived from the error kind.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SuccessResponse builds the envelope for a completed action, e.g.
// "Booking cancelled and refunded" with the updated booking as data.
func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}
