package transport

import "github.com/brainboard/backend/domain"

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TriggerResponse wraps the manual ai-reminder result.
type TriggerResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	AIMessage *domain.Message `json:"aiMessage,omitempty"`
}

// NoticeResponse carries a human-readable confirmation, used by endpoints
// that mutate without returning a record.
type NoticeResponse struct {
	Message string `json:"message"`
}
