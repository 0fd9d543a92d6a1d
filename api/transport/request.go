package transport

import (
	"github.com/go-playground/validator/v10"

	"github.com/brainboard/backend/domain"
)

var validate = validator.New()

// Validatable is implemented by requests that carry required fields.
type Validatable interface {
	Validate() error
}

type CreateNotificationRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r CreateNotificationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "Title and message are required", err)
	}
	return nil
}

// UpdateNotificationRequest merges field by field: empty strings are treated
// as "not provided", IsRead merges whenever the key is present in the body.
type UpdateNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	IsRead  *bool  `json:"isRead"`
}

type CreateMessageRequest struct {
	Sender  string `json:"sender" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r CreateMessageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "Sender and message are required", err)
	}
	return nil
}

type UpdateMessageRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	IsRead  *bool  `json:"isRead"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate"`
}

func (r CreateTaskRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "Title and description are required", err)
	}
	return nil
}

type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

type CreateSearchItemRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

func (r CreateSearchItemRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "Title is required", err)
	}
	return nil
}
