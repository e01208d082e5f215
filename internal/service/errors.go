package service

import (
	"errors"
	"fmt"

	"todoList/internal/models/task"
	"todoList/internal/repository"
	"todoList/internal/storage"

	"github.com/google/uuid"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeStorage    = "STORAGE_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil && b.Err.Error() != b.Message {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(id uuid.UUID) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("task with id %s not found", id),
		Details: map[string]any{
			"resource": "task",
			"id":       id.String(),
		},
		Err: repository.ErrNotFound,
	}
}

func NewValidationError(err *task.ValidationError) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: err.Reason,
		Details: map[string]any{
			"field":  err.Field,
			"reason": err.Reason,
		},
		Err: err,
	}
}

func NewStorageError(err error) *BusinessError {
	return &BusinessError{
		Code:    CodeStorage,
		Message: "task storage is unavailable",
		Details: map[string]any{},
		Err:     err,
	}
}

// toBusinessError classifies errors coming up from the repository.
func toBusinessError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	var busErr *BusinessError
	if errors.As(err, &busErr) {
		return busErr
	}

	var vErr *task.ValidationError
	if errors.As(err, &vErr) {
		return NewValidationError(vErr)
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewNotFound(id)
	}

	var sErr *storage.Error
	if errors.As(err, &sErr) {
		return NewStorageError(err)
	}

	return &BusinessError{
		Code:    CodeInternal,
		Message: "unexpected error",
		Details: map[string]any{},
		Err:     err,
	}
}

func IsNotFound(err error) bool {
	var busErr *BusinessError
	return errors.As(err, &busErr) && busErr.Code == CodeNotFound
}

func IsValidation(err error) bool {
	var busErr *BusinessError
	return errors.As(err, &busErr) && busErr.Code == CodeValidation
}
