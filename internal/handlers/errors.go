package handlers

import (
	"errors"
	"net/http"

	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"go.uber.org/zap"
)

// asBusinessError also accepts bare validation errors raised while parsing
// request input.
func asBusinessError(err error) *service.BusinessError {
	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		return businessErr
	}
	var vErr *task.ValidationError
	if errors.As(err, &vErr) {
		return service.NewValidationError(vErr)
	}
	return nil
}

func handleBusinessError(w http.ResponseWriter, err error) bool {
	businessErr := asBusinessError(err)
	if businessErr == nil {
		return false
	}

	statusCode := mapBusinessErrorToHTTP(businessErr.Code)
	if statusCode >= http.StatusInternalServerError {
		logger.Error("HTTP: Business error", err,
			zap.String("error_code", businessErr.Code),
			zap.Int("http_status", statusCode))
	} else {
		logger.Warn("HTTP: Business error",
			zap.String("error_code", businessErr.Code),
			zap.Int("http_status", statusCode))
	}

	responseWithJSON(w, statusCode,
		toPayload("error", businessErr.Code),
		toPayload("message", businessErr.Message),
		toPayload("details", businessErr.Details),
	)
	return true
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodeStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error, operation string) {
	if handleBusinessError(w, err) {
		return
	}
	logger.Error("HTTP: Service error", err, zap.String("operation", operation))
	responseWithError(w, http.StatusInternalServerError, "internal error")
}
