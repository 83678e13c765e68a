package commands

import (
	"daily-journal/services"
	"errors"
	"log/slog"
)

// Codes carried by FrontendError.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeDatabase      = "DATABASE_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
)

const genericStorageMessage = "A database error occurred. Please try again."

// FrontendError is the only error shape that leaves the boundary. It never
// carries driver or SQL text.
type FrontendError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *FrontendError) Error() string {
	return e.Message
}

// translate logs err in full and returns its sanitized form.
func translate(logger *slog.Logger, command string, err error) *FrontendError {
	logger.Error("command failed", "command", command, "error", err)

	var svcErr *services.Error
	switch {
	case errors.Is(err, services.ErrNotFound) && errors.As(err, &svcErr):
		return &FrontendError{Message: svcErr.Context, Code: CodeNotFound}
	case errors.Is(err, services.ErrAlreadyExists):
		return &FrontendError{Message: "A user with this email already exists", Code: CodeAlreadyExists}
	default:
		return &FrontendError{Message: genericStorageMessage, Code: CodeDatabase}
	}
}
