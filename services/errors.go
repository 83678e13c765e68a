package services

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrStorage       = errors.New("storage failure")
)

// Error carries one of the kinds above, a short context and the underlying cause.
type Error struct {
	Kind    error
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Context: fmt.Sprintf(format, args...)}
}

func alreadyExists(context string, err error) error {
	return &Error{Kind: ErrAlreadyExists, Context: context, Err: err}
}

func storageFailure(context string, err error) error {
	return &Error{Kind: ErrStorage, Context: context, Err: err}
}
