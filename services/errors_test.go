package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_KindsAndUnwrap(t *testing.T) {
	cause := errors.New("no such table: notes")
	err := storageFailure("list notes", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "storage failure: list notes: no such table: notes", err.Error())

	nf := notFound("user %s not found", "u1")
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.Equal(t, "not found: user u1 not found", nf.Error())

	var typed *Error
	assert.True(t, errors.As(nf, &typed))
	assert.Equal(t, "user u1 not found", typed.Context)
}
