package validator

import (
	"daily-journal/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidator_CreateUser(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateUserRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid request",
			req:       models.CreateUserRequest{Email: "alice@example.com", Name: "Alice"},
			wantError: false,
		},
		{
			name:      "Missing email",
			req:       models.CreateUserRequest{Email: "", Name: "Alice"},
			wantError: true,
			errorMsg:  "email is required",
		},
		{
			name:      "Invalid email",
			req:       models.CreateUserRequest{Email: "not-an-email", Name: "Alice"},
			wantError: true,
			errorMsg:  "email must be a valid email address",
		},
		{
			name:      "Missing name",
			req:       models.CreateUserRequest{Email: "alice@example.com"},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name:      "Name too long",
			req:       models.CreateUserRequest{Email: "alice@example.com", Name: strings.Repeat("a", 201)},
			wantError: true,
			errorMsg:  "name must be at most 200 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UpdateUser(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(models.UpdateUserRequest{}))
	assert.NoError(t, v.Validate(models.UpdateUserRequest{Name: strPtr("Bob")}))
	assert.NoError(t, v.Validate(models.UpdateUserRequest{Email: strPtr("bob@example.com")}))

	err := v.Validate(models.UpdateUserRequest{Email: strPtr("bob")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")

	errs, ok := err.(ValidationErrors)
	assert.True(t, ok)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email", errs[0].Tag)
}

func TestValidator_Var(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("key", "editor.font_size", "settingkey"))
	assert.NoError(t, v.Var("key", "theme", "settingkey"))

	err := v.Var("key", "bad key!", "settingkey")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "key may only contain")

	err = v.Var("key", "", "settingkey")
	assert.Error(t, err)
}
