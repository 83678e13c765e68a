package models

import "time"

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UpdateUserRequest is a partial update. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1,max=200"`
}

func NewUser(id, email, name string, now time.Time) *User {
	ts := Timestamp(now)
	return &User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// Apply merges the present fields of req into u and refreshes UpdatedAt.
func (u *User) Apply(req UpdateUserRequest, now time.Time) {
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	u.UpdatedAt = Timestamp(now)
}
