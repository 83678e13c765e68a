package services

import (
	"context"
	"daily-journal/database"
	"daily-journal/models"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UserService manages user profiles
type UserService struct {
	repo  UserRepository
	now   Clock
	newID IDGenerator
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Get returns the user with userID or an ErrNotFound error.
func (us *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := us.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, storageFailure("get user", err)
	}
	if user == nil {
		return nil, notFound("user %s not found", userID)
	}
	return user, nil
}

// Create registers a new user. A taken email yields ErrAlreadyExists.
func (us *UserService) Create(ctx context.Context, email, name string) (*models.User, error) {
	user := models.NewUser(us.newID(), email, name, us.now())

	if err := us.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, alreadyExists("email already registered", err)
		}
		return nil, storageFailure("create user", err)
	}
	return user, nil
}

// Update applies the fields present in req to an existing user.
func (us *UserService) Update(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := us.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Apply(req, us.now())

	found, err := us.repo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, alreadyExists("email already registered", err)
		}
		return nil, storageFailure("update user", err)
	}
	// Removed between the read and the write
	if !found {
		return nil, notFound("user %s not found", userID)
	}
	return user, nil
}
