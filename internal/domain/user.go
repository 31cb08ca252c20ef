package domain

import (
	"context"
	"errors"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("username or email already exists")
	// ErrPersistenceDisabled is returned by every user operation when no database is configured.
	ErrPersistenceDisabled = errors.New("database not available")
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=80,valid_username"`
	Email    string `json:"email" binding:"required,email,max=120"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=80,valid_username"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	Enabled() bool
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}
