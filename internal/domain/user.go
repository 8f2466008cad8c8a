package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrEmailInvalid      = errors.New("email is missing or malformed")
	ErrPasswordRequired  = errors.New("password is required")
	ErrPasswordMismatch  = errors.New("password does not match")
)

// User is keyed by email; there is no surrogate ID.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
