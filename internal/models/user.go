package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID           int64      `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name,omitempty"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
	Status       Status     `json:"status"`
}

// for registration
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address   string `json:"address,omitempty" validate:"omitempty,max=300"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User           *User `json:"user,omitempty"`
	RemainingTries int   `json:"remaining_tries,omitempty"`
	RetryAfter     int   `json:"retry_after,omitempty"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Address   string `json:"address" validate:"omitempty,max=300"`
}

// ProfileClaims identify one browser profile. They carry no user credential.
type ProfileClaims struct {
	ProfileID uuid.UUID `json:"profile_id"`
	jwt.RegisteredClaims
}

type SessionInfo struct {
	ProfileID uuid.UUID `json:"profile_id"`
	UserID    int64     `json:"user_id"`
	User      *User     `json:"user,omitempty"`
}
