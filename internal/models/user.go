package models

import (
	"encoding/base64"
	"time"

	"github.com/sbilibin2017/gw-expense-note/internal/vault"
)

// User represents a user record.
// Password and SecurityAnswer are tagged secrets: the persistence layer seals
// plain values into hashes and never touches values that are already hashed.
type User struct {
	ID                       string       `json:"id"`
	Username                 string       `json:"username"`
	Email                    string       `json:"email"`
	FirstName                string       `json:"firstName"`
	LastName                 string       `json:"lastName"`
	Password                 vault.Secret `json:"-"`
	SecurityQuestion         string       `json:"securityQuestion"`
	SecurityAnswer           vault.Secret `json:"-"`
	PasswordResetToken       *string      `json:"-"`
	PasswordResetTokenExpiry *time.Time   `json:"-"`
	Image                    []byte       `json:"-"`
	APIToken                 *APIToken    `json:"-"`
	CreatedAt                time.Time    `json:"-"`
	UpdatedAt                time.Time    `json:"-"`
}

// Identity returns the claims a session token carries for the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email}
}

// ResetTokenValid reports whether the reset token is set and not yet expired at now.
func (u *User) ResetTokenValid(now time.Time) bool {
	if u.PasswordResetToken == nil || u.PasswordResetTokenExpiry == nil {
		return false
	}
	return !u.PasswordResetTokenExpiry.Before(now)
}

// UserResponse represents the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	// example: 1f0e2c4a-6a0b-4c1e-9a55-2f4b0c1d8e7a
	ID string `json:"id"`

	// example: mike
	Username string `json:"username"`

	// example: mike@example.com
	Email string `json:"email"`

	// example: Mike
	FirstName string `json:"firstName"`

	// example: Ross
	LastName string `json:"lastName"`

	// Base64 encoded profile image
	Image string `json:"image"`

	// example: What was the name of your first pet?
	SecurityQuestion string `json:"securityQuestion"`
}

// NewUserResponse builds the public view of u.
func NewUserResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		SecurityQuestion: u.SecurityQuestion,
	}
	if len(u.Image) > 0 {
		resp.Image = base64.StdEncoding.EncodeToString(u.Image)
	}
	return resp
}

// RegisterInput represents the fields of a registration request
// swagger:model RegisterInput
type RegisterInput struct {
	// required: true
	// example: mike
	Username string `json:"username" validate:"required"`

	// required: true
	// example: mike@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// example: Mike
	FirstName string `json:"firstName" validate:"required"`

	// required: true
	// example: Ross
	LastName string `json:"lastName" validate:"required"`

	// required: true
	// example: P@ssword123
	Password string `json:"password" validate:"required,strong_password"`

	// required: true
	// example: What was the name of your first pet?
	SecurityQuestion string `json:"securityQuestion" validate:"required"`

	// required: true
	// example: Rex
	SecurityAnswer string `json:"securityAnswer" validate:"required"`

	// Optional profile image, raw bytes
	Image []byte `json:"-"`
}

// LoginInput represents the JSON body for login
// swagger:model LoginInput
type LoginInput struct {
	// required: true
	// example: mike
	Username string `json:"username" validate:"required"`

	// required: true
	// example: P@ssword123
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput represents a partial profile update. Nil fields are left unchanged.
// swagger:model UpdateUserInput
type UpdateUserInput struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=1"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Password  *string `json:"password,omitempty" validate:"omitempty,strong_password"`
	Image     []byte  `json:"-"`
}

// AuthResponse is returned by register and login
// swagger:model AuthResponse
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
