package model

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// AuthProvider names how a user signs in.
type AuthProvider string

const (
	AuthLocal  AuthProvider = "local"
	AuthGoogle AuthProvider = "google"
)

// User is the signed-in account.
type User struct {
	ID           string       `json:"_id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Email        string       `json:"email" yaml:"email"`
	AuthProvider AuthProvider `json:"authProvider" yaml:"auth_provider"`
	CreatedAt    time.Time    `json:"createdAt" yaml:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" yaml:"updated_at"`
}

// LoginInput holds email/password credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login form.
func (input LoginInput) Validate() error {
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	if input.Password == "" {
		return invalid("password is required")
	}
	return nil
}

// RegisterInput creates a local account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MinPasswordLength is the shortest password the register form accepts.
const MinPasswordLength = 6

// Validate checks the registration form.
func (input RegisterInput) Validate() error {
	if strings.TrimSpace(input.Name) == "" {
		return invalid("name is required")
	}
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	return validatePassword(input.Password)
}

// ProfileUpdate changes account details. Empty fields are left unchanged.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Validate checks the profile form.
func (input ProfileUpdate) Validate() error {
	if strings.TrimSpace(input.Name) == "" && strings.TrimSpace(input.Email) == "" {
		return invalid("nothing to update")
	}
	if input.Email != "" {
		return validateEmail(input.Email)
	}
	return nil
}

// ResetPasswordInput sets a new password for an email.
type ResetPasswordInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the reset form.
func (input ResetPasswordInput) Validate() error {
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	return validatePassword(input.Password)
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid(fmt.Sprintf("invalid email %q", email))
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return invalid(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return nil
}
