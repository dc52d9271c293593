package dto

import (
	"errors"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs validation rules.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 64),
			validation.By(passwordComplexity),
		),
	)
}

// SigninRequest payload for credential login.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs validation rules.
func (r SigninRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// ForgotPasswordRequest payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Validate runs validation rules.
func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// ResetPasswordRequest payload.
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Validate runs validation rules.
func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 64),
			validation.By(passwordComplexity),
		),
	)
}

// VerifyEmailRequest payload.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// Validate runs validation rules.
func (r VerifyEmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
	)
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the sanitized user shape; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Verified:   user.IsVerified(),
		VerifiedAt: user.EmailVerified,
	}
}

// AccountResponse is a linked OAuth provider.
type AccountResponse struct {
	Provider string    `json:"provider"`
	LinkedAt time.Time `json:"linked_at"`
}

// ProfileResponse is the authenticated user's own view of their account.
type ProfileResponse struct {
	User     UserResponse      `json:"user"`
	Accounts []AccountResponse `json:"accounts"`
}

// NewProfileResponse maps a user and their provider links.
func NewProfileResponse(user *domain.User, accounts []domain.Account) ProfileResponse {
	linked := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		linked = append(linked, AccountResponse{Provider: account.Provider, LinkedAt: account.CreatedAt})
	}
	return ProfileResponse{User: NewUserResponse(user), Accounts: linked}
}

// passwordComplexity requires at least one upper, one lower and one digit.
func passwordComplexity(value interface{}) error {
	password, _ := value.(string)
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return errors.New("must contain an uppercase letter, a lowercase letter and a digit")
	}
	return nil
}
