package domain

import (
	"strings"
	"time"
)

// UserRole enumerates access levels.
type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleStaff    UserRole = "STAFF"
)

// User is the identity record behind both storefront and admin sessions.
// PasswordHash is empty for accounts created through an OAuth provider.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	EmailVerified *time.Time
	Role          UserRole
	IsActive      bool
	IsBanned      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPassword reports whether the account carries a credential password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// IsVerified reports whether the email has been confirmed.
func (u *User) IsVerified() bool {
	return u.EmailVerified != nil
}

// NormalizeEmail lowercases and trims an email for case-insensitive comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
