package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user@example.com"))
}

func TestUserFlags(t *testing.T) {
	var user User
	assert.False(t, user.HasPassword())
	assert.False(t, user.IsVerified())

	now := time.Now()
	user.PasswordHash = "hash"
	user.EmailVerified = &now
	assert.True(t, user.HasPassword())
	assert.True(t, user.IsVerified())
}

func TestVerificationTokenExpired(t *testing.T) {
	token := VerificationToken{ExpiresAt: time.Now().Add(time.Minute)}
	assert.False(t, token.Expired(time.Now()))
	assert.True(t, token.Expired(time.Now().Add(2*time.Minute)))
	// a token expiring exactly now is still valid; expiry is strict
	at := time.Now()
	token.ExpiresAt = at
	assert.False(t, token.Expired(at))
}

func TestOrderTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 2, PriceCents: 1500},
		{Quantity: 1, PriceCents: 300},
	}}
	assert.Equal(t, int64(3300), order.Total())

	var empty Order
	assert.Zero(t, empty.Total())
}
