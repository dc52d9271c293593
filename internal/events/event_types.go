package events

import (
	"time"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user.registered"
	EventPasswordResetRequested EventType = "password_reset.requested"
	EventEmailVerified          EventType = "email.verified"
	EventOrderCreated           EventType = "order.created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload carries the data the verification email needs.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// PasswordResetRequestedPayload carries the data the reset email needs.
type PasswordResetRequestedPayload struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// EmailVerifiedPayload marks a completed verification.
type EmailVerifiedPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderID    string `json:"order_id"`
	StoreID    string `json:"store_id"`
	TotalCents int64  `json:"total_cents"`
	ItemCount  int    `json:"item_count"`
}

// item count convenience for order payloads.
func NewOrderCreatedPayload(order *domain.Order) OrderCreatedPayload {
	return OrderCreatedPayload{
		OrderID:    order.ID,
		StoreID:    order.StoreID,
		TotalCents: order.Total(),
		ItemCount:  len(order.Items),
	}
}
