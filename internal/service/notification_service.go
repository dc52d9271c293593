package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/events"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/mail"
)

// NotificationService turns auth and order events into outbound email.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	tokens     *TokenService
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, tokens *TokenService, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		tokens:     tokens,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
	n.dispatcher.Subscribe(events.EventEmailVerified, n.handleEmailVerified)
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserRegisteredPayload)
	if !ok {
		return nil
	}
	ttl := n.tokens.TTLMinutes(domain.TokenPurposeVerifyEmail)
	if err := n.mailer.SendVerificationEmail(payload.Email, payload.Token, ttl); err != nil {
		n.logger.Error("send verification email", zap.Error(err), zap.String("email", payload.Email))
		return err
	}
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PasswordResetRequestedPayload)
	if !ok {
		return nil
	}
	ttl := n.tokens.TTLMinutes(domain.TokenPurposePasswordReset)
	if err := n.mailer.SendPasswordResetEmail(payload.Email, payload.Token, ttl); err != nil {
		n.logger.Error("send reset email", zap.Error(err), zap.String("email", payload.Email))
		return err
	}
	return nil
}

func (n *NotificationService) handleEmailVerified(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmailVerifiedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("email verified", zap.String("user_id", payload.UserID))
	return nil
}

func (n *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderCreatedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("order created",
		zap.String("order_id", payload.OrderID),
		zap.String("store_id", payload.StoreID),
		zap.Int64("total_cents", payload.TotalCents),
		zap.Int("items", payload.ItemCount))
	return nil
}
