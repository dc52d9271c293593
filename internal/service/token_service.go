package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/config"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
)

// TokenService issues and consumes single-use verification tokens. Expiry is
// strict for both purposes: a token is valid only while expires_at is in the
// future.
type TokenService struct {
	tokens    repository.VerificationTokenRepository
	verifyTTL time.Duration
	resetTTL  time.Duration
}

// NewTokenService builds the service from auth config.
func NewTokenService(cfg config.AuthConfig, tokens repository.VerificationTokenRepository) *TokenService {
	return &TokenService{
		tokens:    tokens,
		verifyTTL: cfg.VerifyTokenTTL(),
		resetTTL:  cfg.ResetTokenTTL(),
	}
}

// Issue deletes stale tokens for the identifier and persists a fresh one.
func (s *TokenService) Issue(ctx context.Context, identifier string, purpose domain.TokenPurpose) (*domain.VerificationToken, error) {
	if err := s.tokens.DeleteByIdentifier(ctx, identifier); err != nil {
		return nil, err
	}

	token := s.build(identifier, purpose)
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// IssueTx persists a fresh token inside a caller-managed transaction, used by
// signup so the user row and its token commit atomically.
func (s *TokenService) IssueTx(ctx context.Context, tx pgx.Tx, identifier string, purpose domain.TokenPurpose) (*domain.VerificationToken, error) {
	token := s.build(identifier, purpose)
	if err := s.tokens.CreateTx(ctx, tx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// FindByToken looks up a token by its opaque value without expiry filtering;
// callers must check expiry themselves.
func (s *TokenService) FindByToken(ctx context.Context, tokenStr string) (*domain.VerificationToken, error) {
	return s.tokens.GetByToken(ctx, tokenStr)
}

// DeleteByIdentifier removes every token bound to the email, used both as
// cleanup-on-success and cleanup-on-failure.
func (s *TokenService) DeleteByIdentifier(ctx context.Context, identifier string) error {
	return s.tokens.DeleteByIdentifier(ctx, identifier)
}

// Consume removes a token after successful use.
func (s *TokenService) Consume(ctx context.Context, tokenStr string) error {
	return s.tokens.DeleteByToken(ctx, tokenStr)
}

// TTLMinutes reports the configured lifetime for a purpose, for email copy.
func (s *TokenService) TTLMinutes(purpose domain.TokenPurpose) int {
	return int(s.ttl(purpose) / time.Minute)
}

func (s *TokenService) build(identifier string, purpose domain.TokenPurpose) *domain.VerificationToken {
	return &domain.VerificationToken{
		Identifier: domain.NormalizeEmail(identifier),
		Token:      uuid.NewString(),
		Purpose:    purpose,
		ExpiresAt:  time.Now().Add(s.ttl(purpose)),
	}
}

func (s *TokenService) ttl(purpose domain.TokenPurpose) time.Duration {
	if purpose == domain.TokenPurposePasswordReset {
		return s.resetTTL
	}
	return s.verifyTTL
}
