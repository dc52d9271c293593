package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/config"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

func newTestTokenService(tokens *memoryTokenRepo) *TokenService {
	return NewTokenService(config.AuthConfig{
		VerifyTokenTTLMinutes: 1440,
		ResetTokenTTLMinutes:  30,
	}, tokens)
}

func TestIssueReplacesExistingTokens(t *testing.T) {
	repo := newMemoryTokenRepo()
	svc := newTestTokenService(repo)
	ctx := context.Background()

	first, err := svc.Issue(ctx, "User@Example.com", domain.TokenPurposeVerifyEmail)
	require.NoError(t, err)
	second, err := svc.Issue(ctx, "user@example.com", domain.TokenPurposeVerifyEmail)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, "user@example.com", second.Identifier)

	remaining := repo.forIdentifier("user@example.com")
	require.Len(t, remaining, 1)
	assert.Equal(t, second.Token, remaining[0].Token)
}

func TestIssueAppliesPurposeTTL(t *testing.T) {
	svc := newTestTokenService(newMemoryTokenRepo())
	ctx := context.Background()

	verify, err := svc.Issue(ctx, "user@example.com", domain.TokenPurposeVerifyEmail)
	require.NoError(t, err)
	reset, err := svc.Issue(ctx, "other@example.com", domain.TokenPurposePasswordReset)
	require.NoError(t, err)

	assert.InDelta(t, 24*time.Hour, time.Until(verify.ExpiresAt), float64(time.Minute))
	assert.InDelta(t, 30*time.Minute, time.Until(reset.ExpiresAt), float64(time.Minute))

	assert.Equal(t, 1440, svc.TTLMinutes(domain.TokenPurposeVerifyEmail))
	assert.Equal(t, 30, svc.TTLMinutes(domain.TokenPurposePasswordReset))
}

func TestConsumeRemovesToken(t *testing.T) {
	repo := newMemoryTokenRepo()
	svc := newTestTokenService(repo)
	ctx := context.Background()

	token, err := svc.Issue(ctx, "user@example.com", domain.TokenPurposePasswordReset)
	require.NoError(t, err)

	found, err := svc.FindByToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.Token, found.Token)

	require.NoError(t, svc.Consume(ctx, token.Token))
	_, err = svc.FindByToken(ctx, token.Token)
	assert.Error(t, err)
}
