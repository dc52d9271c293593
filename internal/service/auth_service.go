package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/config"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/events"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
	apperrors "github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// resetEmailSentMessage is returned for every forgot-password request that is
// not an OAuth-only account, whether or not the email exists.
const resetEmailSentMessage = "If an account exists for that email, a reset link has been sent."

// AuthService orchestrates signup, signin, forgot/reset password and email
// verification. All expected failures are DomainErrors; nothing is thrown
// past the pipeline boundary.
type AuthService struct {
	users      repository.UserRepository
	accounts   repository.AccountRepository
	txRunner   repository.TxRunner
	tokenSvc   *TokenService
	sessionMgr *auth.TokenManager
	throttle   *auth.SigninThrottle
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	AccountRepo repository.AccountRepository
	TxRunner    repository.TxRunner
	TokenSvc    *TokenService
	Throttle    *auth.SigninThrottle
	Dispatcher  events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		accounts:   deps.AccountRepo,
		txRunner:   deps.TxRunner,
		tokenSvc:   deps.TokenSvc,
		sessionMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTLMinutes),
		throttle:   deps.Throttle,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SignupInput carries validated signup fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SigninResult is a successful session.
type SigninResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// Signup creates an unverified user and emails a verification link. Retrying
// an unverified signup re-issues the token instead of duplicating the user.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (string, error) {
	email := domain.NormalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && err != pgx.ErrNoRows {
		return "", apperrors.MapError(err)
	}
	if existing != nil {
		switch {
		case !existing.HasPassword():
			return "", apperrors.NewConflict("email is associated with a social login account; sign in with your provider", nil)
		case !existing.IsVerified():
			token, err := s.tokenSvc.Issue(ctx, email, domain.TokenPurposeVerifyEmail)
			if err != nil {
				return "", apperrors.MapError(err)
			}
			s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
				UserID: existing.ID,
				Email:  email,
				Token:  token.Token,
			})
			return "", apperrors.NewConflict("account already exists; a new verification email has been sent", nil)
		default:
			return "", apperrors.NewConflict("account already exists; sign in instead", nil)
		}
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.UserRoleCustomer,
		IsActive:     true,
	}

	var token *domain.VerificationToken
	err = s.txRunner.RunInTx(ctx, func(tx pgx.Tx) error {
		if err := s.users.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		token, err = s.tokenSvc.IssueTx(ctx, tx, email, domain.TokenPurposeVerifyEmail)
		return err
	})
	if err != nil {
		return "", apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  email,
		Token:  token.Token,
	})
	return user.ID, nil
}

// Signin verifies credentials and returns a session. Unknown emails and wrong
// passwords produce the same generic error.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*SigninResult, error) {
	email = domain.NormalizeEmail(email)

	if s.throttle.Blocked(ctx, email) {
		return nil, apperrors.NewUnauthorized("too many failed attempts; try again later")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, apperrors.MapError(err)
	}
	if !user.HasPassword() {
		return nil, apperrors.NewDomainError("OAUTH_ACCOUNT_LINKED",
			"this account uses social login; sign in with your provider", http.StatusUnauthorized, nil)
	}
	if user.IsBanned || !user.IsActive {
		return nil, apperrors.NewUnauthorized("account disabled")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.throttle.RecordFailure(ctx, email)
		return nil, apperrors.NewUnauthorized("invalid email or password")
	}
	s.throttle.Reset(ctx, email)

	token, exp, err := s.sessionMgr.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	// never expose the hash past this point
	sanitized := *user
	sanitized.PasswordHash = ""
	return &SigninResult{User: &sanitized, Token: token, ExpiresAt: exp}, nil
}

// ForgotPassword issues a reset token. The success message is identical for
// existing and unknown emails so account existence cannot be probed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = domain.NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return resetEmailSentMessage, nil
		}
		return "", apperrors.MapError(err)
	}
	if !user.HasPassword() {
		return "", apperrors.NewConflict("this account uses social login; password reset is not available", nil)
	}

	token, err := s.tokenSvc.Issue(ctx, email, domain.TokenPurposePasswordReset)
	if err != nil {
		return "", apperrors.MapError(err)
	}
	s.publish(ctx, events.EventPasswordResetRequested, events.PasswordResetRequestedPayload{
		Email: email,
		Token: token.Token,
	})
	return resetEmailSentMessage, nil
}

// ResetPassword consumes a valid reset token and updates the password.
func (s *AuthService) ResetPassword(ctx context.Context, email, tokenStr, newPassword string) error {
	email = domain.NormalizeEmail(email)

	token, err := s.tokenSvc.FindByToken(ctx, tokenStr)
	if err != nil {
		if err == pgx.ErrNoRows {
			// stale tokens for this email are useless once one went missing
			_ = s.tokenSvc.DeleteByIdentifier(ctx, email)
			return apperrors.NewValidationError("invalid reset token", nil)
		}
		return apperrors.MapError(err)
	}
	if token.Purpose != domain.TokenPurposePasswordReset {
		return apperrors.NewValidationError("invalid reset token", nil)
	}
	if token.Expired(time.Now()) {
		_ = s.tokenSvc.Consume(ctx, token.Token)
		return apperrors.NewGone("reset token expired")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewValidationError("invalid reset token", nil)
		}
		return apperrors.MapError(err)
	}
	if !strings.EqualFold(token.Identifier, user.Email) {
		return apperrors.NewValidationError("invalid reset token", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	return s.tokenSvc.Consume(ctx, token.Token)
}

// VerifyEmail confirms control of the email behind a verification token.
// Double-verification and identifier mismatches fail identically.
func (s *AuthService) VerifyEmail(ctx context.Context, tokenStr string) error {
	token, err := s.tokenSvc.FindByToken(ctx, tokenStr)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewValidationError("invalid verification attempt", nil)
		}
		return apperrors.MapError(err)
	}
	if token.Purpose != domain.TokenPurposeVerifyEmail {
		return apperrors.NewValidationError("invalid verification attempt", nil)
	}
	if token.Expired(time.Now()) {
		_ = s.tokenSvc.Consume(ctx, token.Token)
		return apperrors.NewGone("verification token expired")
	}

	user, err := s.users.GetByEmail(ctx, token.Identifier)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}
	if user.IsVerified() || user.Email != token.Identifier {
		return apperrors.NewValidationError("invalid verification attempt", nil)
	}

	now := time.Now()
	user.EmailVerified = &now
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	if err := s.tokenSvc.Consume(ctx, token.Token); err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventEmailVerified, events.EmailVerifiedPayload{
		UserID: user.ID,
		Email:  user.Email,
	})
	return nil
}

// Profile returns the sanitized user plus linked OAuth providers.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, []domain.Account, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("user", nil)
		}
		return nil, nil, apperrors.MapError(err)
	}
	user.PasswordHash = ""

	var accounts []domain.Account
	if s.accounts != nil {
		accounts, err = s.accounts.ListByUser(ctx, userID)
		if err != nil {
			return nil, nil, apperrors.MapError(err)
		}
	}
	return user, accounts, nil
}

// TokenManager exposes the underlying session manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.sessionMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
