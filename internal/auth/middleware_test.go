package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	apperrors "github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) CreateTx(ctx context.Context, tx pgx.Tx, user *domain.User) error { return nil }

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(apperrors.Fail(domainErr))
		},
	})
}

func TestMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	middleware := NewMiddleware(NewTokenManager("unit-secret", 60), &stubUserRepo{})
	app := newTestApp()
	app.Get("/protected", middleware.Handle, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareLoadsPrincipalFromLiveRow(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	user := &domain.User{ID: "u1", Role: domain.UserRoleCustomer, IsActive: true}
	repo := &stubUserRepo{users: map[string]*domain.User{"u1": user}}
	middleware := NewMiddleware(tm, repo)

	app := newTestApp()
	app.Get("/protected", middleware.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		require.True(t, ok)
		assert.Equal(t, "u1", principal.UserID)
		assert.Equal(t, domain.UserRoleCustomer, principal.Role)
		return c.SendStatus(http.StatusOK)
	})

	tokenStr, _, err := tm.GenerateToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsDisabledOrMissingUser(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	banned := &domain.User{ID: "banned", Role: domain.UserRoleCustomer, IsActive: true, IsBanned: true}
	repo := &stubUserRepo{users: map[string]*domain.User{"banned": banned}}
	middleware := NewMiddleware(tm, repo)

	app := newTestApp()
	app.Get("/protected", middleware.Handle, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	// a token issued before the ban is useless once the row says banned
	tokenStr, _, err := tm.GenerateToken(&domain.User{ID: "banned", IsActive: true})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	tokenStr, _, err = tm.GenerateToken(&domain.User{ID: "deleted", IsActive: true})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	admin := &domain.User{ID: "admin", Role: domain.UserRoleAdmin, IsActive: true}
	customer := &domain.User{ID: "customer", Role: domain.UserRoleCustomer, IsActive: true}
	repo := &stubUserRepo{users: map[string]*domain.User{"admin": admin, "customer": customer}}
	middleware := NewMiddleware(tm, repo)

	app := newTestApp()
	app.Get("/admin-only", middleware.Handle, RequireRole(domain.UserRoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	adminToken, _, err := tm.GenerateToken(admin)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	customerToken, _, err := tm.GenerateToken(customer)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
