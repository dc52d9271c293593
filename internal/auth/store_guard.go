package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
	apperrors "github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

const storeKey = "auth_store"

// StoreGuard is the store-ownership stage of the pipeline. It must run after
// the identity stage. A missing, soft-deleted or foreign store all yield the
// same not-found so the caller cannot tell which case occurred.
type StoreGuard struct {
	stores repository.StoreRepository
}

// NewStoreGuard constructs the guard.
func NewStoreGuard(stores repository.StoreRepository) *StoreGuard {
	return &StoreGuard{stores: stores}
}

// Handle verifies the caller owns the store named by the :storeId param and
// memoizes the fetched row in request locals so handlers do not re-query.
func (g *StoreGuard) Handle(c *fiber.Ctx) error {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	storeID := c.Params("storeId")
	if storeID == "" {
		return apperrors.NewValidationError("storeId required", nil)
	}

	store, err := g.stores.GetOwned(c.Context(), storeID, principal.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("store", nil)
		}
		return apperrors.MapError(err)
	}

	c.Locals(storeKey, store)
	return c.Next()
}

// HandlePublic is the storefront variant. No principal is required, but the
// store must exist and must not be soft-deleted; a tombstoned store stops
// serving its catalog and accepting orders immediately.
func (g *StoreGuard) HandlePublic(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	if storeID == "" {
		return apperrors.NewValidationError("storeId required", nil)
	}

	store, err := g.stores.GetByID(c.Context(), storeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("store", nil)
		}
		return apperrors.MapError(err)
	}

	c.Locals(storeKey, store)
	return c.Next()
}

// StoreFromContext retrieves the guarded store for the current request.
func StoreFromContext(c *fiber.Ctx) (*domain.Store, bool) {
	val := c.Locals(storeKey)
	if val == nil {
		return nil, false
	}
	store, ok := val.(*domain.Store)
	return store, ok
}
