package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/dto"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// StoresHandler exposes store lifecycle endpoints for authenticated owners
// plus the public storefront lookup.
type StoresHandler struct {
	stores *service.StoreService
}

// NewStoresHandler constructs handler.
func NewStoresHandler(stores *service.StoreService) *StoresHandler {
	return &StoresHandler{stores: stores}
}

// Create handles POST /stores.
func (h *StoresHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.StoreRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	store, err := h.stores.Create(c.UserContext(), principal.UserID, req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.Ok(dto.NewStoreResponse(store)))
}

// List handles GET /stores.
func (h *StoresHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	stores, err := h.stores.ListOwned(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewStoreResponses(stores)))
}

// Get handles GET /stores/:storeId for the guarded admin scope.
func (h *StoresHandler) Get(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}
	return c.JSON(util.Ok(dto.NewStoreResponse(store)))
}

// Update handles PATCH /stores/:storeId.
func (h *StoresHandler) Update(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.StoreRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.stores.Rename(c.UserContext(), store, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewStoreResponse(updated)))
}

// Delete handles DELETE /stores/:storeId.
func (h *StoresHandler) Delete(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	if err := h.stores.Delete(c.UserContext(), store); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "store deleted"))
}

// PublicGet handles GET /storefront/:storeId for unauthenticated visitors.
// The storefront guard has already resolved the live store.
func (h *StoresHandler) PublicGet(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}
	return c.JSON(util.Ok(dto.NewStoreResponse(store)))
}
