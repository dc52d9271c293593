package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/dto"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// BillboardsHandler exposes billboard CRUD inside the guarded store scope
// plus the public list.
type BillboardsHandler struct {
	catalog *service.CatalogService
}

// NewBillboardsHandler constructs handler.
func NewBillboardsHandler(catalog *service.CatalogService) *BillboardsHandler {
	return &BillboardsHandler{catalog: catalog}
}

// Create handles POST /stores/:storeId/billboards.
func (h *BillboardsHandler) Create(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.BillboardRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	billboard, err := h.catalog.CreateBillboard(c.UserContext(), store.ID, req.Label, req.ImageURL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.Ok(dto.NewBillboardResponse(billboard)))
}

// Update handles PATCH /stores/:storeId/billboards/:id.
func (h *BillboardsHandler) Update(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.BillboardRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	billboard, err := h.catalog.UpdateBillboard(c.UserContext(), store.ID, c.Params("id"), req.Label, req.ImageURL)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewBillboardResponse(billboard)))
}

// Delete handles DELETE /stores/:storeId/billboards/:id.
func (h *BillboardsHandler) Delete(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	if err := h.catalog.DeleteBillboard(c.UserContext(), store.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "billboard deleted"))
}

// List handles GET /stores/:storeId/billboards.
func (h *BillboardsHandler) List(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	billboards, err := h.catalog.ListBillboards(c.UserContext(), store.ID)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewBillboardResponses(billboards)))
}

// PublicList handles GET /storefront/:storeId/billboards.
func (h *BillboardsHandler) PublicList(c *fiber.Ctx) error {
	billboards, err := h.catalog.ListBillboards(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewBillboardResponses(billboards)))
}
