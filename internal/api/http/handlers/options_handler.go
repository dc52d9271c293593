package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/dto"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// SizesHandler exposes size option CRUD inside the guarded store scope.
type SizesHandler struct {
	catalog *service.CatalogService
}

// NewSizesHandler constructs handler.
func NewSizesHandler(catalog *service.CatalogService) *SizesHandler {
	return &SizesHandler{catalog: catalog}
}

// Create handles POST /stores/:storeId/sizes.
func (h *SizesHandler) Create(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.OptionRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	size, err := h.catalog.CreateSize(c.UserContext(), store.ID, req.Name, req.Value)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.Ok(dto.NewSizeResponse(size)))
}

// Update handles PATCH /stores/:storeId/sizes/:id.
func (h *SizesHandler) Update(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.OptionRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	size, err := h.catalog.UpdateSize(c.UserContext(), store.ID, c.Params("id"), req.Name, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewSizeResponse(size)))
}

// Delete handles DELETE /stores/:storeId/sizes/:id.
func (h *SizesHandler) Delete(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	if err := h.catalog.DeleteSize(c.UserContext(), store.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "size deleted"))
}

// List handles GET /stores/:storeId/sizes.
func (h *SizesHandler) List(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	sizes, err := h.catalog.ListSizes(c.UserContext(), store.ID)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewSizeResponses(sizes)))
}

// PublicList handles GET /storefront/:storeId/sizes.
func (h *SizesHandler) PublicList(c *fiber.Ctx) error {
	sizes, err := h.catalog.ListSizes(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewSizeResponses(sizes)))
}

// ColorsHandler exposes color option CRUD inside the guarded store scope.
type ColorsHandler struct {
	catalog *service.CatalogService
}

// NewColorsHandler constructs handler.
func NewColorsHandler(catalog *service.CatalogService) *ColorsHandler {
	return &ColorsHandler{catalog: catalog}
}

// Create handles POST /stores/:storeId/colors.
func (h *ColorsHandler) Create(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.OptionRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	color, err := h.catalog.CreateColor(c.UserContext(), store.ID, req.Name, req.Value)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.Ok(dto.NewColorResponse(color)))
}

// Update handles PATCH /stores/:storeId/colors/:id.
func (h *ColorsHandler) Update(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.OptionRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	color, err := h.catalog.UpdateColor(c.UserContext(), store.ID, c.Params("id"), req.Name, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewColorResponse(color)))
}

// Delete handles DELETE /stores/:storeId/colors/:id.
func (h *ColorsHandler) Delete(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	if err := h.catalog.DeleteColor(c.UserContext(), store.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "color deleted"))
}

// List handles GET /stores/:storeId/colors.
func (h *ColorsHandler) List(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	colors, err := h.catalog.ListColors(c.UserContext(), store.ID)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewColorResponses(colors)))
}

// PublicList handles GET /storefront/:storeId/colors.
func (h *ColorsHandler) PublicList(c *fiber.Ctx) error {
	colors, err := h.catalog.ListColors(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewColorResponses(colors)))
}
