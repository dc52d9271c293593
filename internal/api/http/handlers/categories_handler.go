package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/dto"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// CategoriesHandler exposes category CRUD inside the guarded store scope
// plus the public list.
type CategoriesHandler struct {
	catalog *service.CatalogService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(catalog *service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

// Create handles POST /stores/:storeId/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.CategoryRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalog.CreateCategory(c.UserContext(), store.ID, req.BillboardID, req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.Ok(dto.NewCategoryResponse(category)))
}

// Update handles PATCH /stores/:storeId/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.CategoryRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalog.UpdateCategory(c.UserContext(), store.ID, c.Params("id"), req.BillboardID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewCategoryResponse(category)))
}

// Delete handles DELETE /stores/:storeId/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	if err := h.catalog.DeleteCategory(c.UserContext(), store.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "category deleted"))
}

// List handles GET /stores/:storeId/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	categories, err := h.catalog.ListCategories(c.UserContext(), store.ID)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewCategoryResponses(categories)))
}

// PublicList handles GET /storefront/:storeId/categories.
func (h *CategoriesHandler) PublicList(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewCategoryResponses(categories)))
}
