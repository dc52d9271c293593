package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/dto"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// ProductsHandler exposes product CRUD inside the guarded store scope plus
// the public storefront listing with filters.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalog *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// Create handles POST /stores/:storeId/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.ProductRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalog.CreateProduct(c.UserContext(), store.ID, productInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.Ok(dto.NewProductResponse(product)))
}

// Update handles PATCH /stores/:storeId/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	var req dto.ProductRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalog.UpdateProduct(c.UserContext(), store.ID, c.Params("id"), productInput(req))
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewProductResponse(product)))
}

// Delete handles DELETE /stores/:storeId/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	if err := h.catalog.DeleteProduct(c.UserContext(), store.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(util.OkMessage(nil, "product deleted"))
}

// List handles GET /stores/:storeId/products. Archived products are visible
// to the owner.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	filter := filterFromQuery(c, store.ID)
	filter.IncludeArchived = true

	products, err := h.catalog.ListProducts(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewProductResponses(products)))
}

// PublicList handles GET /storefront/:storeId/products. Archived products
// never appear here.
func (h *ProductsHandler) PublicList(c *fiber.Ctx) error {
	filter := filterFromQuery(c, c.Params("storeId"))

	products, err := h.catalog.ListProducts(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewProductResponses(products)))
}

// PublicGet handles GET /storefront/:storeId/products/:id.
func (h *ProductsHandler) PublicGet(c *fiber.Ctx) error {
	product, err := h.catalog.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if product.StoreID != c.Params("storeId") || product.IsArchived {
		return util.NewNotFound("product", nil)
	}
	return c.JSON(util.Ok(dto.NewProductResponse(product)))
}

func productInput(req dto.ProductRequest) service.ProductInput {
	return service.ProductInput{
		CategoryID: req.CategoryID,
		SizeID:     req.SizeID,
		ColorID:    req.ColorID,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
		Images:     req.Images,
	}
}

func filterFromQuery(c *fiber.Ctx, storeID string) repository.ProductFilter {
	filter := repository.ProductFilter{
		StoreID:    storeID,
		CategoryID: c.Query("category_id"),
		SizeID:     c.Query("size_id"),
		ColorID:    c.Query("color_id"),
		Limit:      c.QueryInt("limit", 50),
		Offset:     c.QueryInt("offset", 0),
	}
	if raw := c.Query("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}
	return filter
}
