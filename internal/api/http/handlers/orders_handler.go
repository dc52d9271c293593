package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/dto"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// OrdersHandler exposes the public checkout plus order management for owners.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Checkout handles POST /storefront/:storeId/checkout.
func (h *OrdersHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]service.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orders.Checkout(c.UserContext(), c.Params("storeId"), req.Phone, req.Address, items)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.Ok(dto.NewOrderResponse(order)))
}

// List handles GET /stores/:storeId/orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	orders, err := h.orders.ListByStore(c.UserContext(), store.ID, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewOrderResponses(orders)))
}

// MarkPaid handles POST /stores/:storeId/orders/:id/pay.
func (h *OrdersHandler) MarkPaid(c *fiber.Ctx) error {
	store, ok := auth.StoreFromContext(c)
	if !ok {
		return util.NewNotFound("store", nil)
	}

	order, err := h.orders.MarkPaid(c.UserContext(), store.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.Ok(dto.NewOrderResponse(order)))
}
