package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// CheckoutItemRequest is one line of a checkout payload.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// CheckoutRequest payload for the public checkout endpoint.
type CheckoutRequest struct {
	Phone   string                `json:"phone"`
	Address string                `json:"address"`
	Items   []CheckoutItemRequest `json:"items"`
}

// Validate runs validation rules.
func (r CheckoutRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Items, validation.Required),
	); err != nil {
		return err
	}
	for _, item := range r.Items {
		if err := validation.Validate(item.ProductID, validation.Required, is.UUID); err != nil {
			return validation.Errors{"items": err}
		}
	}
	return nil
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID  string `json:"product_id"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// OrderResponse is the order shape returned to clients.
type OrderResponse struct {
	ID         string              `json:"id"`
	StoreID    string              `json:"store_id"`
	IsPaid     bool                `json:"is_paid"`
	Phone      string              `json:"phone"`
	Address    string              `json:"address"`
	TotalCents int64               `json:"total_cents"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		})
	}
	return OrderResponse{
		ID:         order.ID,
		StoreID:    order.StoreID,
		IsPaid:     order.IsPaid,
		Phone:      order.Phone,
		Address:    order.Address,
		TotalCents: order.Total(),
		Items:      items,
		CreatedAt:  order.CreatedAt,
	}
}

// NewOrderResponses maps a slice of orders.
func NewOrderResponses(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, NewOrderResponse(&orders[i]))
	}
	return result
}
