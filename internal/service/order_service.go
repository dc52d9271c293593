package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/events"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
	apperrors "github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// OrderService coordinates checkout and admin order workflows.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, products: products, dispatcher: dispatcher}
}

// CheckoutItem is one product line in a checkout request.
type CheckoutItem struct {
	ProductID string
	Quantity  int32
}

// Checkout creates an order from the cart, snapshotting current prices.
// Archived products and products of other stores are rejected.
func (s *OrderService) Checkout(ctx context.Context, storeID, phone, address string, items []CheckoutItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("at least one item required", nil)
	}

	order := &domain.Order{StoreID: storeID, Phone: phone, Address: address}
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("product", map[string]any{"product_id": item.ProductID})
			}
			return nil, apperrors.MapError(err)
		}
		if product.StoreID != storeID || product.IsArchived {
			return nil, apperrors.NewValidationError("product unavailable", map[string]any{"product_id": item.ProductID})
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:  product.ID,
			Quantity:   quantity,
			PriceCents: product.PriceCents,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventOrderCreated,
			Timestamp: time.Now(),
			Payload:   events.NewOrderCreatedPayload(order),
		})
	}
	return order, nil
}

// ListByStore returns the store's orders for the admin dashboard.
func (s *OrderService) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]domain.Order, error) {
	orders, err := s.orders.ListByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return orders, nil
}

// MarkPaid flags a store's order as paid.
func (s *OrderService) MarkPaid(ctx context.Context, storeID, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if order.StoreID != storeID {
		return nil, apperrors.NewNotFound("order", nil)
	}
	if err := s.orders.MarkPaid(ctx, orderID); err != nil {
		return nil, apperrors.MapError(err)
	}
	order.IsPaid = true
	return order, nil
}
