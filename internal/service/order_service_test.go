package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/events"
)

func productCatalog(products ...*domain.Product) *mockProductRepo {
	byID := map[string]*domain.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	return &mockProductRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			product, ok := byID[id]
			if !ok {
				return nil, pgx.ErrNoRows
			}
			return product, nil
		},
	}
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	products := productCatalog(
		&domain.Product{ID: "p1", StoreID: "s1", PriceCents: 1500},
		&domain.Product{ID: "p2", StoreID: "s1", PriceCents: 300},
	)
	var created *domain.Order
	orders := &mockOrderRepo{
		createFn: func(ctx context.Context, order *domain.Order) error {
			order.ID = "o1"
			created = order
			return nil
		},
	}
	dispatcher := &recordingDispatcher{}
	svc := NewOrderService(orders, products, dispatcher)

	order, err := svc.Checkout(context.Background(), "s1", "+123456", "1 Main St", []CheckoutItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 0},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// zero quantity is coerced to one, prices copied from the catalog
	require.Len(t, order.Items, 2)
	assert.Equal(t, int32(2), order.Items[0].Quantity)
	assert.Equal(t, int64(1500), order.Items[0].PriceCents)
	assert.Equal(t, int32(1), order.Items[1].Quantity)
	assert.Equal(t, int64(3300), order.Total())

	published := dispatcher.ofType(events.EventOrderCreated)
	require.Len(t, published, 1)
	payload := published[0].Payload.(events.OrderCreatedPayload)
	assert.Equal(t, "o1", payload.OrderID)
	assert.Equal(t, int64(3300), payload.TotalCents)
}

func TestCheckoutRejectsForeignAndArchivedProducts(t *testing.T) {
	products := productCatalog(
		&domain.Product{ID: "foreign", StoreID: "other-store", PriceCents: 100},
		&domain.Product{ID: "archived", StoreID: "s1", PriceCents: 100, IsArchived: true},
	)
	svc := NewOrderService(&mockOrderRepo{}, products, nil)

	_, err := svc.Checkout(context.Background(), "s1", "", "", []CheckoutItem{{ProductID: "foreign", Quantity: 1}})
	assert.Equal(t, "VALIDATION_FAILED", domainErrCode(t, err))

	_, err = svc.Checkout(context.Background(), "s1", "", "", []CheckoutItem{{ProductID: "archived", Quantity: 1}})
	assert.Equal(t, "VALIDATION_FAILED", domainErrCode(t, err))

	_, err = svc.Checkout(context.Background(), "s1", "", "", []CheckoutItem{{ProductID: "missing", Quantity: 1}})
	assert.Equal(t, "NOT_FOUND", domainErrCode(t, err))

	_, err = svc.Checkout(context.Background(), "s1", "", "", nil)
	assert.Equal(t, "VALIDATION_FAILED", domainErrCode(t, err))
}

func TestMarkPaidScopedToStore(t *testing.T) {
	orders := &mockOrderRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Order, error) {
			if id != "o1" {
				return nil, pgx.ErrNoRows
			}
			return &domain.Order{ID: "o1", StoreID: "s1"}, nil
		},
		markPaidFn: func(ctx context.Context, id string) error { return nil },
	}
	svc := NewOrderService(orders, &mockProductRepo{}, nil)

	order, err := svc.MarkPaid(context.Background(), "s1", "o1")
	require.NoError(t, err)
	assert.True(t, order.IsPaid)

	// an order of another store looks like it does not exist
	_, err = svc.MarkPaid(context.Background(), "s2", "o1")
	assert.Equal(t, "NOT_FOUND", domainErrCode(t, err))

	_, err = svc.MarkPaid(context.Background(), "s1", "missing")
	assert.Equal(t, "NOT_FOUND", domainErrCode(t, err))
}
