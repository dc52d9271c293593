package domain

import "time"

// Order records a storefront checkout against a store.
type Order struct {
	ID        string
	StoreID   string
	IsPaid    bool
	Phone     string
	Address   string
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem snapshots a product and its price at checkout time.
type OrderItem struct {
	ID         string
	OrderID    string
	ProductID  string
	Quantity   int32
	PriceCents int64
}

// Total returns the order total in cents.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}
