package domain

import "time"

// Billboard is a storefront hero banner owned by a store.
type Billboard struct {
	ID        string
	StoreID   string
	Label     string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category groups products under a billboard of the same store.
type Category struct {
	ID          string
	StoreID     string
	BillboardID string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Size is a product size option scoped to a store.
type Size struct {
	ID        string
	StoreID   string
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Color is a product color option scoped to a store.
type Color struct {
	ID        string
	StoreID   string
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a sellable catalog item.
type Product struct {
	ID         string
	StoreID    string
	CategoryID string
	SizeID     string
	ColorID    string
	Name       string
	PriceCents int64
	IsFeatured bool
	IsArchived bool
	Images     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
