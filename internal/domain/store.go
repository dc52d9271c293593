package domain

import "time"

// Store is the tenant boundary. Every catalog entity carries its StoreID and
// every admin mutation must first prove ownership of a live (not soft-deleted)
// store row.
type Store struct {
	ID        string
	Name      string
	UserID    string
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
