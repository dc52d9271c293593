package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// StoreRequest payload for store create/rename.
type StoreRequest struct {
	Name string `json:"name"`
}

// Validate runs validation rules.
func (r StoreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

// StoreResponse is the store shape returned to clients.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStoreResponse maps a domain store.
func NewStoreResponse(store *domain.Store) StoreResponse {
	return StoreResponse{
		ID:        store.ID,
		Name:      store.Name,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}

// NewStoreResponses maps a slice of stores.
func NewStoreResponses(stores []domain.Store) []StoreResponse {
	result := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		result = append(result, NewStoreResponse(&stores[i]))
	}
	return result
}
