package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
	apperrors "github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// StoreService coordinates tenant lifecycle. Ownership of existing stores is
// proven by the store guard before any of the mutating calls run.
type StoreService struct {
	stores repository.StoreRepository
}

// NewStoreService constructs the service.
func NewStoreService(stores repository.StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

// Create opens a new store owned by the user.
func (s *StoreService) Create(ctx context.Context, userID, name string) (*domain.Store, error) {
	store := &domain.Store{Name: name, UserID: userID}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, apperrors.MapError(err)
	}
	return store, nil
}

// Rename updates the store name.
func (s *StoreService) Rename(ctx context.Context, store *domain.Store, name string) (*domain.Store, error) {
	store.Name = name
	if err := s.stores.Update(ctx, store); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("store", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return store, nil
}

// Delete soft-deletes the store; catalog rows stay behind the tombstone.
func (s *StoreService) Delete(ctx context.Context, store *domain.Store) error {
	if err := s.stores.SoftDelete(ctx, store.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("store", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// ListOwned returns the caller's live stores.
func (s *StoreService) ListOwned(ctx context.Context, userID string) ([]domain.Store, error) {
	stores, err := s.stores.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stores, nil
}
