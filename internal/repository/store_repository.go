package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// StoreRepository encapsulates tenant (store) persistence.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	// GetOwned returns the store only when it belongs to userID and is not
	// soft-deleted. Ownership failures and soft-deleted rows are both
	// pgx.ErrNoRows so callers cannot tell them apart.
	GetOwned(ctx context.Context, id, userID string) (*domain.Store, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Store, error)
	SoftDelete(ctx context.Context, id string) error
}

type storeRepository struct {
	pool *pgxpool.Pool
}

// NewStoreRepository instantiates repository.
func NewStoreRepository(pool *pgxpool.Pool) StoreRepository {
	return &storeRepository{pool: pool}
}

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	const query = `
        INSERT INTO stores (name, user_id)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		store.Name,
		store.UserID,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
}

func (r *storeRepository) Update(ctx context.Context, store *domain.Store) error {
	const query = `
        UPDATE stores SET name=$1, updated_at=NOW()
        WHERE id=$2 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(ctx, query, store.Name, store.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	const query = `
        SELECT id, name, user_id, deleted_at, created_at, updated_at
        FROM stores WHERE id=$1 AND deleted_at IS NULL`
	return r.fetchSingle(ctx, query, id)
}

func (r *storeRepository) GetOwned(ctx context.Context, id, userID string) (*domain.Store, error) {
	const query = `
        SELECT id, name, user_id, deleted_at, created_at, updated_at
        FROM stores WHERE id=$1 AND user_id=$2 AND deleted_at IS NULL`
	var store domain.Store
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&store.ID,
		&store.Name,
		&store.UserID,
		&store.DeletedAt,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Store, error) {
	const query = `
        SELECT id, name, user_id, deleted_at, created_at, updated_at
        FROM stores WHERE user_id=$1 AND deleted_at IS NULL
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Store
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.UserID,
			&store.DeletedAt,
			&store.CreatedAt,
			&store.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, store)
	}
	return result, rows.Err()
}

func (r *storeRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `
        UPDATE stores SET deleted_at=NOW(), updated_at=NOW()
        WHERE id=$1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *storeRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Store, error) {
	var store domain.Store
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&store.ID,
		&store.Name,
		&store.UserID,
		&store.DeletedAt,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &store, nil
}
