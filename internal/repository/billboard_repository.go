package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// BillboardRepository encapsulates billboard persistence.
type BillboardRepository interface {
	Create(ctx context.Context, billboard *domain.Billboard) error
	Update(ctx context.Context, billboard *domain.Billboard) error
	GetByID(ctx context.Context, id string) (*domain.Billboard, error)
	ListByStore(ctx context.Context, storeID string) ([]domain.Billboard, error)
	Delete(ctx context.Context, id string) error
}

type billboardRepository struct {
	pool *pgxpool.Pool
}

// NewBillboardRepository instantiates repository.
func NewBillboardRepository(pool *pgxpool.Pool) BillboardRepository {
	return &billboardRepository{pool: pool}
}

func (r *billboardRepository) Create(ctx context.Context, billboard *domain.Billboard) error {
	const query = `
        INSERT INTO billboards (store_id, label, image_url)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		billboard.StoreID,
		billboard.Label,
		billboard.ImageURL,
	).Scan(&billboard.ID, &billboard.CreatedAt, &billboard.UpdatedAt)
}

func (r *billboardRepository) Update(ctx context.Context, billboard *domain.Billboard) error {
	const query = `
        UPDATE billboards SET label=$1, image_url=$2, updated_at=NOW()
        WHERE id=$3 AND store_id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		billboard.Label,
		billboard.ImageURL,
		billboard.ID,
		billboard.StoreID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *billboardRepository) GetByID(ctx context.Context, id string) (*domain.Billboard, error) {
	const query = `
        SELECT id, store_id, label, image_url, created_at, updated_at
        FROM billboards WHERE id=$1`
	var billboard domain.Billboard
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&billboard.ID,
		&billboard.StoreID,
		&billboard.Label,
		&billboard.ImageURL,
		&billboard.CreatedAt,
		&billboard.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &billboard, nil
}

func (r *billboardRepository) ListByStore(ctx context.Context, storeID string) ([]domain.Billboard, error) {
	const query = `
        SELECT id, store_id, label, image_url, created_at, updated_at
        FROM billboards WHERE store_id=$1
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Billboard
	for rows.Next() {
		var billboard domain.Billboard
		if err := rows.Scan(
			&billboard.ID,
			&billboard.StoreID,
			&billboard.Label,
			&billboard.ImageURL,
			&billboard.CreatedAt,
			&billboard.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, billboard)
	}
	return result, rows.Err()
}

func (r *billboardRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM billboards WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
