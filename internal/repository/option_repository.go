package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// Sizes and colors share the same name/value shape, so both repositories sit
// on one parameterized implementation.

// SizeRepository encapsulates size persistence.
type SizeRepository interface {
	Create(ctx context.Context, size *domain.Size) error
	Update(ctx context.Context, size *domain.Size) error
	GetByID(ctx context.Context, id string) (*domain.Size, error)
	ListByStore(ctx context.Context, storeID string) ([]domain.Size, error)
	Delete(ctx context.Context, id string) error
}

// ColorRepository encapsulates color persistence.
type ColorRepository interface {
	Create(ctx context.Context, color *domain.Color) error
	Update(ctx context.Context, color *domain.Color) error
	GetByID(ctx context.Context, id string) (*domain.Color, error)
	ListByStore(ctx context.Context, storeID string) ([]domain.Color, error)
	Delete(ctx context.Context, id string) error
}

type optionRepository struct {
	pool  *pgxpool.Pool
	table string
}

func (r *optionRepository) create(ctx context.Context, storeID, name, value string, dest ...any) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (store_id, name, value)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`, r.table)
	return r.pool.QueryRow(ctx, query, storeID, name, value).Scan(dest...)
}

func (r *optionRepository) update(ctx context.Context, id, storeID, name, value string) error {
	query := fmt.Sprintf(`
        UPDATE %s SET name=$1, value=$2, updated_at=NOW()
        WHERE id=$3 AND store_id=$4`, r.table)
	cmd, err := r.pool.Exec(ctx, query, name, value, id, storeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *optionRepository) getByID(ctx context.Context, id string, dest ...any) error {
	query := fmt.Sprintf(`
        SELECT id, store_id, name, value, created_at, updated_at
        FROM %s WHERE id=$1`, r.table)
	return r.pool.QueryRow(ctx, query, id).Scan(dest...)
}

func (r *optionRepository) listByStore(ctx context.Context, storeID string) (pgx.Rows, error) {
	query := fmt.Sprintf(`
        SELECT id, store_id, name, value, created_at, updated_at
        FROM %s WHERE store_id=$1
        ORDER BY created_at DESC`, r.table)
	return r.pool.Query(ctx, query, storeID)
}

func (r *optionRepository) delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.table)
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type sizeRepository struct {
	optionRepository
}

// NewSizeRepository instantiates repository.
func NewSizeRepository(pool *pgxpool.Pool) SizeRepository {
	return &sizeRepository{optionRepository{pool: pool, table: "sizes"}}
}

func (r *sizeRepository) Create(ctx context.Context, size *domain.Size) error {
	return r.create(ctx, size.StoreID, size.Name, size.Value,
		&size.ID, &size.CreatedAt, &size.UpdatedAt)
}

func (r *sizeRepository) Update(ctx context.Context, size *domain.Size) error {
	return r.update(ctx, size.ID, size.StoreID, size.Name, size.Value)
}

func (r *sizeRepository) GetByID(ctx context.Context, id string) (*domain.Size, error) {
	var size domain.Size
	if err := r.getByID(ctx, id,
		&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) ListByStore(ctx context.Context, storeID string) ([]domain.Size, error) {
	rows, err := r.listByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Size
	for rows.Next() {
		var size domain.Size
		if err := rows.Scan(
			&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, size)
	}
	return result, rows.Err()
}

func (r *sizeRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type colorRepository struct {
	optionRepository
}

// NewColorRepository instantiates repository.
func NewColorRepository(pool *pgxpool.Pool) ColorRepository {
	return &colorRepository{optionRepository{pool: pool, table: "colors"}}
}

func (r *colorRepository) Create(ctx context.Context, color *domain.Color) error {
	return r.create(ctx, color.StoreID, color.Name, color.Value,
		&color.ID, &color.CreatedAt, &color.UpdatedAt)
}

func (r *colorRepository) Update(ctx context.Context, color *domain.Color) error {
	return r.update(ctx, color.ID, color.StoreID, color.Name, color.Value)
}

func (r *colorRepository) GetByID(ctx context.Context, id string) (*domain.Color, error) {
	var color domain.Color
	if err := r.getByID(ctx, id,
		&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) ListByStore(ctx context.Context, storeID string) ([]domain.Color, error) {
	rows, err := r.listByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Color
	for rows.Next() {
		var color domain.Color
		if err := rows.Scan(
			&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, color)
	}
	return result, rows.Err()
}

func (r *colorRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
