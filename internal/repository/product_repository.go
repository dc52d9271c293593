package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// ProductFilter captures storefront and admin listing parameters. Empty
// reference fields mean "no filter".
type ProductFilter struct {
	StoreID         string
	CategoryID      string
	SizeID          string
	ColorID         string
	Featured        *bool
	IncludeArchived bool
	Limit           int
	Offset          int
}

// ProductRepository encapsulates product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListWithFilter(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (store_id, category_id, size_id, color_id, name, price_cents, is_featured, is_archived, images)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		product.StoreID,
		product.CategoryID,
		product.SizeID,
		product.ColorID,
		product.Name,
		product.PriceCents,
		product.IsFeatured,
		product.IsArchived,
		product.Images,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET category_id=$1, size_id=$2, color_id=$3, name=$4, price_cents=$5,
            is_featured=$6, is_archived=$7, images=$8, updated_at=NOW()
        WHERE id=$9 AND store_id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		product.CategoryID,
		product.SizeID,
		product.ColorID,
		product.Name,
		product.PriceCents,
		product.IsFeatured,
		product.IsArchived,
		product.Images,
		product.ID,
		product.StoreID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `
        SELECT id, store_id, category_id, size_id, color_id, name, price_cents,
               is_featured, is_archived, images, created_at, updated_at
        FROM products WHERE id=$1`
	var product domain.Product
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.StoreID,
		&product.CategoryID,
		&product.SizeID,
		&product.ColorID,
		&product.Name,
		&product.PriceCents,
		&product.IsFeatured,
		&product.IsArchived,
		&product.Images,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListWithFilter(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	base := `SELECT id, store_id, category_id, size_id, color_id, name, price_cents,
                    is_featured, is_archived, images, created_at, updated_at
             FROM products`
	clauses := []string{"store_id=$1"}
	args := []any{filter.StoreID}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id=$%d", len(args)))
	}
	if filter.SizeID != "" {
		args = append(args, filter.SizeID)
		clauses = append(clauses, fmt.Sprintf("size_id=$%d", len(args)))
	}
	if filter.ColorID != "" {
		args = append(args, filter.ColorID)
		clauses = append(clauses, fmt.Sprintf("color_id=$%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, fmt.Sprintf("is_featured=$%d", len(args)))
	}
	if !filter.IncludeArchived {
		clauses = append(clauses, "is_archived=FALSE")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.StoreID,
			&product.CategoryID,
			&product.SizeID,
			&product.ColorID,
			&product.Name,
			&product.PriceCents,
			&product.IsFeatured,
			&product.IsArchived,
			&product.Images,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
