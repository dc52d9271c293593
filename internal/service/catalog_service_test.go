package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

func billboardLookup(billboards ...*domain.Billboard) *mockBillboardRepo {
	byID := map[string]*domain.Billboard{}
	for _, b := range billboards {
		byID[b.ID] = b
	}
	return &mockBillboardRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Billboard, error) {
			billboard, ok := byID[id]
			if !ok {
				return nil, pgx.ErrNoRows
			}
			return billboard, nil
		},
	}
}

func TestCreateCategoryChecksBillboardStore(t *testing.T) {
	billboards := billboardLookup(
		&domain.Billboard{ID: "b1", StoreID: "s1"},
		&domain.Billboard{ID: "b2", StoreID: "other"},
	)
	categories := &mockCategoryRepo{
		createFn: func(ctx context.Context, category *domain.Category) error {
			category.ID = "c1"
			return nil
		},
	}
	svc := NewCatalogService(CatalogDependencies{BillboardRepo: billboards, CategoryRepo: categories})

	category, err := svc.CreateCategory(context.Background(), "s1", "b1", "Shirts")
	require.NoError(t, err)
	assert.Equal(t, "c1", category.ID)

	_, err = svc.CreateCategory(context.Background(), "s1", "b2", "Shirts")
	assert.Equal(t, "VALIDATION_FAILED", domainErrCode(t, err))

	_, err = svc.CreateCategory(context.Background(), "s1", "missing", "Shirts")
	assert.Equal(t, "NOT_FOUND", domainErrCode(t, err))
}

func TestDeleteBillboardStillReferenced(t *testing.T) {
	billboards := billboardLookup(&domain.Billboard{ID: "b1", StoreID: "s1"})
	billboards.deleteFn = func(ctx context.Context, id string) error {
		return &pgconn.PgError{Code: fkViolationCode}
	}
	svc := NewCatalogService(CatalogDependencies{BillboardRepo: billboards})

	err := svc.DeleteBillboard(context.Background(), "s1", "b1")
	assert.Equal(t, "CONFLICT", domainErrCode(t, err))
}

func TestDeleteBillboardOfOtherStoreLooksMissing(t *testing.T) {
	billboards := billboardLookup(&domain.Billboard{ID: "b1", StoreID: "other"})
	svc := NewCatalogService(CatalogDependencies{BillboardRepo: billboards})

	err := svc.DeleteBillboard(context.Background(), "s1", "b1")
	assert.Equal(t, "NOT_FOUND", domainErrCode(t, err))
}

func TestCreateProductValidatesAllReferences(t *testing.T) {
	categories := &mockCategoryRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Category, error) {
			if id == "c1" {
				return &domain.Category{ID: "c1", StoreID: "s1"}, nil
			}
			return nil, pgx.ErrNoRows
		},
	}
	sizes := &mockSizeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Size, error) {
			if id == "sz1" {
				return &domain.Size{ID: "sz1", StoreID: "s1"}, nil
			}
			return &domain.Size{ID: id, StoreID: "other"}, nil
		},
	}
	colors := &mockColorRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Color, error) {
			return &domain.Color{ID: id, StoreID: "s1"}, nil
		},
	}
	products := &mockProductRepo{
		createFn: func(ctx context.Context, product *domain.Product) error {
			product.ID = "p1"
			return nil
		},
	}
	svc := NewCatalogService(CatalogDependencies{
		CategoryRepo: categories,
		SizeRepo:     sizes,
		ColorRepo:    colors,
		ProductRepo:  products,
	})

	input := ProductInput{CategoryID: "c1", SizeID: "sz1", ColorID: "col1", Name: "Tee", PriceCents: 1999}
	product, err := svc.CreateProduct(context.Background(), "s1", input)
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "s1", product.StoreID)

	input.SizeID = "foreign-size"
	_, err = svc.CreateProduct(context.Background(), "s1", input)
	assert.Equal(t, "VALIDATION_FAILED", domainErrCode(t, err))

	input.SizeID = "sz1"
	input.CategoryID = "missing"
	_, err = svc.CreateProduct(context.Background(), "s1", input)
	assert.Equal(t, "NOT_FOUND", domainErrCode(t, err))
}

func TestUpdateSizeReturnsFreshRow(t *testing.T) {
	sizes := &mockSizeRepo{
		updateFn: func(ctx context.Context, size *domain.Size) error { return nil },
		getByIDFn: func(ctx context.Context, id string) (*domain.Size, error) {
			return &domain.Size{ID: id, StoreID: "s1", Name: "Large", Value: "L"}, nil
		},
	}
	svc := NewCatalogService(CatalogDependencies{SizeRepo: sizes})

	size, err := svc.UpdateSize(context.Background(), "s1", "sz1", "Large", "L")
	require.NoError(t, err)
	assert.Equal(t, "Large", size.Name)
}

func TestUpdateSizeMissingRow(t *testing.T) {
	sizes := &mockSizeRepo{
		updateFn: func(ctx context.Context, size *domain.Size) error { return pgx.ErrNoRows },
	}
	svc := NewCatalogService(CatalogDependencies{SizeRepo: sizes})

	_, err := svc.UpdateSize(context.Background(), "s1", "missing", "Large", "L")
	assert.Equal(t, "NOT_FOUND", domainErrCode(t, err))
}
