package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
	apperrors "github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

const fkViolationCode = "23503"

// CatalogService coordinates store-scoped catalog workflows. Every call is
// made on behalf of a store already proven owned by the caller.
type CatalogService struct {
	billboards repository.BillboardRepository
	categories repository.CategoryRepository
	sizes      repository.SizeRepository
	colors     repository.ColorRepository
	products   repository.ProductRepository
}

// CatalogDependencies bundles repositories for the catalog service.
type CatalogDependencies struct {
	BillboardRepo repository.BillboardRepository
	CategoryRepo  repository.CategoryRepository
	SizeRepo      repository.SizeRepository
	ColorRepo     repository.ColorRepository
	ProductRepo   repository.ProductRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		billboards: deps.BillboardRepo,
		categories: deps.CategoryRepo,
		sizes:      deps.SizeRepo,
		colors:     deps.ColorRepo,
		products:   deps.ProductRepo,
	}
}

// CreateBillboard adds a billboard to the store.
func (s *CatalogService) CreateBillboard(ctx context.Context, storeID, label, imageURL string) (*domain.Billboard, error) {
	billboard := &domain.Billboard{StoreID: storeID, Label: label, ImageURL: imageURL}
	if err := s.billboards.Create(ctx, billboard); err != nil {
		return nil, apperrors.MapError(err)
	}
	return billboard, nil
}

// UpdateBillboard edits a billboard of the store.
func (s *CatalogService) UpdateBillboard(ctx context.Context, storeID, id, label, imageURL string) (*domain.Billboard, error) {
	billboard := &domain.Billboard{ID: id, StoreID: storeID, Label: label, ImageURL: imageURL}
	if err := s.billboards.Update(ctx, billboard); err != nil {
		return nil, mapCatalogError(err, "billboard")
	}
	updated, err := s.billboards.GetByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err, "billboard")
	}
	return updated, nil
}

// DeleteBillboard removes a billboard unless categories still reference it.
func (s *CatalogService) DeleteBillboard(ctx context.Context, storeID, id string) error {
	billboard, err := s.billboards.GetByID(ctx, id)
	if err != nil {
		return mapCatalogError(err, "billboard")
	}
	if billboard.StoreID != storeID {
		return apperrors.NewNotFound("billboard", nil)
	}
	return mapCatalogError(s.billboards.Delete(ctx, id), "billboard")
}

// ListBillboards lists the store's billboards.
func (s *CatalogService) ListBillboards(ctx context.Context, storeID string) ([]domain.Billboard, error) {
	result, err := s.billboards.ListByStore(ctx, storeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// CreateCategory adds a category referencing a billboard of the same store.
func (s *CatalogService) CreateCategory(ctx context.Context, storeID, billboardID, name string) (*domain.Category, error) {
	if err := s.checkBillboard(ctx, storeID, billboardID); err != nil {
		return nil, err
	}
	category := &domain.Category{StoreID: storeID, BillboardID: billboardID, Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// UpdateCategory edits a category of the store.
func (s *CatalogService) UpdateCategory(ctx context.Context, storeID, id, billboardID, name string) (*domain.Category, error) {
	if err := s.checkBillboard(ctx, storeID, billboardID); err != nil {
		return nil, err
	}
	category := &domain.Category{ID: id, StoreID: storeID, BillboardID: billboardID, Name: name}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, mapCatalogError(err, "category")
	}
	updated, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err, "category")
	}
	return updated, nil
}

// DeleteCategory removes a category unless products still reference it.
func (s *CatalogService) DeleteCategory(ctx context.Context, storeID, id string) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return mapCatalogError(err, "category")
	}
	if category.StoreID != storeID {
		return apperrors.NewNotFound("category", nil)
	}
	return mapCatalogError(s.categories.Delete(ctx, id), "category")
}

// ListCategories lists the store's categories.
func (s *CatalogService) ListCategories(ctx context.Context, storeID string) ([]domain.Category, error) {
	result, err := s.categories.ListByStore(ctx, storeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// CreateSize adds a size option.
func (s *CatalogService) CreateSize(ctx context.Context, storeID, name, value string) (*domain.Size, error) {
	size := &domain.Size{StoreID: storeID, Name: name, Value: value}
	if err := s.sizes.Create(ctx, size); err != nil {
		return nil, apperrors.MapError(err)
	}
	return size, nil
}

// UpdateSize edits a size option.
func (s *CatalogService) UpdateSize(ctx context.Context, storeID, id, name, value string) (*domain.Size, error) {
	size := &domain.Size{ID: id, StoreID: storeID, Name: name, Value: value}
	if err := s.sizes.Update(ctx, size); err != nil {
		return nil, mapCatalogError(err, "size")
	}
	updated, err := s.sizes.GetByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err, "size")
	}
	return updated, nil
}

// DeleteSize removes a size option.
func (s *CatalogService) DeleteSize(ctx context.Context, storeID, id string) error {
	size, err := s.sizes.GetByID(ctx, id)
	if err != nil {
		return mapCatalogError(err, "size")
	}
	if size.StoreID != storeID {
		return apperrors.NewNotFound("size", nil)
	}
	return mapCatalogError(s.sizes.Delete(ctx, id), "size")
}

// ListSizes lists the store's size options.
func (s *CatalogService) ListSizes(ctx context.Context, storeID string) ([]domain.Size, error) {
	result, err := s.sizes.ListByStore(ctx, storeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// CreateColor adds a color option.
func (s *CatalogService) CreateColor(ctx context.Context, storeID, name, value string) (*domain.Color, error) {
	color := &domain.Color{StoreID: storeID, Name: name, Value: value}
	if err := s.colors.Create(ctx, color); err != nil {
		return nil, apperrors.MapError(err)
	}
	return color, nil
}

// UpdateColor edits a color option.
func (s *CatalogService) UpdateColor(ctx context.Context, storeID, id, name, value string) (*domain.Color, error) {
	color := &domain.Color{ID: id, StoreID: storeID, Name: name, Value: value}
	if err := s.colors.Update(ctx, color); err != nil {
		return nil, mapCatalogError(err, "color")
	}
	updated, err := s.colors.GetByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err, "color")
	}
	return updated, nil
}

// DeleteColor removes a color option.
func (s *CatalogService) DeleteColor(ctx context.Context, storeID, id string) error {
	color, err := s.colors.GetByID(ctx, id)
	if err != nil {
		return mapCatalogError(err, "color")
	}
	if color.StoreID != storeID {
		return apperrors.NewNotFound("color", nil)
	}
	return mapCatalogError(s.colors.Delete(ctx, id), "color")
}

// ListColors lists the store's color options.
func (s *CatalogService) ListColors(ctx context.Context, storeID string) ([]domain.Color, error) {
	result, err := s.colors.ListByStore(ctx, storeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// ProductInput describes product creation/update payload.
type ProductInput struct {
	CategoryID string
	SizeID     string
	ColorID    string
	Name       string
	PriceCents int64
	IsFeatured bool
	IsArchived bool
	Images     []string
}

// CreateProduct adds a product whose category/size/color all belong to the store.
func (s *CatalogService) CreateProduct(ctx context.Context, storeID string, input ProductInput) (*domain.Product, error) {
	if err := s.checkProductRefs(ctx, storeID, input); err != nil {
		return nil, err
	}
	product := &domain.Product{
		StoreID:    storeID,
		CategoryID: input.CategoryID,
		SizeID:     input.SizeID,
		ColorID:    input.ColorID,
		Name:       input.Name,
		PriceCents: input.PriceCents,
		IsFeatured: input.IsFeatured,
		IsArchived: input.IsArchived,
		Images:     input.Images,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.MapError(err)
	}
	return product, nil
}

// UpdateProduct edits a product of the store.
func (s *CatalogService) UpdateProduct(ctx context.Context, storeID, id string, input ProductInput) (*domain.Product, error) {
	if err := s.checkProductRefs(ctx, storeID, input); err != nil {
		return nil, err
	}
	product := &domain.Product{
		ID:         id,
		StoreID:    storeID,
		CategoryID: input.CategoryID,
		SizeID:     input.SizeID,
		ColorID:    input.ColorID,
		Name:       input.Name,
		PriceCents: input.PriceCents,
		IsFeatured: input.IsFeatured,
		IsArchived: input.IsArchived,
		Images:     input.Images,
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, mapCatalogError(err, "product")
	}
	updated, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err, "product")
	}
	return updated, nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, storeID, id string) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return mapCatalogError(err, "product")
	}
	if product.StoreID != storeID {
		return apperrors.NewNotFound("product", nil)
	}
	return mapCatalogError(s.products.Delete(ctx, id), "product")
}

// ListProducts lists products matching the filter.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	result, err := s.products.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetProduct returns a product visible to the storefront.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err, "product")
	}
	return product, nil
}

func (s *CatalogService) checkBillboard(ctx context.Context, storeID, billboardID string) error {
	billboard, err := s.billboards.GetByID(ctx, billboardID)
	if err != nil {
		return mapCatalogError(err, "billboard")
	}
	if billboard.StoreID != storeID {
		return apperrors.NewValidationError("billboard does not belong to this store", nil)
	}
	return nil
}

func (s *CatalogService) checkProductRefs(ctx context.Context, storeID string, input ProductInput) error {
	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return mapCatalogError(err, "category")
	}
	if category.StoreID != storeID {
		return apperrors.NewValidationError("category does not belong to this store", nil)
	}

	size, err := s.sizes.GetByID(ctx, input.SizeID)
	if err != nil {
		return mapCatalogError(err, "size")
	}
	if size.StoreID != storeID {
		return apperrors.NewValidationError("size does not belong to this store", nil)
	}

	color, err := s.colors.GetByID(ctx, input.ColorID)
	if err != nil {
		return mapCatalogError(err, "color")
	}
	if color.StoreID != storeID {
		return apperrors.NewValidationError("color does not belong to this store", nil)
	}
	return nil
}

func mapCatalogError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound(resource, nil)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
		return apperrors.NewConflict(resource+" is still referenced", nil)
	}
	return apperrors.MapError(err)
}
