package dto

import (
	"time"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// BillboardResponse is the billboard shape returned to clients.
type BillboardResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBillboardResponse maps a domain billboard.
func NewBillboardResponse(b *domain.Billboard) BillboardResponse {
	return BillboardResponse{
		ID:        b.ID,
		StoreID:   b.StoreID,
		Label:     b.Label,
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// NewBillboardResponses maps a slice of billboards.
func NewBillboardResponses(billboards []domain.Billboard) []BillboardResponse {
	result := make([]BillboardResponse, 0, len(billboards))
	for i := range billboards {
		result = append(result, NewBillboardResponse(&billboards[i]))
	}
	return result
}

// CategoryResponse is the category shape returned to clients.
type CategoryResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	BillboardID string    `json:"billboard_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		StoreID:     c.StoreID,
		BillboardID: c.BillboardID,
		Name:        c.Name,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewCategoryResponses maps a slice of categories.
func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, NewCategoryResponse(&categories[i]))
	}
	return result
}

// OptionResponse is the shared size/color shape returned to clients.
type OptionResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSizeResponse maps a domain size.
func NewSizeResponse(s *domain.Size) OptionResponse {
	return OptionResponse{
		ID:        s.ID,
		StoreID:   s.StoreID,
		Name:      s.Name,
		Value:     s.Value,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewSizeResponses maps a slice of sizes.
func NewSizeResponses(sizes []domain.Size) []OptionResponse {
	result := make([]OptionResponse, 0, len(sizes))
	for i := range sizes {
		result = append(result, NewSizeResponse(&sizes[i]))
	}
	return result
}

// NewColorResponse maps a domain color.
func NewColorResponse(c *domain.Color) OptionResponse {
	return OptionResponse{
		ID:        c.ID,
		StoreID:   c.StoreID,
		Name:      c.Name,
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewColorResponses maps a slice of colors.
func NewColorResponses(colors []domain.Color) []OptionResponse {
	result := make([]OptionResponse, 0, len(colors))
	for i := range colors {
		result = append(result, NewColorResponse(&colors[i]))
	}
	return result
}

// ProductResponse is the product shape returned to clients.
type ProductResponse struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	CategoryID string    `json:"category_id"`
	SizeID     string    `json:"size_id"`
	ColorID    string    `json:"color_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	IsFeatured bool      `json:"is_featured"`
	IsArchived bool      `json:"is_archived"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		StoreID:    p.StoreID,
		CategoryID: p.CategoryID,
		SizeID:     p.SizeID,
		ColorID:    p.ColorID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		IsFeatured: p.IsFeatured,
		IsArchived: p.IsArchived,
		Images:     p.Images,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// NewProductResponses maps a slice of products.
func NewProductResponses(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, NewProductResponse(&products[i]))
	}
	return result
}
