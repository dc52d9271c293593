package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// BillboardRequest payload for billboard create/update.
type BillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
}

// Validate runs validation rules.
func (r BillboardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Label, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.ImageURL, is.URL),
	)
}

// CategoryRequest payload for category create/update.
type CategoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboard_id"`
}

// Validate runs validation rules.
func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.BillboardID, validation.Required, is.UUID),
	)
}

// OptionRequest payload for size and color create/update.
type OptionRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Validate runs validation rules.
func (r OptionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Value, validation.Required, validation.Length(1, 100)),
	)
}

// ProductRequest payload for product create/update.
type ProductRequest struct {
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	CategoryID string   `json:"category_id"`
	SizeID     string   `json:"size_id"`
	ColorID    string   `json:"color_id"`
	IsFeatured bool     `json:"is_featured"`
	IsArchived bool     `json:"is_archived"`
	Images     []string `json:"images"`
}

// Validate runs validation rules.
func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.PriceCents, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.CategoryID, validation.Required, is.UUID),
		validation.Field(&r.SizeID, validation.Required, is.UUID),
		validation.Field(&r.ColorID, validation.Required, is.UUID),
	)
}
