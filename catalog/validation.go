package catalog

import (
	"basketly-backend/apperr"
	"basketly-backend/models"
)

// ValidateCreate memeriksa payload pembuatan produk.
func ValidateCreate(input *models.ProductInput) error {
	if input.Name == nil || *input.Name == "" {
		return apperr.Validation("Missing required fields: name")
	}
	if input.Description == nil || *input.Description == "" {
		return apperr.Validation("Missing required fields: description")
	}
	if input.Category == nil || *input.Category == "" {
		return apperr.Validation("Missing required fields: category")
	}
	if (input.Image == nil || *input.Image == "") && input.ImageBase64 == "" {
		return apperr.Validation("Missing required fields: image")
	}
	if input.Price == nil {
		return apperr.Validation("Missing required fields: price")
	}
	return validateValues(input)
}

// ValidateUpdate memeriksa payload update parsial produk.
func ValidateUpdate(input *models.ProductInput) error {
	if input.Name != nil && *input.Name == "" {
		return apperr.Validation("Name must not be empty")
	}
	if input.Category != nil && *input.Category == "" {
		return apperr.Validation("Category must not be empty")
	}
	return validateValues(input)
}

func validateValues(input *models.ProductInput) error {
	if input.Price != nil && *input.Price <= 0 {
		return apperr.Validation("Price must be a positive number")
	}
	if input.DiscountPrice != nil && *input.DiscountPrice < 0 {
		return apperr.Validation("Discount price must not be negative")
	}
	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		return apperr.Validation("Rating must be between 0 and 5")
	}
	if input.Count != nil && *input.Count < 0 {
		return apperr.Validation("Stock count must be a non-negative number")
	}
	return nil
}
