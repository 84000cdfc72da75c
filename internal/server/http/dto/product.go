package dto

import (
	"time"

	"github.com/digishoplabs/digishop/internal/domain/model"
)

// ProductResponse mirrors the stored product document.
type ProductResponse struct {
	ID                   string    `json:"_id"`
	Type                 string    `json:"_type,omitempty"`
	Name                 string    `json:"name"`
	Category             string    `json:"category,omitempty"`
	Brand                string    `json:"brand,omitempty"`
	Description          string    `json:"description,omitempty"`
	Price                float64   `json:"price"`
	DiscountedPercentage float64   `json:"discountedPercentage,omitempty"`
	Badge                bool      `json:"badge"`
	IsAvailable          bool      `json:"isAvailable"`
	Offer                bool      `json:"offer"`
	Tags                 []string  `json:"tags,omitempty"`
	Images               []string  `json:"images,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ToProductResponse converts the domain product into its wire form.
func ToProductResponse(product model.Product) ProductResponse {
	return ProductResponse{
		ID:                   product.ID,
		Type:                 product.Type,
		Name:                 product.Name,
		Category:             product.Category,
		Brand:                product.Brand,
		Description:          product.Description,
		Price:                product.Price,
		DiscountedPercentage: product.DiscountedPercentage,
		Badge:                product.Badge,
		IsAvailable:          product.IsAvailable,
		Offer:                product.Offer,
		Tags:                 product.Tags,
		Images:               product.Images,
		CreatedAt:            product.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []model.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ToProductResponse(p))
	}
	return result
}
