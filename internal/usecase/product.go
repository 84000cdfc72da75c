package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/digishoplabs/digishop/internal/adapter/images"
	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
	"github.com/digishoplabs/digishop/internal/domain/model"
	"github.com/digishoplabs/digishop/internal/domain/repository"
)

const searchLimit = 50

// ImageUpload is a raw image submitted alongside a new product.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// AddProductInput carries the fields of a new catalog entry.
type AddProductInput struct {
	Type                 string
	Name                 string
	Category             string
	Brand                string
	Description          string
	Price                float64
	DiscountedPercentage float64
	Badge                bool
	IsAvailable          bool
	Offer                bool
	Tags                 string
	Images               []ImageUpload
}

// ProductUseCase manages the catalog and its image uploads.
type ProductUseCase struct {
	products repository.ProductRepository
	images   images.Store
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository, store images.Store) *ProductUseCase {
	return &ProductUseCase{products: products, images: store}
}

// Add uploads the submitted images and persists the catalog entry.
func (u *ProductUseCase) Add(ctx context.Context, input AddProductInput) (*model.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domainErrors.ErrInvalidInput)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: product price is required", domainErrors.ErrInvalidInput)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: product description is required", domainErrors.ErrInvalidInput)
	}

	urls := make([]string, 0, len(input.Images))
	for _, img := range input.Images {
		key := "products/" + uuid.NewString() + strings.ToLower(path.Ext(img.Filename))
		url, err := u.images.Upload(ctx, key, img.ContentType, img.Body)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		urls = append(urls, url)
	}

	return u.products.Create(ctx, &model.Product{
		Type:                 input.Type,
		Name:                 input.Name,
		Category:             input.Category,
		Brand:                input.Brand,
		Description:          input.Description,
		Price:                input.Price,
		DiscountedPercentage: input.DiscountedPercentage,
		Badge:                input.Badge,
		IsAvailable:          input.IsAvailable,
		Offer:                input.Offer,
		Tags:                 ParseTags(input.Tags),
		Images:               urls,
	})
}

// Remove deletes a catalog entry.
func (u *ProductUseCase) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: product id is required", domainErrors.ErrInvalidInput)
	}
	return u.products.Delete(ctx, id)
}

// List returns the full catalog.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get returns a single catalog entry by id.
func (u *ProductUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", domainErrors.ErrInvalidInput)
	}
	return u.products.GetByID(ctx, id)
}

// Search performs a case-insensitive substring match on product names. An
// empty query returns the unfiltered catalog, capped the same way.
func (u *ProductUseCase) Search(ctx context.Context, query string) ([]model.Product, error) {
	return u.products.SearchByName(ctx, query, searchLimit)
}

// ParseTags accepts either a JSON array of strings or a comma-separated list.
func ParseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
