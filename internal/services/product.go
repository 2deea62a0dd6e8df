package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// ProductReader fetches products from the storefront API.
type ProductReader interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// ProductCache caches products.
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product) error
}

const maxStars = 5

type ProductService struct {
	reader ProductReader
	cache  ProductCache
}

// NewProductService creates a new service instance. cache may be nil.
func NewProductService(reader ProductReader, cache ProductCache) *ProductService {
	return &ProductService{
		reader: reader,
		cache:  cache,
	}
}

// GetProduct returns the product view, consulting the cache first.
func (svc *ProductService) GetProduct(ctx context.Context, id string) (*models.ProductResponse, error) {
	var product *models.Product

	if svc.cache != nil {
		cached, err := svc.cache.GetProduct(ctx, id)
		if err == nil {
			product = cached
		}
	}

	if product == nil {
		fetched, err := svc.reader.GetProduct(ctx, id)
		if err != nil {
			logger.Log.Infow("failed to fetch product", "id", id, "error", err)
			return nil, err
		}
		product = fetched

		if svc.cache != nil {
			if err := svc.cache.SetProduct(ctx, product); err != nil {
				logger.Log.Error(err)
			}
		}
	}

	return &models.ProductResponse{
		Product:    *product,
		Title:      product.Name,
		Stars:      Stars(product.Rating),
		PriceLabel: PriceLabel(product.Price),
	}, nil
}

// Stars renders a 0-5 rating as filled stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}
	return strings.Repeat("★", rating)
}

// PriceLabel formats a price in forints.
func PriceLabel(price float64) string {
	return fmt.Sprintf("%s Ft", strconv.FormatFloat(price, 'f', -1, 64))
}
