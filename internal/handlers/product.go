package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-webshop-client/internal/facades"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// ProductGetter defines the interface that the product service must implement.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*models.ProductResponse, error)
}

const (
	msgUnknownProduct   = "This product does not exist"
	titleUnknownProduct = "Unknown product"
)

// NewGetProductHandler returns an HTTP handler for the product detail page.
// @Summary Product details
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductResponse "Product"
// @Failure 404 {object} models.ProductErrorResponse "Unknown product"
// @Failure 502 {object} models.ProductErrorResponse "Storefront API failure"
// @Router /products/{id} [get]
func NewGetProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			writeJSON(w, http.StatusNotFound, models.ProductErrorResponse{Error: msgUnknownProduct, Title: titleUnknownProduct})
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		switch {
		case errors.Is(err, facades.ErrProductNotFound):
			writeJSON(w, http.StatusNotFound, models.ProductErrorResponse{Error: msgUnknownProduct, Title: titleUnknownProduct})
		case err != nil:
			writeJSON(w, http.StatusBadGateway, models.ProductErrorResponse{Error: "Failed to load product", Title: titleUnknownProduct})
		default:
			writeJSON(w, http.StatusOK, product)
		}
	}
}
