package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-webshop-client/internal/facades"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProductGetter(ctrl)

	r := chi.NewRouter()
	r.Get("/products/{id}", NewGetProductHandler(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().GetProduct(gomock.Any(), "42").Return(&models.ProductResponse{
			Product: models.Product{ID: "42", Name: "Espresso"},
			Title:   "Espresso",
			Stars:   "★★★",
		}, nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/42", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var got models.ProductResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "Espresso", got.Title)
		assert.Equal(t, "42", got.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		mockSvc.EXPECT().GetProduct(gomock.Any(), "9").Return(nil, facades.ErrProductNotFound)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/9", nil))
		require.Equal(t, http.StatusNotFound, rr.Code)

		var got models.ProductErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "This product does not exist", got.Error)
		assert.Equal(t, "Unknown product", got.Title)
	})

	t.Run("api failure", func(t *testing.T) {
		mockSvc.EXPECT().GetProduct(gomock.Any(), "1").Return(nil, errors.New("timeout"))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/1", nil))
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
