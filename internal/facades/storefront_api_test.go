package facades

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/sbilibin2017/gw-webshop-client/internal/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake storefront API ---
func newFakeAPI(t *testing.T, handler http.HandlerFunc) *StorefrontAPIFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStorefrontAPIFacade(srv.URL+"/", srv.Client())
}

// --- Tests ---
func TestSubmitRegistration(t *testing.T) {
	form := models.RegistrationForm{
		Username:        "john@example.com",
		Password:        "abc12345",
		PasswordConfirm: "abc12345",
		FirstName:       "John",
		LastName:        "Doe",
		ShippingAddress: models.Address{Name: "John Doe", Country: "HU", City: "Budapest", Street: "Fo utca 1.", Zip: "1011", PhoneNumber: "+36301234567"},
		BillingAddress:  models.Address{Name: "John Doe", Country: "HU", City: "Budapest", Street: "Fo utca 1.", Zip: "1011", TaxNumber: models.DefaultTaxNumber},
	}

	tests := []struct {
		name      string
		status    int
		wantClass registration.StatusClass
	}{
		{"created", http.StatusCreated, ""},
		{"ok", http.StatusOK, ""},
		{"bad request", http.StatusBadRequest, registration.StatusClientError},
		{"conflict", http.StatusConflict, registration.StatusConflict},
		{"server error", http.StatusInternalServerError, registration.StatusOther},
		{"unprocessable", http.StatusUnprocessableEntity, registration.StatusOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/user", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got models.RegistrationForm
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, form, got)

				w.WriteHeader(tt.status)
			})

			err := api.SubmitRegistration(context.Background(), form)
			if tt.wantClass == "" {
				assert.NoError(t, err)
				return
			}

			var submitErr *registration.SubmitError
			require.True(t, errors.As(err, &submitErr))
			assert.Equal(t, tt.wantClass, submitErr.Class)
			assert.Equal(t, tt.status, submitErr.StatusCode)
		})
	}
}

func TestSubmitRegistration_WireFormat(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		for _, key := range []string{"username", "password", "passwordConfirm", "firstName", "lastName", "shippingAddress", "billingAddress"} {
			assert.Contains(t, raw, key)
		}
		billing := raw["billingAddress"].(map[string]any)
		assert.Equal(t, models.DefaultTaxNumber, billing["taxNumber"])
		w.WriteHeader(http.StatusCreated)
	})

	form := registration.NewForm().Values()
	assert.NoError(t, api.SubmitRegistration(context.Background(), form))
}

func TestSubmitRegistration_Cancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := api.SubmitRegistration(ctx, models.RegistrationForm{})
	require.Error(t, err)
	var submitErr *registration.SubmitError
	assert.False(t, errors.As(err, &submitErr))
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/login", r.URL.Path)
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"username": "john@example.com", "password": "abc12345"}, body)
			_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "TOKEN"})
		})

		token, err := api.Login(context.Background(), "john@example.com", "abc12345")
		assert.NoError(t, err)
		assert.Equal(t, "TOKEN", token)
	})

	t.Run("refused", func(t *testing.T) {
		api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		token, err := api.Login(context.Background(), "john@example.com", "wrong123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("missing token", func(t *testing.T) {
		api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := api.Login(context.Background(), "john@example.com", "abc12345")
		assert.Error(t, err)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer TOKEN", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(models.Profile{LastName: "Doe", FirstName: "John", Email: "john@example.com"})
		})

		profile, err := api.CurrentUser(context.Background(), "TOKEN")
		require.NoError(t, err)
		assert.Equal(t, &models.Profile{LastName: "Doe", FirstName: "John", Email: "john@example.com"}, profile)
	})

	t.Run("unauthorized", func(t *testing.T) {
		api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		profile, err := api.CurrentUser(context.Background(), "EXPIRED")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, profile)
	})

	t.Run("server error", func(t *testing.T) {
		api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := api.CurrentUser(context.Background(), "TOKEN")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	called := false
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/logout", r.URL.Path)
		assert.Equal(t, "Bearer TOKEN", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, api.Logout(context.Background(), "TOKEN"))
	assert.True(t, called)
}

func TestGetProduct(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/42":
			_ = json.NewEncoder(w).Encode(models.Product{Name: "Espresso", Price: 4990, Rating: 4, Stock: 12, Categories: []string{"coffee"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	product, err := api.GetProduct(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", product.ID)
	assert.Equal(t, "Espresso", product.Name)
	assert.Equal(t, []string{"coffee"}, product.Categories)

	product, err = api.GetProduct(context.Background(), "404")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, product)
}
