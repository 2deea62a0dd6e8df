package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/sbilibin2017/gw-webshop-client/internal/registration"
)

var (
	// ErrUnauthorized is returned when the API rejects the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when login is refused.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrProductNotFound is returned for unknown product ids.
	ErrProductNotFound = errors.New("product not found")
)

// HTTPDoer is the part of *http.Client the facade needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StorefrontAPIFacade talks to the remote storefront API over HTTP.
type StorefrontAPIFacade struct {
	baseURL string
	client  HTTPDoer
}

// NewStorefrontAPIFacade creates a facade for the API rooted at baseURL.
func NewStorefrontAPIFacade(baseURL string, client HTTPDoer) *StorefrontAPIFacade {
	return &StorefrontAPIFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// SubmitRegistration posts the registration form. A non-2xx answer is
// returned as *registration.SubmitError with its status class.
func (f *StorefrontAPIFacade) SubmitRegistration(ctx context.Context, form models.RegistrationForm) error {
	resp, err := f.do(ctx, http.MethodPost, "/user", "", form)
	if err != nil {
		logger.Log.Errorw("failed to submit registration", "error", err)
		return err
	}
	defer drain(resp)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	class := registration.StatusOther
	switch resp.StatusCode {
	case http.StatusBadRequest:
		class = registration.StatusClientError
	case http.StatusConflict:
		class = registration.StatusConflict
	}
	logger.Log.Infow("registration rejected by API", "status", resp.StatusCode, "class", class)
	return &registration.SubmitError{Class: class, StatusCode: resp.StatusCode}
}

// Login exchanges credentials for an access token.
func (f *StorefrontAPIFacade) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := f.do(ctx, http.MethodPost, "/user/login", "", loginRequest{Username: username, Password: password})
	if err != nil {
		logger.Log.Errorw("failed to log in", "username", username, "error", err)
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		logger.Log.Infow("login refused by API", "username", username, "status", resp.StatusCode)
		return "", ErrInvalidCredentials
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("login response without access token")
	}
	return body.AccessToken, nil
}

// CurrentUser fetches the profile of the token's owner.
func (f *StorefrontAPIFacade) CurrentUser(ctx context.Context, token string) (*models.Profile, error) {
	resp, err := f.do(ctx, http.MethodGet, "/user", token, nil)
	if err != nil {
		logger.Log.Errorw("failed to fetch current user", "error", err)
		return nil, err
	}
	defer drain(resp)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch current user: unexpected status %d", resp.StatusCode)
	}

	var profile models.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

// Logout invalidates the token on the API side.
func (f *StorefrontAPIFacade) Logout(ctx context.Context, token string) error {
	resp, err := f.do(ctx, http.MethodPost, "/logout", token, nil)
	if err != nil {
		logger.Log.Errorw("failed to log out", "error", err)
		return err
	}
	defer drain(resp)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("logout: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// GetProduct fetches a single product.
func (f *StorefrontAPIFacade) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	resp, err := f.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), "", nil)
	if err != nil {
		logger.Log.Errorw("failed to fetch product", "product_id", id, "error", err)
		return nil, err
	}
	defer drain(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch product %s: unexpected status %d", id, resp.StatusCode)
	}

	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	if product.ID == "" {
		product.ID = id
	}
	return &product, nil
}

func (f *StorefrontAPIFacade) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return f.client.Do(req)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
