package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/sbilibin2017/gw-webshop-client/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, sessionID, username, password string) error
}

// Logouter ends a session.
type Logouter interface {
	Logout(ctx context.Context, sessionID string) error
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Validates the form, authenticates against the storefront API and keeps the access token in the session
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "Logged in"
// @Failure 400 {object} models.LoginErrorResponse "Invalid form"
// @Failure 401 {object} models.LoginErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionGetter(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.LoginErrorResponse{Error: "no client session"})
			return
		}

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.LoginErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.Login(r.Context(), sid, req.Username, req.Password)
		var verr *services.LoginValidationError
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.LoginResponse{Redirect: "/"})
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, models.LoginErrorResponse{
				UsernameError: verr.UsernameError,
				PasswordError: verr.PasswordError,
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, models.LoginErrorResponse{Error: services.ErrInvalidCredentials.Error()})
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.LoginErrorResponse{Error: "Internal server error"})
		}
	}
}

// NewLogoutHandler returns an HTTP handler for logging out.
// @Summary User logout
// @Description Ends the remote session when possible and always forgets the access token
// @Tags auth
// @Produce json
// @Success 200 {object} models.RedirectResponse "Logged out"
// @Failure 500 {object} models.LoginErrorResponse "Session store failure"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionGetter(r.Context())
		if !ok {
			writeJSON(w, http.StatusOK, models.RedirectResponse{Redirect: "/login"})
			return
		}

		if err := svc.Logout(r.Context(), sid); err != nil {
			writeJSON(w, http.StatusInternalServerError, models.LoginErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, models.RedirectResponse{Redirect: "/login"})
	}
}
