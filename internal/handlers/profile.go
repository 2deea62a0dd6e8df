package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/sbilibin2017/gw-webshop-client/internal/services"
)

// Profiler loads the current user.
type Profiler interface {
	Profile(ctx context.Context, sessionID string) (*models.Profile, error)
}

// NewProfileHandler returns an HTTP handler for the profile page.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} models.ProfileErrorResponse "Not logged in"
// @Failure 502 {object} models.ProfileErrorResponse "Storefront API failure"
// @Router /profile [get]
func NewProfileHandler(svc Profiler, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionGetter(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.ProfileErrorResponse{Error: "Unauthorized", Redirect: "/login"})
			return
		}

		profile, err := svc.Profile(r.Context(), sid)
		switch {
		case errors.Is(err, services.ErrNotLoggedIn):
			writeJSON(w, http.StatusUnauthorized, models.ProfileErrorResponse{Error: "Unauthorized", Redirect: "/login"})
		case err != nil:
			writeJSON(w, http.StatusBadGateway, models.ProfileErrorResponse{Error: "Failed to load profile"})
		default:
			writeJSON(w, http.StatusOK, profile)
		}
	}
}
