package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// LoginChecker reports whether a client session holds an access token.
type LoginChecker interface {
	LoggedIn(ctx context.Context, sessionID string) (bool, error)
}

// Redirect sends a 303 to target with a JSON body naming it.
func Redirect(w http.ResponseWriter, target string) {
	w.Header().Set("Location", target)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusSeeOther)
	_ = json.NewEncoder(w).Encode(models.RedirectResponse{Redirect: target})
}

// RedirectIfAuthenticated sends logged-in sessions to target.
func RedirectIfAuthenticated(checker LoginChecker, target string) func(http.Handler) http.Handler {
	return navigate(checker, target, true)
}

// RequireAuthenticated sends logged-out sessions to target.
func RequireAuthenticated(checker LoginChecker, target string) func(http.Handler) http.Handler {
	return navigate(checker, target, false)
}

func navigate(checker LoginChecker, target string, redirectWhen bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, ok := SessionIDFromContext(r.Context())
			if !ok {
				if !redirectWhen {
					Redirect(w, target)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			loggedIn, err := checker.LoggedIn(r.Context(), sid)
			if err != nil {
				logger.Log.Errorw("failed to check login state", "session_id", sid, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if loggedIn == redirectWhen {
				Redirect(w, target)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
