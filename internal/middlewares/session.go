package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
)

// Tokener defines the minimal interface needed by the session middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
	Generate(ctx context.Context, sessionID string) (string, error)
	SetCookie(w http.ResponseWriter, token string)
}

type sessionIDKey struct{}

// WithSessionID returns a copy of ctx carrying the client session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext returns the client session id set by SessionMiddleware.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sessionIDKey{}).(string)
	return sid, ok && sid != ""
}

// SessionMiddleware resolves the client session from the signed session
// cookie and starts a new session when the cookie is missing or invalid.
func SessionMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				sid, err := tokener.GetSessionID(ctx, tokenString)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithSessionID(ctx, sid)))
					return
				}
				logger.Log.Infow("discarding invalid session cookie", "err", err)
			}

			sid := uuid.NewString()
			tokenString, err := tokener.Generate(ctx, sid)
			if err != nil {
				logger.Log.Errorw("failed to start client session", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			tokener.SetCookie(w, tokenString)
			logger.Log.Debugw("client session started", "session_id", sid)

			next.ServeHTTP(w, r.WithContext(WithSessionID(ctx, sid)))
		})
	}
}
