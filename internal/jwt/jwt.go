package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the signed client session token.
const CookieName = "webshop_session"

// JWT signs and verifies client session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
	Secure    bool          // Whether the session cookie requires HTTPS
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration, secure bool) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
		Secure:    secure,
	}
}

// Generate creates a token for the given client session id.
func (j *JWT) Generate(ctx context.Context, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": now.Add(j.Exp).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetSessionID parses the token string and returns the session id if valid
func (j *JWT) GetSessionID(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sid, ok := claims["sid"].(string); ok && sid != "" {
			return sid, nil
		}
		return "", errors.New("sid not found in token")
	}
	return "", errors.New("invalid token")
}

// GetTokenFromRequest extracts the token string from the session cookie
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", errors.New("session cookie missing")
	}
	if cookie.Value == "" {
		return "", errors.New("session cookie empty")
	}
	return cookie.Value, nil
}

// SetCookie writes the session cookie carrying token.
func (j *JWT) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(j.Exp.Seconds()),
		HttpOnly: true,
		Secure:   j.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
