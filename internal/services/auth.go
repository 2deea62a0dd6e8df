package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-webshop-client/internal/facades"
	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password, please try again")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// Login field messages.
const (
	MsgFieldRequired = "this field is required"
	MsgInvalidEmail  = "invalid e-mail format"
	MsgLoginPassword = "password must be at least 8 characters long and contain a lowercase letter and a digit"
)

// LoginValidationError carries per-field messages of a rejected login form.
type LoginValidationError struct {
	UsernameError string
	PasswordError string
}

func (e *LoginValidationError) Error() string {
	return fmt.Sprintf("invalid login form: username=%q password=%q", e.UsernameError, e.PasswordError)
}

// AuthAPI is the part of the storefront API used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.Profile, error)
}

// Sessions stores access tokens per client session.
type Sessions interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string) error
	Clear(ctx context.Context, sessionID string) error
}

var validate = validator.New(validator.WithRequiredStructEnabled())

const loginPasswordTag = "min=8,alphanum,lowercase,containsany=abcdefghijklmnopqrstuvwxyz,containsany=0123456789"

// AuthService handles login, logout and the profile page.
type AuthService struct {
	api      AuthAPI
	sessions Sessions
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(api AuthAPI, sessions Sessions) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
	}
}

// ValidateLogin checks the login form and returns nil when it may be sent.
func ValidateLogin(username, password string) *LoginValidationError {
	var res LoginValidationError

	switch {
	case username == "":
		res.UsernameError = MsgFieldRequired
	case validate.Var(username, "email") != nil:
		res.UsernameError = MsgInvalidEmail
	}

	switch {
	case password == "":
		res.PasswordError = MsgFieldRequired
	case validate.Var(password, loginPasswordTag) != nil:
		res.PasswordError = MsgLoginPassword
	}

	if res.UsernameError == "" && res.PasswordError == "" {
		return nil
	}
	return &res
}

// LoggedIn reports whether sessionID holds an access token.
func (svc *AuthService) LoggedIn(ctx context.Context, sessionID string) (bool, error) {
	token, err := svc.sessions.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Login validates the credentials, exchanges them for an access token and
// stores it in the session.
func (svc *AuthService) Login(ctx context.Context, sessionID, username, password string) error {
	if verr := ValidateLogin(username, password); verr != nil {
		return verr
	}

	token, err := svc.api.Login(ctx, username, password)
	if err != nil {
		logger.Log.Infow("login rejected", "session_id", sessionID, "username", username, "error", err)
		return ErrInvalidCredentials
	}

	if err := svc.sessions.Set(ctx, sessionID, token); err != nil {
		logger.Log.Errorw("failed to store access token", "session_id", sessionID, "error", err)
		return err
	}

	logger.Log.Infow("user logged in", "session_id", sessionID, "username", username)
	return nil
}

// Logout ends the remote session when possible and always forgets the token.
func (svc *AuthService) Logout(ctx context.Context, sessionID string) error {
	token, err := svc.sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to read access token", "session_id", sessionID, "error", err)
	}

	if token != "" {
		if err := svc.api.Logout(ctx, token); err != nil {
			logger.Log.Warnw("remote logout failed", "session_id", sessionID, "error", err)
		}
	}

	if err := svc.sessions.Clear(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to clear access token", "session_id", sessionID, "error", err)
		return err
	}
	return nil
}

// Profile returns the current user. An expired token is dropped and
// ErrNotLoggedIn returned.
func (svc *AuthService) Profile(ctx context.Context, sessionID string) (*models.Profile, error) {
	token, err := svc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	profile, err := svc.api.CurrentUser(ctx, token)
	if errors.Is(err, facades.ErrUnauthorized) {
		logger.Log.Infow("access token expired", "session_id", sessionID)
		if err := svc.sessions.Clear(ctx, sessionID); err != nil {
			logger.Log.Errorw("failed to clear access token", "session_id", sessionID, "error", err)
		}
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		logger.Log.Errorw("failed to load profile", "session_id", sessionID, "error", err)
		return nil, err
	}
	return profile, nil
}
