package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-webshop-client/internal/facades"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/sbilibin2017/gw-webshop-client/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		password     string
		wantUsername string
		wantPassword string
	}{
		{name: "valid", username: "john@example.com", password: "secret123"},
		{name: "empty fields", wantUsername: services.MsgFieldRequired, wantPassword: services.MsgFieldRequired},
		{name: "not an email", username: "john", password: "secret123", wantUsername: services.MsgInvalidEmail},
		{name: "short password", username: "john@example.com", password: "abc123", wantPassword: services.MsgLoginPassword},
		{name: "no digit", username: "john@example.com", password: "secretpass", wantPassword: services.MsgLoginPassword},
		{name: "uppercase letter", username: "john@example.com", password: "Secret123", wantPassword: services.MsgLoginPassword},
		{name: "symbol", username: "john@example.com", password: "secret-123", wantPassword: services.MsgLoginPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := services.ValidateLogin(tt.username, tt.password)
			if tt.wantUsername == "" && tt.wantPassword == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantUsername, verr.UsernameError)
			assert.Equal(t, tt.wantPassword, verr.PasswordError)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := services.NewMockAuthAPI(ctrl)
	mockSessions := services.NewMockSessions(ctrl)
	svc := services.NewAuthService(mockAPI, mockSessions)

	tests := []struct {
		name     string
		username string
		password string
		setup    func()
		wantErr  error
	}{
		{
			name:     "successful login",
			username: "john@example.com",
			password: "secret123",
			setup: func() {
				mockAPI.EXPECT().Login(gomock.Any(), "john@example.com", "secret123").Return("TOKEN", nil)
				mockSessions.EXPECT().Set(gomock.Any(), "sid", "TOKEN").Return(nil)
			},
		},
		{
			name:     "remote rejects",
			username: "john@example.com",
			password: "secret123",
			setup: func() {
				mockAPI.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", facades.ErrInvalidCredentials)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "session store fails",
			username: "john@example.com",
			password: "secret123",
			setup: func() {
				mockAPI.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("TOKEN", nil)
				mockSessions.EXPECT().Set(gomock.Any(), "sid", "TOKEN").Return(errors.New("redis down"))
			},
			wantErr: errors.New("redis down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			err := svc.Login(context.Background(), "sid", tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login_InvalidFormNeverCallsAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(services.NewMockAuthAPI(ctrl), services.NewMockSessions(ctrl))

	err := svc.Login(context.Background(), "sid", "john", "")
	var verr *services.LoginValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, services.MsgInvalidEmail, verr.UsernameError)
	assert.Equal(t, services.MsgFieldRequired, verr.PasswordError)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := services.NewMockAuthAPI(ctrl)
	mockSessions := services.NewMockSessions(ctrl)
	svc := services.NewAuthService(mockAPI, mockSessions)
	ctx := context.Background()

	t.Run("remote failure still clears token", func(t *testing.T) {
		mockSessions.EXPECT().Get(gomock.Any(), "sid").Return("TOKEN", nil)
		mockAPI.EXPECT().Logout(gomock.Any(), "TOKEN").Return(errors.New("unreachable"))
		mockSessions.EXPECT().Clear(gomock.Any(), "sid").Return(nil)

		assert.NoError(t, svc.Logout(ctx, "sid"))
	})

	t.Run("no token skips remote call", func(t *testing.T) {
		mockSessions.EXPECT().Get(gomock.Any(), "sid").Return("", nil)
		mockSessions.EXPECT().Clear(gomock.Any(), "sid").Return(nil)

		assert.NoError(t, svc.Logout(ctx, "sid"))
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := services.NewMockAuthAPI(ctrl)
	mockSessions := services.NewMockSessions(ctrl)
	svc := services.NewAuthService(mockAPI, mockSessions)
	ctx := context.Background()

	t.Run("logged out", func(t *testing.T) {
		mockSessions.EXPECT().Get(gomock.Any(), "sid").Return("", nil)

		_, err := svc.Profile(ctx, "sid")
		assert.ErrorIs(t, err, services.ErrNotLoggedIn)
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		mockSessions.EXPECT().Get(gomock.Any(), "sid").Return("OLD", nil)
		mockAPI.EXPECT().CurrentUser(gomock.Any(), "OLD").Return(nil, facades.ErrUnauthorized)
		mockSessions.EXPECT().Clear(gomock.Any(), "sid").Return(nil)

		_, err := svc.Profile(ctx, "sid")
		assert.ErrorIs(t, err, services.ErrNotLoggedIn)
	})

	t.Run("profile", func(t *testing.T) {
		want := &models.Profile{LastName: "Doe", FirstName: "John", Email: "john@example.com"}
		mockSessions.EXPECT().Get(gomock.Any(), "sid").Return("TOKEN", nil)
		mockAPI.EXPECT().CurrentUser(gomock.Any(), "TOKEN").Return(want, nil)

		got, err := svc.Profile(ctx, "sid")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("logged in", func(t *testing.T) {
		mockSessions.EXPECT().Get(gomock.Any(), "sid").Return("TOKEN", nil)

		ok, err := svc.LoggedIn(ctx, "sid")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
