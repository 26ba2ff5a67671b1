package service_test

import (
	"context"
	"testing"
	"training-center-files/config"
	"training-center-files/internal/model"
	"training-center-files/internal/security"
	"training-center-files/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockJWTService struct{ mock.Mock }

func (m *MockJWTService) GenerateAccessToken(userUUID string, isAdmin bool) (*model.TokensPair, error) {
	args := m.Called(userUUID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokensPair), args.Error(1)
}

func (m *MockJWTService) ValidateJWT(tokenString string, secret []byte) (*security.Claims, error) {
	args := m.Called(tokenString, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}

func newTestAuthenticationService(t *testing.T, password string) (*service.AuthenticationService, *MockJWTService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	mockJWT := new(MockJWTService)
	admin := &config.AdminConfig{Login: "admin", PasswordHash: string(hash)}
	return service.NewAuthenticationService(admin, mockJWT), mockJWT
}

func TestLogin_Success(t *testing.T) {
	svc, mockJWT := newTestAuthenticationService(t, "secret")

	mockJWT.On("GenerateAccessToken", "admin", true).
		Return(&model.TokensPair{AccessToken: "signed-token"}, nil)

	tokens, err := svc.Login(context.Background(), "admin", "secret")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", tokens.AccessToken)
	mockJWT.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockJWT := newTestAuthenticationService(t, "secret")

	_, err := svc.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, model.ErrUnauthorized)
	mockJWT.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestLogin_UnknownLogin(t *testing.T) {
	svc, mockJWT := newTestAuthenticationService(t, "secret")

	_, err := svc.Login(context.Background(), "intruder", "secret")

	assert.ErrorIs(t, err, model.ErrUnauthorized)
	mockJWT.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}
