package ports

import (
	"training-center-files/internal/model"
	"training-center-files/internal/security"
)

type JWTServiceInterface interface {
	GenerateAccessToken(userUUID string, isAdmin bool) (*model.TokensPair, error)
	ValidateJWT(tokenString string, secret []byte) (*security.Claims, error)
}
