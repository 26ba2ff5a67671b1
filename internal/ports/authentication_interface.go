package ports

import (
	"context"
	"training-center-files/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, login, password string) (*model.TokensPair, error)
}
