package service

import (
	"context"
	"fmt"
	"training-center-files/config"
	"training-center-files/internal/model"
	"training-center-files/internal/ports"

	"golang.org/x/crypto/bcrypt"
)

// AuthenticationService : вход администратора, объявленного в конфигурации
// Пользовательской таблицы нет, хэш пароля лежит в config.yaml
type AuthenticationService struct {
	admin               *config.AdminConfig
	jwtServiceInterface ports.JWTServiceInterface
}

func NewAuthenticationService(admin *config.AdminConfig, jwtService ports.JWTServiceInterface) *AuthenticationService {
	return &AuthenticationService{
		admin:               admin,
		jwtServiceInterface: jwtService,
	}
}

func (s *AuthenticationService) Login(ctx context.Context, login, password string) (*model.TokensPair, error) {
	if login != s.admin.Login {
		return nil, fmt.Errorf("[AuthenticationService] неверный логин или пароль: %w", model.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("[AuthenticationService] неверный логин или пароль: %w", model.ErrUnauthorized)
	}

	tokens, err := s.jwtServiceInterface.GenerateAccessToken("admin", true)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка генерации токена: %w", err)
	}

	return tokens, nil
}
