// Package auth управляет учётными данными источников:
// шифрованное хранилище и сессии на сервере папок.
package auth

import (
	"context"

	"github.com/iudanet/snipkeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service учётная запись на сервере папок для одного источника
type Service interface {
	// Register создаёт учётную запись на сервере
	Register(ctx context.Context, username, password string) (*api.RegisterResponse, error)

	// Login выполняет вход и сохраняет токены в Vault
	Login(ctx context.Context, username, password string) (*Tokens, error)

	// Tokens returns the stored session or ErrNotSignedIn.
	Tokens(ctx context.Context) (*Tokens, error)

	// AccessToken returns a valid access token, refreshing it when needed.
	AccessToken(ctx context.Context) (string, error)

	// Refresh обменивает refresh token на новую пару
	Refresh(ctx context.Context) (*Tokens, error)

	// WithToken вызывает fn с действующим токеном и повторяет один раз после 401
	WithToken(ctx context.Context, fn func(token string) error) error

	// Logout отзывает сессию на сервере (best effort) и удаляет локальные токены
	Logout(ctx context.Context) error
}
