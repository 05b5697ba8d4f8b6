package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/api"
	"github.com/iudanet/snipkeeper/internal/validation"
	pkgapi "github.com/iudanet/snipkeeper/pkg/api"
)

// Session реализует Service для одного источника
type Session struct {
	apiClient *api.Client
	creds     adapter.CredentialStore
	logger    *slog.Logger
	now       func() time.Time
	sourceID  string
	mu        sync.Mutex
}

// Compile-time check that Session implements Service
var _ Service = (*Session)(nil)

// NewSession создает сессию источника sourceID
func NewSession(apiClient *api.Client, creds adapter.CredentialStore, sourceID string, logger *slog.Logger) *Session {
	return &Session{
		apiClient: apiClient,
		creds:     creds,
		logger:    logger,
		now:       time.Now,
		sourceID:  sourceID,
	}
}

// Register регистрирует нового пользователя
func (s *Session) Register(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return resp, nil
}

// Login выполняет аутентификацию и сохраняет токены
func (s *Session) Login(ctx context.Context, username, password string) (*Tokens, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	me, err := s.apiClient.Me(ctx, resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}

	tokens := &Tokens{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		UserID:       me.ID,
		Username:     me.Username,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveTokens(ctx, s.creds, s.sourceID, tokens); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Signed in", "source_id", s.sourceID, "username", me.Username)
	return tokens, nil
}

// Tokens возвращает сохранённую сессию
func (s *Session) Tokens(ctx context.Context) (*Tokens, error) {
	return loadTokens(ctx, s.creds, s.sourceID)
}

// AccessToken возвращает действующий access token
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	tokens, err := s.Tokens(ctx)
	if err != nil {
		return "", err
	}
	if !tokens.Expired(s.now()) {
		return tokens.AccessToken, nil
	}

	tokens, err = s.Refresh(ctx)
	if err != nil {
		return "", err
	}
	return tokens.AccessToken, nil
}

// Refresh обновляет пару токенов.
// Отклонённый сервером refresh token удаляет сессию: нужен повторный вход.
func (s *Session) Refresh(ctx context.Context) (*Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := loadTokens(ctx, s.creds, s.sourceID)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if derr := s.creds.DeleteCredential(ctx, s.sourceID); derr != nil {
				s.logger.Warn("Failed to delete rejected session", "source_id", s.sourceID, "error", derr)
			}
			return nil, fmt.Errorf("%w: session expired", ErrNotSignedIn)
		}
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	tokens.AccessToken = resp.AccessToken
	tokens.RefreshToken = resp.RefreshToken
	tokens.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)

	if err := saveTokens(ctx, s.creds, s.sourceID, tokens); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug("Access token refreshed", "source_id", s.sourceID)
	return tokens, nil
}

// WithToken вызывает fn с токеном; после 401 обновляет токен и повторяет один раз
func (s *Session) WithToken(ctx context.Context, fn func(token string) error) error {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return err
	}

	err = fn(token)
	if !errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	tokens, err := s.Refresh(ctx)
	if err != nil {
		return err
	}
	return fn(tokens.AccessToken)
}

// Logout выполняет выход из системы
func (s *Session) Logout(ctx context.Context) error {
	tokens, err := s.Tokens(ctx)
	if err != nil {
		s.logger.Debug("No session found during logout", "source_id", s.sourceID, "error", err)
	} else if logoutErr := s.apiClient.Logout(ctx, tokens.AccessToken, tokens.RefreshToken); logoutErr != nil {
		// Не прерываем процесс, если сервер недоступен
		s.logger.Warn("Failed to logout on server", "source_id", s.sourceID, "error", logoutErr)
	}

	if err := s.creds.DeleteCredential(ctx, s.sourceID); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}
