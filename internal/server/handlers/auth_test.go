package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/crypto"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/server/storage"
	"github.com/iudanet/snipkeeper/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte("test-secret-key"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

// authStore in-memory пользователи и токены поверх moq моков
type authStore struct {
	users  map[string]*models.User
	tokens map[string]*models.RefreshToken
	mu     sync.Mutex
}

func newAuthStore() *authStore {
	return &authStore{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (s *authStore) userMock() *storage.UserStorageMock {
	return &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, u := range s.users {
				if u.Username == user.Username {
					return storage.ErrUserAlreadyExists
				}
			}
			s.users[user.ID] = user
			return nil
		},
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if u, ok := s.users[userID]; ok {
				return u, nil
			}
			return nil, storage.ErrUserNotFound
		},
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, u := range s.users {
				if u.Username == username {
					return u, nil
				}
			}
			return nil, storage.ErrUserNotFound
		},
		UpdateLastLoginFunc: func(ctx context.Context, userID string, lastLogin time.Time) error {
			return nil
		},
	}
}

func (s *authStore) tokenMock() *storage.TokenStorageMock {
	return &storage.TokenStorageMock{
		SaveRefreshTokenFunc: func(ctx context.Context, token *models.RefreshToken) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.tokens[token.Token] = token
			return nil
		},
		GetRefreshTokenFunc: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if t, ok := s.tokens[token]; ok {
				return t, nil
			}
			return nil, storage.ErrTokenNotFound
		},
		DeleteRefreshTokenFunc: func(ctx context.Context, token string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.tokens[token]; !ok {
				return storage.ErrTokenNotFound
			}
			delete(s.tokens, token)
			return nil
		},
		DeleteUserTokensFunc: func(ctx context.Context, userID string) (int, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			n := 0
			for k, t := range s.tokens {
				if t.UserID == userID {
					delete(s.tokens, k)
					n++
				}
			}
			return n, nil
		},
	}
}

func (s *authStore) addUser(t *testing.T, id, username, password string) {
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	s.users[id] = &models.User{ID: id, Username: username, PasswordHash: hash, CreatedAt: time.Now()}
}

func newTestAuthHandler(s *authStore) *AuthHandler {
	return NewAuthHandler(setupTestLogger(), s.userMock(), s.tokenMock(), testJWTConfig())
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		body     any
		name     string
		wantCode int
	}{
		{name: "success", body: api.RegisterRequest{Username: "alice", Password: "password123"}, wantCode: http.StatusCreated},
		{name: "invalid json", body: "not an object", wantCode: http.StatusBadRequest},
		{name: "invalid username", body: api.RegisterRequest{Username: "a!", Password: "password123"}, wantCode: http.StatusBadRequest},
		{name: "short password", body: api.RegisterRequest{Username: "alice", Password: "short"}, wantCode: http.StatusBadRequest},
		{name: "duplicate", body: api.RegisterRequest{Username: "taken", Password: "password123"}, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newAuthStore()
			store.addUser(t, "u0", "taken", "password123")
			handler := newTestAuthHandler(store)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusCreated {
				var errResp api.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Equal(t, http.StatusText(tt.wantCode), errResp.Error)
				return
			}

			var resp api.RegisterResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			require.Contains(t, store.users, resp.UserID)
			assert.NoError(t, crypto.CheckPassword(store.users[resp.UserID].PasswordHash, "password123"))
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	store := newAuthStore()
	store.addUser(t, "u1", "alice", "password123")
	handler := newTestAuthHandler(store)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			jsonBody(t, api.LoginRequest{Username: "alice", Password: "password123"}))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.TokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, int64(900), resp.ExpiresIn)

		claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)

		// В хранилище только хеш refresh token
		assert.Contains(t, store.tokens, crypto.HashToken(resp.RefreshToken))
		assert.NotContains(t, store.tokens, resp.RefreshToken)
	})

	failures := []struct {
		req      api.LoginRequest
		name     string
		wantCode int
	}{
		{name: "wrong password", req: api.LoginRequest{Username: "alice", Password: "wrong-pass"}, wantCode: http.StatusUnauthorized},
		{name: "unknown user", req: api.LoginRequest{Username: "bob", Password: "password123"}, wantCode: http.StatusUnauthorized},
		{name: "empty password", req: api.LoginRequest{Username: "alice"}, wantCode: http.StatusBadRequest},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, tt.req))
			w := httptest.NewRecorder()
			handler.Login(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func login(t *testing.T, handler *AuthHandler, username, password string) api.TokenResponse {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		jsonBody(t, api.LoginRequest{Username: username, Password: password}))
	w := httptest.NewRecorder()
	handler.Login(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAuthHandler_Refresh(t *testing.T) {
	store := newAuthStore()
	store.addUser(t, "u1", "alice", "password123")
	handler := newTestAuthHandler(store)

	tokens := login(t, handler, "alice", "password123")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh",
		jsonBody(t, api.RefreshRequest{RefreshToken: tokens.RefreshToken}))
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var refreshed api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&refreshed))
	assert.NotEqual(t, tokens.RefreshToken, refreshed.RefreshToken)

	// Старый токен больше не принимается
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh",
		jsonBody(t, api.RefreshRequest{RefreshToken: tokens.RefreshToken}))
	w = httptest.NewRecorder()
	handler.Refresh(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	t.Run("empty token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", jsonBody(t, api.RefreshRequest{}))
		w := httptest.NewRecorder()
		handler.Refresh(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		store.tokens[crypto.HashToken("stale")] = &models.RefreshToken{
			Token:     crypto.HashToken("stale"),
			UserID:    "u1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", jsonBody(t, api.RefreshRequest{RefreshToken: "stale"}))
		w := httptest.NewRecorder()
		handler.Refresh(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, store.tokens, crypto.HashToken("stale"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	store := newAuthStore()
	store.addUser(t, "u1", "alice", "password123")
	handler := newTestAuthHandler(store)

	first := login(t, handler, "alice", "password123")
	second := login(t, handler, "alice", "password123")
	require.Len(t, store.tokens, 2)

	ctx := WithUser(context.Background(), "u1", "alice")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout",
		jsonBody(t, api.LogoutRequest{RefreshToken: first.RefreshToken})).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotContains(t, store.tokens, crypto.HashToken(first.RefreshToken))
	assert.Contains(t, store.tokens, crypto.HashToken(second.RefreshToken))

	// Без тела выходим из всех сессий
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil).WithContext(ctx)
	w = httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.tokens)

	t.Run("requires user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		w := httptest.NewRecorder()
		handler.Logout(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	store := newAuthStore()
	store.addUser(t, "u1", "alice", "password123")
	handler := newTestAuthHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil).
		WithContext(WithUser(context.Background(), "u1", "alice"))
	w := httptest.NewRecorder()
	handler.Me(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var me api.UserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&me))
	assert.Equal(t, api.UserResponse{ID: "u1", Username: "alice"}, me)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Basic abc"},
		{header: "Bearer "},
		{header: ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", tt.header)
		got, err := BearerToken(req)
		if !tt.ok {
			assert.ErrorIs(t, err, ErrMissingBearer, tt.header)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
