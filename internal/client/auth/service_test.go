package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/api"
	"github.com/iudanet/snipkeeper/internal/retry"
	pkgapi "github.com/iudanet/snipkeeper/pkg/api"
)

// fakeAuthServer минимальный сервер авторизации
type fakeAuthServer struct {
	access    map[string]bool
	refresh   map[string]bool
	logouts   int
	refreshes int
	issued    int
	mu        sync.Mutex
}

func newFakeAuthServer(t *testing.T) (*fakeAuthServer, *httptest.Server) {
	f := &fakeAuthServer{access: map[string]bool{}, refresh: map[string]bool{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, pkgapi.RegisterResponse{UserID: "u1", Message: "ok"})
	})
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "correct-password" {
			writeJSON(w, http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, f.issue(3600))
	})
	mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		ok := f.refresh[req.RefreshToken]
		delete(f.refresh, req.RefreshToken)
		f.refreshes++
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "invalid refresh token"})
			return
		}
		writeJSON(w, http.StatusOK, f.issue(3600))
	})
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !f.valid(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, pkgapi.UserResponse{ID: "u1", Username: "alice"})
	})
	mux.HandleFunc("POST /api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.logouts++
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return f, server
}

func (f *fakeAuthServer) issue(ttl int64) pkgapi.TokenResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	access := "access-" + string(rune('a'+f.issued))
	refresh := "refresh-" + string(rune('a'+f.issued))
	f.access[access] = true
	f.refresh[refresh] = true
	return pkgapi.TokenResponse{AccessToken: access, RefreshToken: refresh, ExpiresIn: ttl}
}

func (f *fakeAuthServer) revokeAccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = map[string]bool{}
}

func (f *fakeAuthServer) valid(r *http.Request) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.access[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func setupSession(t *testing.T) (*Session, *fakeAuthServer) {
	t.Helper()
	f, server := newFakeAuthServer(t)
	vault, _ := setupVault(t)
	client := api.NewClient(server.URL, retry.Policy{MaxAttempts: 1})
	return NewSession(client, vault, "team", slog.New(slog.NewTextHandler(io.Discard, nil))), f
}

func TestSession_LoginStoresTokens(t *testing.T) {
	s, _ := setupSession(t)
	ctx := context.Background()

	_, err := s.Tokens(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	tokens, err := s.Login(ctx, "alice", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "alice", tokens.Username)
	assert.Equal(t, "u1", tokens.UserID)

	stored, err := s.Tokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens.AccessToken, stored.AccessToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ExpiresAt, time.Minute)
}

func TestSession_LoginRejected(t *testing.T) {
	s, _ := setupSession(t)

	_, err := s.Login(context.Background(), "alice", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	_, err = s.Login(context.Background(), "a", "whatever")
	assert.ErrorContains(t, err, "invalid username")
}

func TestSession_AccessTokenRefreshesExpired(t *testing.T) {
	s, f := setupSession(t)
	ctx := context.Background()

	first, err := s.Login(ctx, "alice", "correct-password")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	token, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.AccessToken, token)
	assert.Equal(t, 1, f.refreshes)
}

func TestSession_WithTokenRetriesAfterUnauthorized(t *testing.T) {
	s, f := setupSession(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "correct-password")
	require.NoError(t, err)
	f.revokeAccess()

	var used []string
	err = s.WithToken(ctx, func(token string) error {
		used = append(used, token)
		_, err := s.apiClient.Me(ctx, token)
		return err
	})
	require.NoError(t, err)
	require.Len(t, used, 2)
	assert.NotEqual(t, used[0], used[1])
}

func TestSession_RefreshRejectedSignsOut(t *testing.T) {
	s, f := setupSession(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "correct-password")
	require.NoError(t, err)

	f.mu.Lock()
	f.refresh = map[string]bool{}
	f.mu.Unlock()

	_, err = s.Refresh(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = s.Tokens(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSession_WithTokenPassesOtherErrors(t *testing.T) {
	s, _ := setupSession(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "alice", "correct-password")
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	err = s.WithToken(ctx, func(string) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestSession_Logout(t *testing.T) {
	s, f := setupSession(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "correct-password")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	assert.Equal(t, 1, f.logouts)

	_, err = s.Tokens(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	// повторный выход без сессии не падает
	require.NoError(t, s.Logout(ctx))
	assert.Equal(t, 1, f.logouts)
}

func TestSession_Register(t *testing.T) {
	s, _ := setupSession(t)

	resp, err := s.Register(context.Background(), "alice", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID)

	_, err = s.Register(context.Background(), "alice", "short")
	assert.ErrorContains(t, err, "invalid password")
}
