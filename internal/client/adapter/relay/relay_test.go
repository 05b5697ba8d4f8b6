package relay

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/api"
	"github.com/iudanet/snipkeeper/internal/client/iocli"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/retry"
	"github.com/iudanet/snipkeeper/internal/server"
	"github.com/iudanet/snipkeeper/internal/server/handlers"
	"github.com/iudanet/snipkeeper/internal/server/middleware"
	"github.com/iudanet/snipkeeper/internal/server/storage/sqlite"
	pkgapi "github.com/iudanet/snipkeeper/pkg/api"
)

type fixture struct {
	srv    *httptest.Server
	store  *sqlite.Storage
	creds  *adapter.CredentialStoreMock
	client *api.Client
	deps   adapter.Dependencies
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(server.NewHTTPHandler(server.Dependencies{
		Storage: store,
		Logger:  logger,
		JWT: handlers.JWTConfig{
			Secret:          []byte("0123456789abcdef"),
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
		Version:     "test",
		Limiter:     middleware.NewRateLimiter(1000, time.Minute),
		AuthLimiter: middleware.NewRateLimiter(100, time.Minute),
	}))
	t.Cleanup(srv.Close)

	policy := retry.Policy{MaxAttempts: 1, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	return &fixture{
		srv:    srv,
		store:  store,
		creds:  memoryCredentials(),
		client: api.NewClient(srv.URL, policy),
		deps: adapter.Dependencies{
			Logger:   logger,
			Settings: map[string]string{SettingURL: srv.URL},
			Retry:    policy,
		},
	}
}

func memoryCredentials() *adapter.CredentialStoreMock {
	var mu sync.Mutex
	data := map[string][]byte{}
	return &adapter.CredentialStoreMock{
		GetCredentialFunc: func(_ context.Context, sourceID string) ([]byte, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[sourceID]
			if !ok {
				return nil, adapter.ErrCredentialNotFound
			}
			return v, nil
		},
		SaveCredentialFunc: func(_ context.Context, sourceID string, v []byte) error {
			mu.Lock()
			defer mu.Unlock()
			data[sourceID] = v
			return nil
		},
		DeleteCredentialFunc: func(_ context.Context, sourceID string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, sourceID)
			return nil
		},
	}
}

// signedInAdapter регистрирует пользователя, входит через SignIn и выбирает папку
func (f *fixture) signedInAdapter(t *testing.T, username string) (*Adapter, string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.client.Register(ctx, pkgapi.RegisterRequest{Username: username, Password: "password123"})
	require.NoError(t, err)

	deps := f.deps
	deps.Credentials = f.creds
	deps.Prompt = iocli.NewStreams(strings.NewReader(username+"\npassword123\n"), io.Discard)

	a, err := New(models.Source{ID: "team-" + username, Kind: Kind, Name: "Team"}, deps)
	require.NoError(t, err)

	signedIn, err := a.IsSignedIn(ctx)
	require.NoError(t, err)
	assert.False(t, signedIn)

	require.NoError(t, a.SignIn(ctx))

	signedIn, err = a.IsSignedIn(ctx)
	require.NoError(t, err)
	assert.True(t, signedIn)

	tokens, err := f.client.Login(ctx, pkgapi.LoginRequest{Username: username, Password: "password123"})
	require.NoError(t, err)
	folder, err := f.client.CreateFolder(ctx, tokens.AccessToken, "Snippets "+username)
	require.NoError(t, err)

	return a.(*Adapter), folder.ID
}

func TestNew_RequiresServerURL(t *testing.T) {
	_, err := New(models.Source{ID: "team", Kind: Kind}, adapter.Dependencies{Credentials: memoryCredentials()})
	assert.ErrorIs(t, err, ErrNoServer)
}

func TestAdapter_SignInFailure(t *testing.T) {
	f := newFixture(t)
	deps := f.deps
	deps.Credentials = f.creds
	deps.Prompt = iocli.NewStreams(strings.NewReader("ghost\nwrong-password\n"), io.Discard)

	a, err := New(models.Source{ID: "team", Kind: Kind}, deps)
	require.NoError(t, err)

	err = a.SignIn(context.Background())
	require.Error(t, err)
	assert.True(t, adapter.IsAuthError(err))
}

func TestAdapter_SelectFolderByIDAndName(t *testing.T) {
	f := newFixture(t)
	a, folderID := f.signedInAdapter(t, "alice")
	ctx := context.Background()

	_, err := a.SelectedFolder(ctx)
	assert.ErrorIs(t, err, adapter.ErrNotConfigured)

	byID, err := a.SelectFolder(ctx, folderID)
	require.NoError(t, err)
	assert.Equal(t, "Snippets alice", byID.Name)

	byName, err := a.SelectFolder(ctx, "snippets ALICE")
	require.NoError(t, err)
	assert.Equal(t, folderID, byName.ID)

	_, err = a.SelectFolder(ctx, "missing")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestAdapter_ListingAndChanges(t *testing.T) {
	f := newFixture(t)
	a, folderID := f.signedInAdapter(t, "alice")
	ctx := context.Background()

	_, err := a.SelectFolder(ctx, folderID)
	require.NoError(t, err)

	uploaded, err := a.Upload(ctx, "greetings/hi.json", []byte(`{"trigger":";hi"}`))
	require.NoError(t, err)
	assert.Equal(t, "hi.json", uploaded.Name)

	cursor, err := a.DeltaCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", cursor)

	files, err := a.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, uploaded.ID, files[0].ID)

	data, err := a.Download(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"trigger":";hi"}`, string(data))

	meta, err := a.Metadata(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, uploaded.Revision, meta.Revision)

	_, err = a.Upload(ctx, "bye.json", []byte(`{"trigger":";bye"}`))
	require.NoError(t, err)
	require.NoError(t, a.Remove(ctx, "greetings/hi.json"))

	changes, err := a.ListChanges(ctx, cursor)
	require.NoError(t, err)
	assert.False(t, changes.Full)
	assert.False(t, changes.ResyncRequired)
	assert.Equal(t, "3", changes.Cursor)
	require.Len(t, changes.Files, 1)
	assert.Equal(t, "bye.json", changes.Files[0].Path)
	assert.Equal(t, []string{uploaded.ID}, changes.Removed)

	_, err = a.Download(ctx, uploaded.ID)
	assert.ErrorIs(t, err, adapter.ErrFileNotFound)
	assert.ErrorIs(t, a.Remove(ctx, "greetings/hi.json"), adapter.ErrFileNotFound)
}

func TestAdapter_EmptyCursorListsEverything(t *testing.T) {
	f := newFixture(t)
	a, folderID := f.signedInAdapter(t, "alice")
	ctx := context.Background()

	_, err := a.SelectFolder(ctx, folderID)
	require.NoError(t, err)

	uploaded, err := a.Upload(ctx, "hi.json", []byte(`{"trigger":";hi"}`))
	require.NoError(t, err)

	changes, err := a.ListChanges(ctx, "")
	require.NoError(t, err)
	assert.True(t, changes.Full)
	assert.False(t, changes.ResyncRequired)
	assert.Equal(t, "1", changes.Cursor)
	require.Len(t, changes.Files, 1)
	assert.Equal(t, uploaded.ID, changes.Files[0].ID)
}

func TestAdapter_ExpiredCursorRequestsResync(t *testing.T) {
	f := newFixture(t)
	a, folderID := f.signedInAdapter(t, "alice")
	ctx := context.Background()

	_, err := a.SelectFolder(ctx, folderID)
	require.NoError(t, err)

	_, err = a.Upload(ctx, "a.json", []byte("{}"))
	require.NoError(t, err)
	require.NoError(t, a.Remove(ctx, "a.json"))
	_, err = f.store.Compact(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)

	changes, err := a.ListChanges(ctx, "0")
	require.NoError(t, err)
	assert.True(t, changes.ResyncRequired)

	changes, err = a.ListChanges(ctx, "not-a-number")
	require.NoError(t, err)
	assert.True(t, changes.ResyncRequired)
}

func TestAdapter_NotSignedIn(t *testing.T) {
	f := newFixture(t)
	deps := f.deps
	deps.Credentials = f.creds

	a, err := New(models.Source{ID: "team", Kind: Kind}, deps)
	require.NoError(t, err)

	_, err = a.SelectFolder(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, adapter.IsAuthError(err))
}
