package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/snipkeeper/internal/crypto"
)

func setupVault(t *testing.T) (*Vault, *boltdb.Storage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	vault, err := NewVault(store, key)
	require.NoError(t, err)
	return vault, store
}

func TestVault_SaveAndGet(t *testing.T) {
	vault, store := setupVault(t)
	ctx := context.Background()

	require.NoError(t, vault.SaveCredential(ctx, "team", []byte(`{"token":"secret"}`)))

	got, err := vault.GetCredential(ctx, "team")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"secret"}`, string(got))

	// в хранилище лежит шифротекст
	raw, err := store.GetCredential(ctx, "team")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
}

func TestVault_NotFound(t *testing.T) {
	vault, _ := setupVault(t)

	_, err := vault.GetCredential(context.Background(), "missing")
	assert.ErrorIs(t, err, adapter.ErrCredentialNotFound)
}

func TestVault_BoundToSource(t *testing.T) {
	vault, store := setupVault(t)
	ctx := context.Background()

	require.NoError(t, vault.SaveCredential(ctx, "team", []byte("secret")))

	// подмена записи другого источника обнаруживается
	raw, err := store.GetCredential(ctx, "team")
	require.NoError(t, err)
	require.NoError(t, store.SaveCredential(ctx, "org", raw))

	_, err = vault.GetCredential(ctx, "org")
	assert.ErrorIs(t, err, crypto.ErrCorrupted)
}

func TestVault_Delete(t *testing.T) {
	vault, _ := setupVault(t)
	ctx := context.Background()

	require.NoError(t, vault.SaveCredential(ctx, "team", []byte("secret")))
	require.NoError(t, vault.DeleteCredential(ctx, "team"))

	_, err := vault.GetCredential(ctx, "team")
	assert.ErrorIs(t, err, adapter.ErrCredentialNotFound)
}

func TestNewVault_InvalidKey(t *testing.T) {
	_, err := NewVault(nil, []byte("short"))
	assert.Error(t, err)
}
