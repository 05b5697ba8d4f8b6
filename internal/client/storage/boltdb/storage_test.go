package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
)

// setupStorage открывает временную БД и возвращает функцию очистки
func setupStorage(t *testing.T) (*Storage, func()) {
	t.Helper()
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	return store, func() {
		require.NoError(t, store.Close())
	}
}

func TestNew_Success(t *testing.T) {
	store, cleanup := setupStorage(t)
	defer cleanup()

	// Проверяем, что бакеты существуют
	err := store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range allBuckets {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "client.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_LockedByAnotherOpen(t *testing.T) {
	prev := LockTimeout
	LockTimeout = 50 * time.Millisecond
	t.Cleanup(func() { LockTimeout = prev })

	path := filepath.Join(t.TempDir(), "client.db")
	first, err := New(context.Background(), path)
	require.NoError(t, err)

	started := time.Now()
	second, err := New(context.Background(), path)
	assert.ErrorIs(t, err, storage.ErrLocked)
	assert.Nil(t, second)
	assert.Less(t, time.Since(started), 5*time.Second)

	// После закрытия первого хранилища блокировка освобождается
	require.NoError(t, first.Close())
	second, err = New(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close не должен падать
	assert.NoError(t, store.Close())
}

func TestSettings(t *testing.T) {
	store, cleanup := setupStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.LoadSettings(ctx)
	assert.ErrorIs(t, err, storage.ErrSettingsNotFound)

	settings := &models.Settings{
		ResolveMode: models.ResolveUsageFirst,
		Sources: []models.Source{
			models.DefaultSource("/snips"),
			{ID: "team", Kind: "relay", Folder: "f1", Priority: 1},
		},
	}
	require.NoError(t, store.SaveSettings(ctx, settings))

	got, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestCursors(t *testing.T) {
	store, cleanup := setupStorage(t)
	defer cleanup()
	ctx := context.Background()

	cur, err := store.GetCursor(ctx, "team", "f1")
	require.NoError(t, err)
	assert.Empty(t, cur)

	require.NoError(t, store.SaveCursor(ctx, "team", "f1", "c-1"))
	require.NoError(t, store.SaveCursor(ctx, "team", "f2", "c-2"))
	require.NoError(t, store.SaveCursor(ctx, "teammate", "f1", "c-3"))

	cur, err = store.GetCursor(ctx, "team", "f1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", cur)

	require.NoError(t, store.DeleteCursors(ctx, "team"))

	cur, _ = store.GetCursor(ctx, "team", "f2")
	assert.Empty(t, cur)

	// источник с общим префиксом имени не затронут
	cur, _ = store.GetCursor(ctx, "teammate", "f1")
	assert.Equal(t, "c-3", cur)
}

func TestStatus(t *testing.T) {
	store, cleanup := setupStorage(t)
	defer cleanup()
	ctx := context.Background()

	st, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseIdle, st.Phase)

	want := &models.SyncStatus{Phase: models.PhaseFailed, LastError: "boom", SnippetCount: 3}
	require.NoError(t, store.SaveStatus(ctx, want))

	st, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.LastError, st.LastError)
	assert.Equal(t, models.PhaseFailed, st.Phase)
}

func TestCatalogSnapshot(t *testing.T) {
	store, cleanup := setupStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.GetCatalogSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrCatalogNotFound)

	cat := &models.Catalog{Entries: []models.CatalogEntry{
		{Snippet: models.Snippet{ID: "1", Trigger: ";hi", Content: "A"}, SourceID: "local"},
	}}
	require.NoError(t, store.SaveCatalogSnapshot(ctx, cat))

	got, err := store.GetCatalogSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, cat.Entries[0].Snippet.Content, got.Entries[0].Snippet.Content)

	raw, err := store.CatalogSnapshotBytes(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	require.NoError(t, store.SaveCatalogSnapshot(ctx, nil))
	_, err = store.GetCatalogSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrCatalogNotFound)
}

func TestUsage(t *testing.T) {
	store, cleanup := setupStorage(t)
	defer cleanup()
	ctx := context.Background()

	n, err := store.IncrementUsage(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.IncrementUsage(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = store.IncrementUsage(ctx, "b")
	require.NoError(t, err)

	counts, err := store.UsageCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, counts)
}

func TestCredentials(t *testing.T) {
	store, cleanup := setupStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.GetCredential(ctx, "me")
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)

	require.NoError(t, store.SaveCredential(ctx, "me", []byte("token")))
	data, err := store.GetCredential(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), data)

	require.NoError(t, store.DeleteCredential(ctx, "me"))
	_, err = store.GetCredential(ctx, "me")
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}
