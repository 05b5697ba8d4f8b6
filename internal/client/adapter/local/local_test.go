package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/crypto"
	"github.com/iudanet/snipkeeper/internal/models"
)

func setupAdapter(t *testing.T) (*Adapter, string) {
	t.Helper()

	dir := t.TempDir()
	a, err := New(models.DefaultSource(dir), adapter.Dependencies{})
	require.NoError(t, err)

	la := a.(*Adapter)
	_, err = la.SelectFolder(context.Background(), dir)
	require.NoError(t, err)
	return la, dir
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

func TestAdapter_NotConfigured(t *testing.T) {
	a, err := New(models.Source{ID: "local", Kind: Kind}, adapter.Dependencies{})
	require.NoError(t, err)

	_, err = a.SelectedFolder(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNotConfigured)

	_, err = a.ListFiles(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNotConfigured)
}

func TestAdapter_SelectFolder(t *testing.T) {
	a, dir := setupAdapter(t)

	folder, err := a.SelectedFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, folder.ID)
	assert.Equal(t, filepath.Base(dir), folder.Name)

	writeFile(t, dir, "file.txt", "x")
	_, err = a.SelectFolder(context.Background(), filepath.Join(dir, "file.txt"))
	assert.Error(t, err)

	_, err = a.SelectFolder(context.Background(), filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestAdapter_ListFiles(t *testing.T) {
	a, dir := setupAdapter(t)

	writeFile(t, dir, "a.json", `{"trigger":";a"}`)
	writeFile(t, dir, "nested/b.md", "body")
	writeFile(t, dir, ".hidden.json", "{}")
	writeFile(t, dir, ".git/config", "[core]")

	files, err := a.ListFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "a.json", files[0].ID)
	assert.Equal(t, crypto.ContentHash([]byte(`{"trigger":";a"}`)), files[0].Revision)
	assert.Equal(t, "nested/b.md", files[1].ID)
	assert.Equal(t, "b.md", files[1].Name)
	assert.Equal(t, int64(4), files[1].Size)
}

func TestAdapter_ListChanges(t *testing.T) {
	a, dir := setupAdapter(t)
	ctx := context.Background()

	writeFile(t, dir, "a.json", "1")
	cursor, err := a.DeltaCursor(ctx)
	require.NoError(t, err)

	changes, err := a.ListChanges(ctx, cursor)
	require.NoError(t, err)
	assert.False(t, changes.Full)
	assert.Empty(t, changes.Files)
	assert.Equal(t, cursor, changes.Cursor)

	writeFile(t, dir, "a.json", "2")
	changes, err = a.ListChanges(ctx, cursor)
	require.NoError(t, err)
	assert.True(t, changes.Full)
	require.Len(t, changes.Files, 1)
	assert.NotEqual(t, cursor, changes.Cursor)
}

func TestAdapter_DownloadAndMetadata(t *testing.T) {
	a, dir := setupAdapter(t)
	ctx := context.Background()
	writeFile(t, dir, "nested/b.md", "body")

	data, err := a.Download(ctx, "nested/b.md")
	require.NoError(t, err)
	assert.Equal(t, "body", string(data))

	meta, err := a.Metadata(ctx, "nested/b.md")
	require.NoError(t, err)
	assert.Equal(t, crypto.ContentHash([]byte("body")), meta.Revision)

	_, err = a.Download(ctx, "missing.json")
	assert.ErrorIs(t, err, adapter.ErrFileNotFound)

	_, err = a.Download(ctx, "../outside.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, adapter.ErrFileNotFound)
}

func TestAdapter_UploadAndRemove(t *testing.T) {
	a, dir := setupAdapter(t)
	ctx := context.Background()

	u, ok := adapter.CanUpload(a)
	require.True(t, ok)

	info, err := u.Upload(ctx, "new/snippet.json", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "new/snippet.json", info.ID)
	assert.Equal(t, crypto.ContentHash([]byte("payload")), info.Revision)

	data, err := os.ReadFile(filepath.Join(dir, "new", "snippet.json"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	entries, err := os.ReadDir(filepath.Join(dir, "new"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")

	require.NoError(t, a.Remove(ctx, "new/snippet.json"))
	assert.ErrorIs(t, a.Remove(ctx, "new/snippet.json"), adapter.ErrFileNotFound)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/snippets")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "snippets"), got)

	got, err = expandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)

	_, err = expandHome("")
	assert.Error(t, err)
}
