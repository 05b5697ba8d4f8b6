package data

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/adapter/local"
	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

type fixture struct {
	service  Service
	catalog  *storage.CatalogStorageMock
	settings *models.Settings
	records  map[string][]models.SourceRecord
	entries  map[string]*models.CatalogEntry
	dirs     map[string]string
}

// newFixture собирает сервис с двумя локальными папками и одним источником только для чтения
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		records: map[string][]models.SourceRecord{},
		entries: map[string]*models.CatalogEntry{},
		dirs: map[string]string{
			"local": t.TempDir(),
			"team":  t.TempDir(),
		},
	}
	f.settings = &models.Settings{Sources: []models.Source{
		models.DefaultSource(f.dirs["local"]),
		{ID: "team", Name: "Team", Kind: local.Kind, Folder: f.dirs["team"], Priority: 1},
		{ID: "docs", Name: "Docs", Kind: "readonly", Folder: "docs", Priority: 2},
		{ID: "fresh", Name: "Fresh", Kind: local.Kind, Priority: 3},
	}}

	reg := adapter.NewRegistry(adapter.Dependencies{})
	local.Register(reg)
	reg.Register("readonly", func(models.Source, adapter.Dependencies) (adapter.Adapter, error) {
		return &adapter.AdapterMock{
			CapabilitiesFunc: func() adapter.Capabilities { return adapter.Capabilities{} },
			IsSignedInFunc:   func(context.Context) (bool, error) { return true, nil },
			SelectFolderFunc: func(_ context.Context, ref string) (*adapter.FolderInfo, error) {
				return &adapter.FolderInfo{ID: ref}, nil
			},
		}, nil
	})

	settings := &storage.SettingsStorageMock{
		LoadSettingsFunc: func(context.Context) (*models.Settings, error) {
			return f.settings, nil
		},
	}
	f.catalog = &storage.CatalogStorageMock{
		GetCatalogEntryFunc: func(_ context.Context, id string) (*models.CatalogEntry, error) {
			e, ok := f.entries[id]
			if !ok {
				return nil, storage.ErrEntryNotFound
			}
			return e, nil
		},
		SourceRecordsFunc: func(_ context.Context, sourceID string) ([]models.SourceRecord, error) {
			return f.records[sourceID], nil
		},
		ListCatalogFunc: func(context.Context) ([]models.CatalogEntry, error) {
			var out []models.CatalogEntry
			for _, e := range f.entries {
				out = append(out, *e)
			}
			return out, nil
		},
	}

	f.service = NewService(reg, settings, f.catalog, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() (string, error) { return "0190-new", nil }),
		WithActor("avery"),
	)
	return f
}

func readSnippet(t *testing.T, path string) models.Snippet {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var s models.Snippet
	require.NoError(t, json.Unmarshal(data, &s))
	return s
}

func TestService_CreateWritesToDefaultSource(t *testing.T) {
	f := newFixture(t)

	created, results, err := f.service.Create(context.Background(), models.Snippet{
		Trigger: " ;sig ",
		Content: "Regards, {{name}} {{snippet:footer}}",
		Tags:    []string{"mail", "mail", " "},
	}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "local", results[0].SourceID)
	require.NotNil(t, results[0].File)

	assert.Equal(t, "0190-new", created.ID)
	assert.Equal(t, ";sig", created.Trigger)
	assert.Equal(t, models.ContentPlaintext, created.ContentType)
	assert.Equal(t, []string{"footer"}, created.Dependencies)
	assert.Equal(t, []string{"mail"}, created.Tags)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, "avery", created.CreatedBy)

	onDisk := readSnippet(t, filepath.Join(f.dirs["local"], "0190-new.json"))
	assert.Equal(t, created.Fingerprint(), onDisk.Fingerprint())

	_, err = os.Stat(filepath.Join(f.dirs["team"], "0190-new.json"))
	assert.True(t, os.IsNotExist(err), "only chosen sources receive the snippet")
}

func TestService_CreatePerTargetFailures(t *testing.T) {
	f := newFixture(t)

	_, results, err := f.service.Create(context.Background(), models.Snippet{Trigger: ";x", Content: "x"},
		[]string{"team", "docs", "fresh", "ghost", "team"})
	require.Error(t, err)
	require.Len(t, results, 4)

	byID := map[string]error{}
	for _, r := range results {
		byID[r.SourceID] = r.Err
	}
	assert.NoError(t, byID["team"])
	assert.ErrorIs(t, byID["docs"], adapter.ErrReadOnly)
	assert.ErrorIs(t, byID["fresh"], adapter.ErrNotConfigured)
	assert.ErrorIs(t, byID["ghost"], ErrUnknownSource)

	assert.ErrorIs(t, err, adapter.ErrReadOnly)
	assert.FileExists(t, filepath.Join(f.dirs["team"], "0190-new.json"))
}

func TestService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		snippet models.Snippet
		field   string
	}{
		{name: "empty trigger", snippet: models.Snippet{Content: "x"}, field: "trigger"},
		{name: "whitespace trigger", snippet: models.Snippet{Trigger: "a b"}, field: "trigger"},
		{name: "bad content type", snippet: models.Snippet{Trigger: ";a", ContentType: "rtf"}, field: "content_type"},
		{name: "duplicate variable", snippet: models.Snippet{Trigger: ";a", Variables: []models.Variable{{Name: "n"}, {Name: "n"}}}, field: "variables"},
		{name: "self reference", snippet: models.Snippet{Trigger: ";a", Content: "{{snippet:0190-new}}"}, field: "content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.service.Create(ctx, tt.snippet, nil)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	_, _, err := f.service.Create(ctx, models.Snippet{Trigger: ";a"}, []string{" "})
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestService_UpdateOverwritesOriginFile(t *testing.T) {
	f := newFixture(t)
	created := models.Snippet{
		ID: "abc", Trigger: ";hi", Content: "hi", ContentType: models.ContentPlaintext,
		CreatedAt: fixedNow.Add(-time.Hour), CreatedBy: "blake",
	}
	f.entries["abc"] = &models.CatalogEntry{Snippet: created, SourceID: "team", Priority: 1}
	f.records["team"] = []models.SourceRecord{{SourceID: "team", FileID: "greetings/hi.json", Path: "greetings/hi.json", Snippets: []models.Snippet{created}}}

	edited := created
	edited.Content = "hello"
	updated, results, err := f.service.Update(context.Background(), edited, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "team", results[0].SourceID)

	assert.Equal(t, "blake", updated.CreatedBy)
	assert.Equal(t, "avery", updated.UpdatedBy)
	assert.Equal(t, fixedNow, updated.UpdatedAt)

	onDisk := readSnippet(t, filepath.Join(f.dirs["team"], "greetings", "hi.json"))
	assert.Equal(t, "hello", onDisk.Content)
	assert.Equal(t, created.CreatedAt.UTC(), onDisk.CreatedAt.UTC())
}

func TestService_UpdateUnchangedSkipsWrite(t *testing.T) {
	f := newFixture(t)
	s := models.Snippet{ID: "abc", Trigger: ";hi", Content: "hi", ContentType: models.ContentPlaintext}
	f.entries["abc"] = &models.CatalogEntry{Snippet: s, SourceID: "local"}

	_, results, err := f.service.Update(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.NoFileExists(t, filepath.Join(f.dirs["local"], "abc.json"))
}

func TestService_UpdateUnknown(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.service.Update(context.Background(), models.Snippet{ID: "nope", Trigger: ";a"}, nil)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(f.dirs["local"], "abc.json"), []byte(`{"id":"abc"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.dirs["team"], "bundle.json"), []byte(`[]`), 0o644))
	f.entries["abc"] = &models.CatalogEntry{
		Snippet:  models.Snippet{ID: "abc", Trigger: ";a"},
		SourceID: "local",
		Duplicates: []models.Variant{
			{SourceID: "team", Priority: 1},
			{SourceID: "docs", Priority: 2},
		},
	}
	f.records["team"] = []models.SourceRecord{{Path: "bundle.json", Snippets: []models.Snippet{{ID: "abc"}, {ID: "other"}}}}

	results, err := f.service.Delete(ctx, "abc", nil)
	require.Error(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NoFileExists(t, filepath.Join(f.dirs["local"], "abc.json"))

	assert.ErrorIs(t, results[1].Err, ErrSharedFile)
	assert.FileExists(t, filepath.Join(f.dirs["team"], "bundle.json"))

	assert.ErrorIs(t, results[2].Err, adapter.ErrReadOnly)

	results, err = f.service.Delete(ctx, "abc", []string{"local"})
	require.Error(t, err)
	assert.ErrorIs(t, results[0].Err, adapter.ErrFileNotFound)
}

func TestService_GetAndList(t *testing.T) {
	f := newFixture(t)
	f.entries["abc"] = &models.CatalogEntry{Snippet: models.Snippet{ID: "abc"}, SourceID: "local"}
	ctx := context.Background()

	entry, err := f.service.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "local", entry.SourceID)

	_, err = f.service.Get(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	entries, err := f.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_SettingsFailure(t *testing.T) {
	boom := errors.New("bolt closed")
	svc := NewService(adapter.NewRegistry(adapter.Dependencies{}),
		&storage.SettingsStorageMock{LoadSettingsFunc: func(context.Context) (*models.Settings, error) { return nil, boom }},
		&storage.CatalogStorageMock{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	_, _, err := svc.Create(context.Background(), models.Snippet{Trigger: ";a"}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestResults_Err(t *testing.T) {
	assert.NoError(t, Results{{SourceID: "a"}}.Err())

	err := Results{{SourceID: "a"}, {SourceID: "b", Err: adapter.ErrReadOnly}}.Err()
	assert.ErrorIs(t, err, adapter.ErrReadOnly)
	assert.ErrorContains(t, err, "source b")
}
