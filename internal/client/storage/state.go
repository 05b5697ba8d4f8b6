package storage

import (
	"context"

	"github.com/iudanet/snipkeeper/internal/models"
)

//go:generate moq -out state_mock.go . SyncStateStorage CatalogStorage

// CursorStorage хранит курсоры дельт по паре (источник, папка)
type CursorStorage interface {
	// GetCursor returns the saved cursor or "" if none.
	GetCursor(ctx context.Context, sourceID, folder string) (string, error)

	// SaveCursor stores cursor for the source/folder pair.
	SaveCursor(ctx context.Context, sourceID, folder, cursor string) error

	// DeleteCursors removes every cursor of a source.
	DeleteCursors(ctx context.Context, sourceID string) error
}

// StatusStorage хранит сводку последнего прохода
type StatusStorage interface {
	// GetStatus returns the last saved status, or an idle status if none.
	GetStatus(ctx context.Context) (*models.SyncStatus, error)

	SaveStatus(ctx context.Context, status *models.SyncStatus) error
}

// SnapshotStorage быстрый снимок объединённого каталога
type SnapshotStorage interface {
	// GetCatalogSnapshot returns the snapshot.
	// Returns ErrCatalogNotFound before the first successful sync.
	GetCatalogSnapshot(ctx context.Context) (*models.Catalog, error)

	// SaveCatalogSnapshot replaces the snapshot. A nil catalog removes it.
	SaveCatalogSnapshot(ctx context.Context, catalog *models.Catalog) error
}

// SyncStateStorage всё, что синхронизация пишет в быстрое KV хранилище
type SyncStateStorage interface {
	SettingsStorage
	CursorStorage
	StatusStorage
	SnapshotStorage
}

// CatalogStorage структурированное хранилище каталога и кэша файлов источников
type CatalogStorage interface {
	// ReplaceCatalog atomically replaces all catalog rows and the cached
	// records of the given sources.
	ReplaceCatalog(ctx context.Context, catalog *models.Catalog, sourceIDs []string, records []models.SourceRecord) error

	// ListCatalog returns all entries ordered by trigger, then id.
	ListCatalog(ctx context.Context) ([]models.CatalogEntry, error)

	// GetCatalogEntry returns one entry.
	// Returns ErrEntryNotFound if it doesn't exist.
	GetCatalogEntry(ctx context.Context, id string) (*models.CatalogEntry, error)

	// FindByTrigger returns all entries sharing trigger.
	FindByTrigger(ctx context.Context, trigger string) ([]models.CatalogEntry, error)

	// SourceRecords returns cached file records of a source.
	SourceRecords(ctx context.Context, sourceID string) ([]models.SourceRecord, error)

	// DeleteSourceRecords drops the cache of a removed source.
	DeleteSourceRecords(ctx context.Context, sourceID string) error
}
