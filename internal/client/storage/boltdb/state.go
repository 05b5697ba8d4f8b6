package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
)

var (
	statusKey  = []byte("last")
	catalogKey = []byte("snapshot")
)

// cursorKey ключ курсора: "<source>|<folder>"
func cursorKey(sourceID, folder string) []byte {
	return []byte(sourceID + "|" + folder)
}

// GetCursor returns the saved delta cursor or "" if none
func (s *Storage) GetCursor(ctx context.Context, sourceID, folder string) (string, error) {
	var cursor string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCursors)
		if err != nil {
			return err
		}
		cursor = string(bucket.Get(cursorKey(sourceID, folder)))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get cursor: %w", err)
	}

	return cursor, nil
}

// SaveCursor stores the delta cursor of a source folder
func (s *Storage) SaveCursor(ctx context.Context, sourceID, folder, cursor string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCursors)
		if err != nil {
			return err
		}
		if err := bucket.Put(cursorKey(sourceID, folder), []byte(cursor)); err != nil {
			return fmt.Errorf("failed to save cursor: %w", err)
		}
		return nil
	})
}

// DeleteCursors removes cursors of every folder of the source
func (s *Storage) DeleteCursors(ctx context.Context, sourceID string) error {
	prefix := []byte(sourceID + "|")

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCursors)
		if err != nil {
			return err
		}

		// Собираем ключи заранее: удаление во время обхода курсором небезопасно
		var keys [][]byte
		c := bucket.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			keys = append(keys, bytes.Clone(k))
		}
		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete cursor: %w", err)
			}
		}
		return nil
	})
}

// GetStatus returns the last sync status, idle if none was saved
func (s *Storage) GetStatus(ctx context.Context) (*models.SyncStatus, error) {
	status := &models.SyncStatus{Phase: models.PhaseIdle}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketStatus)
		if err != nil {
			return err
		}
		data := bucket.Get(statusKey)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, status)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return status, nil
}

// SaveStatus stores the sync status
func (s *Storage) SaveStatus(ctx context.Context, status *models.SyncStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketStatus)
		if err != nil {
			return err
		}
		return bucket.Put(statusKey, data)
	})
}

// GetCatalogSnapshot returns the merged catalog snapshot
func (s *Storage) GetCatalogSnapshot(ctx context.Context) (*models.Catalog, error) {
	var catalog *models.Catalog

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCatalog)
		if err != nil {
			return err
		}

		data := bucket.Get(catalogKey)
		if data == nil {
			return storage.ErrCatalogNotFound
		}

		catalog = &models.Catalog{}
		if err := json.Unmarshal(data, catalog); err != nil {
			return fmt.Errorf("failed to unmarshal catalog: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

// SaveCatalogSnapshot replaces the snapshot, nil removes it
func (s *Storage) SaveCatalogSnapshot(ctx context.Context, catalog *models.Catalog) error {
	var data []byte
	if catalog != nil {
		var err error
		data, err = json.Marshal(catalog)
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCatalog)
		if err != nil {
			return err
		}
		if data == nil {
			return bucket.Delete(catalogKey)
		}
		if err := bucket.Put(catalogKey, data); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		return nil
	})
}

// CatalogSnapshotBytes returns the raw snapshot, used to compare passes
func (s *Storage) CatalogSnapshotBytes(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCatalog)
		if err != nil {
			return err
		}
		data = bytes.Clone(bucket.Get(catalogKey))
		return nil
	})
	return data, err
}
