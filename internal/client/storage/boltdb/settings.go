package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
)

var settingsKey = []byte("current")

// LoadSettings retrieves stored settings
func (s *Storage) LoadSettings(ctx context.Context) (*models.Settings, error) {
	var settings *models.Settings

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketSettings)
		if err != nil {
			return err
		}

		data := bucket.Get(settingsKey)
		if data == nil {
			return storage.ErrSettingsNotFound
		}

		settings = &models.Settings{}
		if err := json.Unmarshal(data, settings); err != nil {
			return fmt.Errorf("failed to unmarshal settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// SaveSettings stores settings
func (s *Storage) SaveSettings(ctx context.Context, settings *models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketSettings)
		if err != nil {
			return err
		}
		if err := bucket.Put(settingsKey, data); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		return nil
	})
}
