package boltdb

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/snipkeeper/internal/client/storage"
)

// SaveCredential stores credential bytes of a source as-is
func (s *Storage) SaveCredential(ctx context.Context, sourceID string, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCredentials)
		if err != nil {
			return err
		}
		if err := bucket.Put([]byte(sourceID), data); err != nil {
			return fmt.Errorf("failed to save credential: %w", err)
		}
		return nil
	})
}

// GetCredential retrieves credential bytes of a source
func (s *Storage) GetCredential(ctx context.Context, sourceID string) ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCredentials)
		if err != nil {
			return err
		}
		v := bucket.Get([]byte(sourceID))
		if v == nil {
			return storage.ErrCredentialNotFound
		}
		// Значение валидно только внутри транзакции
		data = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// DeleteCredential removes credential of a source
func (s *Storage) DeleteCredential(ctx context.Context, sourceID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketCredentials)
		if err != nil {
			return err
		}
		return bucket.Delete([]byte(sourceID))
	})
}
