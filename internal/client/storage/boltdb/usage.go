package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

// IncrementUsage bumps the usage counter of a snippet
func (s *Storage) IncrementUsage(ctx context.Context, snippetID string) (int, error) {
	var count uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketUsage)
		if err != nil {
			return err
		}

		if v := bucket.Get([]byte(snippetID)); len(v) == 8 {
			count = binary.BigEndian.Uint64(v)
		}
		count++

		// Конвертируем uint64 в bytes
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, count)
		return bucket.Put([]byte(snippetID), buf)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment usage: %w", err)
	}

	return int(count), nil
}

// UsageCounts returns usage counters of all snippets
func (s *Storage) UsageCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketUsage)
		if err != nil {
			return err
		}
		return bucket.ForEach(func(k, v []byte) error {
			if len(v) == 8 {
				counts[string(k)] = int(binary.BigEndian.Uint64(v))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read usage: %w", err)
	}

	return counts, nil
}
