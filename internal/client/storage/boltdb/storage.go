package boltdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	bolterrors "go.etcd.io/bbolt/errors"

	"github.com/iudanet/snipkeeper/internal/client/storage"
)

// LockTimeout сколько ждать файловую блокировку БД, занятую другим процессом
var LockTimeout = time.Second

var (
	// BoltDB bucket names
	bucketSettings    = []byte("settings")
	bucketCursors     = []byte("cursors")
	bucketStatus      = []byte("status")
	bucketCatalog     = []byte("catalog")
	bucketCredentials = []byte("credentials")
	bucketUsage       = []byte("usage")

	allBuckets = [][]byte{
		bucketSettings,
		bucketCursors,
		bucketStatus,
		bucketCatalog,
		bucketCredentials,
		bucketUsage,
	}
)

// Storage represents BoltDB storage implementation for client.
// Это быстрое KV хранилище: настройки, курсоры, статус, снимок каталога.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: LockTimeout})
	if errors.Is(err, bolterrors.ErrTimeout) {
		return nil, fmt.Errorf("failed to open %s: %w", dbPath, storage.ErrLocked)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func bucketOf(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	bucket := tx.Bucket(name)
	if bucket == nil {
		return nil, fmt.Errorf("%s bucket not found", name)
	}
	return bucket, nil
}
