package storage

import (
	"errors"
	"fmt"
)

// Common client storage errors
var (
	// ErrSettingsNotFound indicates that settings were never saved
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrCatalogNotFound indicates that no catalog snapshot exists yet
	ErrCatalogNotFound = errors.New("catalog snapshot not found")

	// ErrEntryNotFound indicates that catalog entry was not found
	ErrEntryNotFound = errors.New("catalog entry not found")

	// ErrCredentialNotFound indicates that no credential is stored for a source
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrLocked indicates that another process holds the database lock
	ErrLocked = errors.New("another snipkeeper process is running")
)

// PersistenceError сбой записи в локальное хранилище.
// Фатален для прохода синхронизации.
type PersistenceError struct {
	Err   error
	Store string // Store какое хранилище: "kv" или "catalog"
	Op    string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Store, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
