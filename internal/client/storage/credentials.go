package storage

import "context"

// CredentialStorage хранит учётные данные источников как есть.
// Шифрование выполняется уровнем выше, в credentials.Vault.
type CredentialStorage interface {
	// GetCredential returns ErrCredentialNotFound if nothing is stored.
	GetCredential(ctx context.Context, sourceID string) ([]byte, error)
	SaveCredential(ctx context.Context, sourceID string, data []byte) error
	DeleteCredential(ctx context.Context, sourceID string) error
}
