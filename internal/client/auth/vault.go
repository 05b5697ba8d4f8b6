package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/crypto"
)

// Vault шифрует учётные данные источников перед записью в хранилище.
// Шифротекст привязан к ID источника и не может быть подставлен другому.
type Vault struct {
	storage storage.CredentialStorage
	sealer  *crypto.Sealer
}

// Compile-time check that Vault implements adapter.CredentialStore
var _ adapter.CredentialStore = (*Vault)(nil)

// NewVault creates a vault. key must be crypto.KeySize bytes.
func NewVault(storage storage.CredentialStorage, key []byte) (*Vault, error) {
	sealer, err := crypto.NewSealer(key)
	if err != nil {
		return nil, err
	}
	return &Vault{storage: storage, sealer: sealer}, nil
}

// GetCredential загружает и расшифровывает данные источника
func (v *Vault) GetCredential(ctx context.Context, sourceID string) ([]byte, error) {
	sealed, err := v.storage.GetCredential(ctx, sourceID)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialNotFound) {
			return nil, adapter.ErrCredentialNotFound
		}
		return nil, err
	}

	data, err := v.sealer.Open(sealed, []byte(sourceID))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credential for %q: %w", sourceID, err)
	}
	return data, nil
}

// SaveCredential шифрует и сохраняет данные источника
func (v *Vault) SaveCredential(ctx context.Context, sourceID string, data []byte) error {
	sealed, err := v.sealer.Seal(data, []byte(sourceID))
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}
	return v.storage.SaveCredential(ctx, sourceID, sealed)
}

// DeleteCredential удаляет данные источника
func (v *Vault) DeleteCredential(ctx context.Context, sourceID string) error {
	return v.storage.DeleteCredential(ctx, sourceID)
}
