package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
)

// ErrNotSignedIn для источника нет сохранённой сессии
var ErrNotSignedIn = errors.New("not signed in")

// expirySkew запас до истечения access token
const expirySkew = 30 * time.Second

// Tokens сессия на сервере папок, хранится в Vault в виде JSON
type Tokens struct {
	ExpiresAt    time.Time `json:"expires_at"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
}

// Expired reports whether the access token should be refreshed.
func (t *Tokens) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt.Add(-expirySkew))
}

func loadTokens(ctx context.Context, creds adapter.CredentialStore, sourceID string) (*Tokens, error) {
	data, err := creds.GetCredential(ctx, sourceID)
	if err != nil {
		if errors.Is(err, adapter.ErrCredentialNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, err
	}

	var t Tokens
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if t.RefreshToken == "" {
		return nil, ErrNotSignedIn
	}
	return &t, nil
}

func saveTokens(ctx context.Context, creds adapter.CredentialStore, sourceID string, t *Tokens) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return creds.SaveCredential(ctx, sourceID, data)
}
