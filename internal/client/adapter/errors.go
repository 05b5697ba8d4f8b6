package adapter

import (
	"errors"
	"fmt"

	"github.com/iudanet/snipkeeper/internal/retry"
)

var (
	// ErrTransientNetwork временный сетевой сбой (повторяется retry)
	ErrTransientNetwork = retry.ErrTransientNetwork

	// ErrResyncRequired курсор больше не действителен у провайдера
	ErrResyncRequired = errors.New("cursor expired, full resync required")

	// ErrNotConfigured у источника не выбрана папка
	ErrNotConfigured = errors.New("source folder not configured")

	// ErrReadOnly адаптер не поддерживает запись
	ErrReadOnly = errors.New("source is read-only")

	// ErrFileNotFound файл отсутствует в источнике
	ErrFileNotFound = errors.New("file not found")

	// ErrCredentialNotFound учётные данные источника не сохранены
	ErrCredentialNotFound = errors.New("credential not found")
)

// AuthError источник требует (повторного) входа
type AuthError struct {
	Err      error
	SourceID string
	Kind     string
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s source %q: authentication required", e.Kind, e.SourceID)
	}
	return fmt.Sprintf("%s source %q: authentication failed: %v", e.Kind, e.SourceID, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UnsupportedProviderError в реестре нет адаптера для типа
type UnsupportedProviderError struct {
	Kind string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q", e.Kind)
}

// IsAuthError reports whether err is an *AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
