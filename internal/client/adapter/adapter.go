// Package adapter описывает единый контракт доступа к хранилищам сниппетов.
//
// Каждый провайдер (локальная папка, сервер папок, Google Drive, S3, git)
// реализует Adapter. Необязательные возможности выражены отдельными
// интерфейсами и проверяются через Capabilities.
package adapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/snipkeeper/internal/client/iocli"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/retry"
)

//go:generate moq -out adapter_mock.go . Adapter Uploader CredentialStore

// Capabilities возможности конкретного адаптера
type Capabilities struct {
	Upload      bool // Upload адаптер реализует Uploader
	Incremental bool // Incremental ListChanges возвращает настоящие дельты
}

// UserInfo данные вошедшего пользователя провайдера
type UserInfo struct {
	ID    string
	Name  string
	Email string
}

// FolderInfo выбранная папка источника
type FolderInfo struct {
	ID   string // ID непрозрачная ссылка, сохраняется в Source.Folder
	Name string
	Path string
}

// FileInfo метаданные файла без содержимого
type FileInfo struct {
	ModifiedAt time.Time
	ID         string // ID идентификатор для Download/Metadata
	Name       string
	Path       string
	Revision   string // Revision меняется при каждом изменении содержимого
	Size       int64
}

// ChangeSet изменения с момента курсора.
// Full означает полный листинг: файлы, отсутствующие в Files, удалены.
type ChangeSet struct {
	Cursor         string     // Cursor новое значение для следующего вызова
	Files          []FileInfo // Files добавленные или изменённые файлы
	Removed        []string   // Removed ID удалённых файлов
	Full           bool
	ResyncRequired bool // ResyncRequired курсор устарел, нужен полный листинг
}

// Adapter контракт источника сниппетов
type Adapter interface {
	// Kind returns the provider kind the adapter was registered under.
	Kind() string
	// Capabilities reports optional features.
	Capabilities() Capabilities

	// SignIn performs the provider's interactive authentication.
	// Returns *AuthError on failure.
	SignIn(ctx context.Context) error
	// IsSignedIn reports whether usable credentials are cached.
	IsSignedIn(ctx context.Context) (bool, error)
	// UserInfo returns the signed-in principal.
	UserInfo(ctx context.Context) (*UserInfo, error)

	// SelectFolder resolves ref into a folder and makes it current.
	SelectFolder(ctx context.Context, ref string) (*FolderInfo, error)
	// SelectedFolder returns the current folder or ErrNotConfigured.
	SelectedFolder(ctx context.Context) (*FolderInfo, error)

	// ListFiles lists every file in the selected folder.
	ListFiles(ctx context.Context) ([]FileInfo, error)
	// ListChanges returns changes since cursor. An empty cursor yields a
	// full listing; a stale cursor yields ChangeSet.ResyncRequired rather
	// than an error.
	ListChanges(ctx context.Context, cursor string) (*ChangeSet, error)
	// DeltaCursor returns a cursor pointing at the current state.
	DeltaCursor(ctx context.Context) (string, error)

	// Download returns the exact bytes of a file.
	Download(ctx context.Context, fileID string) ([]byte, error)
	// Metadata returns file metadata without downloading the body.
	Metadata(ctx context.Context, fileID string) (*FileInfo, error)
}

// Uploader необязательная возможность записи
type Uploader interface {
	// Upload creates or replaces the file at path inside the selected folder.
	Upload(ctx context.Context, path string, data []byte) (*FileInfo, error)
}

// Remover необязательная возможность удаления файлов
type Remover interface {
	Remove(ctx context.Context, path string) error
}

// CredentialStore хранит учётные данные источника между запусками
type CredentialStore interface {
	GetCredential(ctx context.Context, sourceID string) ([]byte, error)
	SaveCredential(ctx context.Context, sourceID string, data []byte) error
	DeleteCredential(ctx context.Context, sourceID string) error
}

// Prompter интерактивный ввод для SignIn
type Prompter interface {
	iocli.IO
}

// Dependencies передаются в конструктор адаптера
type Dependencies struct {
	Credentials CredentialStore
	Prompt      Prompter
	Logger      *slog.Logger
	Settings    map[string]string // Settings настройки провайдера из конфигурации
	Retry       retry.Policy
}

// Setting returns a provider setting or def.
func (d Dependencies) Setting(key, def string) string {
	if v, ok := d.Settings[key]; ok && v != "" {
		return v
	}
	return def
}

// Constructor создаёт адаптер для конкретного источника
type Constructor func(source models.Source, deps Dependencies) (Adapter, error)

// CanUpload reports whether a can accept writes.
func CanUpload(a Adapter) (Uploader, bool) {
	if !a.Capabilities().Upload {
		return nil, false
	}
	u, ok := a.(Uploader)
	return u, ok
}
