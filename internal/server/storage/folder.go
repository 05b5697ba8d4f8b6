package storage

import (
	"context"
	"time"

	"github.com/iudanet/snipkeeper/internal/models"
)

// FolderStorage хранит общие папки, участников и файлы с журналом изменений.
// Каждое изменение файла получает следующий номер Seq папки.
type FolderStorage interface {
	// CreateFolder creates a folder and adds the owner as a member
	CreateFolder(ctx context.Context, folder *models.Folder) error

	// GetFolder returns ErrFolderNotFound if folder doesn't exist
	GetFolder(ctx context.Context, folderID string) (*models.Folder, error)

	// ListUserFolders returns folders the user is a member of
	ListUserFolders(ctx context.Context, userID string) ([]*models.Folder, error)

	// AddMember grants a user access to a folder. Idempotent.
	AddMember(ctx context.Context, folderID, userID string) error

	// IsMember reports whether the user can access the folder
	IsMember(ctx context.Context, folderID, userID string) (bool, error)

	// PutFile creates or replaces the file at path and records a change.
	// Unchanged content does not produce a new change.
	PutFile(ctx context.Context, file *models.FolderFile) (*models.FolderFile, error)

	// DeleteFile marks the file at path as deleted.
	// Returns ErrFileNotFound if there is no live file at path.
	DeleteFile(ctx context.Context, folderID, path, userID string, at time.Time) (*models.FolderFile, error)

	// ListFiles returns live files without content and the current cursor
	ListFiles(ctx context.Context, folderID string) ([]*models.FolderFile, int64, error)

	// GetFile returns a live file with content
	GetFile(ctx context.Context, folderID, fileID string) (*models.FolderFile, error)

	// Changes returns files (including tombstones) changed after since.
	// Returns ErrCursorExpired if since is behind the folder horizon.
	Changes(ctx context.Context, folderID string, since int64) ([]*models.FolderFile, int64, error)

	// Compact purges tombstones older than before and advances horizons
	Compact(ctx context.Context, before time.Time) (int, error)
}
