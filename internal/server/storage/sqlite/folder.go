package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/server/storage"
)

const fileColumns = `id, folder_id, path, revision, size, seq, deleted, updated_by, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(row scanner) (*models.FolderFile, error) {
	f := &models.FolderFile{}
	if err := row.Scan(
		&f.ID,
		&f.FolderID,
		&f.Path,
		&f.Revision,
		&f.Size,
		&f.Seq,
		&f.Deleted,
		&f.UpdatedBy,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return f, nil
}

func collectFiles(rows *sql.Rows) ([]*models.FolderFile, error) {
	defer func() {
		_ = rows.Close()
	}()

	files := []*models.FolderFile{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return files, nil
}

// CreateFolder creates a folder and adds the owner as a member
func (s *Storage) CreateFolder(ctx context.Context, folder *models.Folder) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO folders (id, name, owner_id, seq, horizon, created_at) VALUES (?, ?, ?, 0, 0, ?)`,
			folder.ID, folder.Name, folder.OwnerID, folder.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert folder: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO folder_members (folder_id, user_id) VALUES (?, ?)`,
			folder.ID, folder.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to add owner: %w", err)
		}
		return nil
	})
}

// GetFolder returns a folder by ID
func (s *Storage) GetFolder(ctx context.Context, folderID string) (*models.Folder, error) {
	f := &models.Folder{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, owner_id, horizon, created_at FROM folders WHERE id = ?`, folderID,
	).Scan(&f.ID, &f.Name, &f.OwnerID, &f.Horizon, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrFolderNotFound
		}
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	return f, nil
}

// ListUserFolders returns folders the user is a member of
func (s *Storage) ListUserFolders(ctx context.Context, userID string) ([]*models.Folder, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.name, f.owner_id, f.horizon, f.created_at
		FROM folders f
		JOIN folder_members m ON m.folder_id = f.id
		WHERE m.user_id = ?
		ORDER BY f.name, f.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	folders := []*models.Folder{}
	for rows.Next() {
		f := &models.Folder{}
		if err := rows.Scan(&f.ID, &f.Name, &f.OwnerID, &f.Horizon, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return folders, nil
}

// AddMember grants a user access to a folder
func (s *Storage) AddMember(ctx context.Context, folderID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO folder_members (folder_id, user_id) VALUES (?, ?)`, folderID, userID)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// IsMember reports whether the user can access the folder
func (s *Storage) IsMember(ctx context.Context, folderID, userID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM folder_members WHERE folder_id = ? AND user_id = ?`, folderID, userID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return n > 0, nil
}

// nextSeq увеличивает счётчик изменений папки
func nextSeq(ctx context.Context, tx *sql.Tx, folderID string) (int64, error) {
	var seq int64
	err := tx.QueryRowContext(ctx,
		`UPDATE folders SET seq = seq + 1 WHERE id = ? RETURNING seq`, folderID,
	).Scan(&seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrFolderNotFound
		}
		return 0, fmt.Errorf("failed to advance sequence: %w", err)
	}
	return seq, nil
}

// PutFile creates or replaces the file at path
func (s *Storage) PutFile(ctx context.Context, file *models.FolderFile) (*models.FolderFile, error) {
	var result *models.FolderFile

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := scanFile(tx.QueryRowContext(ctx,
			`SELECT `+fileColumns+` FROM files WHERE folder_id = ? AND path = ?`, file.FolderID, file.Path))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			existing = nil
		case err != nil:
			return fmt.Errorf("failed to get file: %w", err)
		}

		// То же содержимое: новой записи в журнале нет
		if existing != nil && !existing.Deleted && existing.Revision == file.Revision {
			result = existing
			return nil
		}

		seq, err := nextSeq(ctx, tx, file.FolderID)
		if err != nil {
			return err
		}

		stored := *file
		stored.Seq = seq
		stored.Size = int64(len(file.Content))
		stored.Deleted = false
		stored.UpdatedAt = file.UpdatedAt.UTC()

		if existing != nil {
			// ID сохраняется и после удаления: путь однозначно определяет файл
			stored.ID = existing.ID
			_, err = tx.ExecContext(ctx, `
				UPDATE files
				SET revision = ?, content = ?, size = ?, seq = ?, deleted = 0, updated_by = ?, updated_at = ?
				WHERE id = ?
			`, stored.Revision, stored.Content, stored.Size, stored.Seq, stored.UpdatedBy, stored.UpdatedAt, stored.ID)
		} else {
			if stored.ID == "" {
				stored.ID = uuid.New().String()
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO files (id, folder_id, path, revision, content, size, seq, deleted, updated_by, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
			`, stored.ID, stored.FolderID, stored.Path, stored.Revision, stored.Content, stored.Size, stored.Seq, stored.UpdatedBy, stored.UpdatedAt)
		}
		if err != nil {
			return fmt.Errorf("failed to save file: %w", err)
		}

		stored.Content = nil
		result = &stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteFile marks the file at path as deleted
func (s *Storage) DeleteFile(ctx context.Context, folderID, path, userID string, at time.Time) (*models.FolderFile, error) {
	var result *models.FolderFile

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := scanFile(tx.QueryRowContext(ctx,
			`SELECT `+fileColumns+` FROM files WHERE folder_id = ? AND path = ? AND deleted = 0`, folderID, path))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrFileNotFound
			}
			return fmt.Errorf("failed to get file: %w", err)
		}

		seq, err := nextSeq(ctx, tx, folderID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE files
			SET content = NULL, size = 0, seq = ?, deleted = 1, updated_by = ?, updated_at = ?
			WHERE id = ?
		`, seq, userID, at.UTC(), existing.ID)
		if err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}

		existing.Seq = seq
		existing.Size = 0
		existing.Deleted = true
		existing.UpdatedBy = userID
		existing.UpdatedAt = at.UTC()
		result = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListFiles returns live files and the current cursor
func (s *Storage) ListFiles(ctx context.Context, folderID string) ([]*models.FolderFile, int64, error) {
	var (
		files  []*models.FolderFile
		cursor int64
	)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT seq FROM folders WHERE id = ?`, folderID).Scan(&cursor); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrFolderNotFound
			}
			return fmt.Errorf("failed to get folder: %w", err)
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT `+fileColumns+` FROM files WHERE folder_id = ? AND deleted = 0 ORDER BY path`, folderID)
		if err != nil {
			return fmt.Errorf("failed to query files: %w", err)
		}
		files, err = collectFiles(rows)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return files, cursor, nil
}

// GetFile returns a live file with content
func (s *Storage) GetFile(ctx context.Context, folderID, fileID string) (*models.FolderFile, error) {
	f := &models.FolderFile{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+fileColumns+`, content
		FROM files
		WHERE folder_id = ? AND id = ? AND deleted = 0
	`, folderID, fileID).Scan(
		&f.ID,
		&f.FolderID,
		&f.Path,
		&f.Revision,
		&f.Size,
		&f.Seq,
		&f.Deleted,
		&f.UpdatedBy,
		&f.UpdatedAt,
		&f.Content,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	if f.Content == nil {
		f.Content = []byte{}
	}
	return f, nil
}

// Changes returns files changed after since, ordered by seq
func (s *Storage) Changes(ctx context.Context, folderID string, since int64) ([]*models.FolderFile, int64, error) {
	var (
		files  []*models.FolderFile
		cursor int64
	)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var horizon int64
		err := tx.QueryRowContext(ctx, `SELECT seq, horizon FROM folders WHERE id = ?`, folderID).Scan(&cursor, &horizon)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrFolderNotFound
			}
			return fmt.Errorf("failed to get folder: %w", err)
		}

		// Курсор из будущего означает, что сервер потерял историю
		if since < horizon || since > cursor {
			return storage.ErrCursorExpired
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT `+fileColumns+` FROM files WHERE folder_id = ? AND seq > ? ORDER BY seq`, folderID, since)
		if err != nil {
			return fmt.Errorf("failed to query changes: %w", err)
		}
		files, err = collectFiles(rows)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return files, cursor, nil
}

// Compact purges tombstones older than before.
// Горизонт папки поднимается до последнего удалённого номера:
// курсоры младше него больше не дают полной картины удалений.
func (s *Storage) Compact(ctx context.Context, before time.Time) (int, error) {
	purged := 0

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT `+fileColumns+` FROM files WHERE deleted = 1`)
		if err != nil {
			return fmt.Errorf("failed to query tombstones: %w", err)
		}
		tombstones, err := collectFiles(rows)
		if err != nil {
			return err
		}

		horizons := make(map[string]int64)
		for _, f := range tombstones {
			if !f.UpdatedAt.Before(before) {
				continue
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, f.ID); err != nil {
				return fmt.Errorf("failed to purge tombstone: %w", err)
			}
			if f.Seq > horizons[f.FolderID] {
				horizons[f.FolderID] = f.Seq
			}
			purged++
		}

		for folderID, horizon := range horizons {
			_, err := tx.ExecContext(ctx,
				`UPDATE folders SET horizon = MAX(horizon, ?) WHERE id = ?`, horizon, folderID)
			if err != nil {
				return fmt.Errorf("failed to advance horizon: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return purged, nil
}
