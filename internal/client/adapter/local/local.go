// Package local реализует источник поверх каталога файловой системы.
//
// Идентификатор файла: путь относительно выбранной папки, ревизия:
// sha256 содержимого. Ленты изменений у файловой системы нет, поэтому
// курсор строится как дайджест листинга.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/crypto"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/validation"
)

// Kind тип провайдера в реестре
const Kind = "local"

// Adapter работает с каталогом на диске
type Adapter struct {
	logger *slog.Logger
	folder *adapter.FolderInfo
	root   string
	source models.Source
	mu     sync.RWMutex
}

var (
	_ adapter.Adapter  = (*Adapter)(nil)
	_ adapter.Uploader = (*Adapter)(nil)
	_ adapter.Remover  = (*Adapter)(nil)
)

// New is an adapter.Constructor.
func New(source models.Source, deps adapter.Dependencies) (adapter.Adapter, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{source: source, logger: logger}, nil
}

// Register добавляет провайдер в реестр
func Register(r *adapter.Registry) {
	r.Register(Kind, New)
}

func (a *Adapter) Kind() string { return Kind }

func (a *Adapter) Capabilities() adapter.Capabilities {
	return adapter.Capabilities{Upload: true}
}

// SignIn ничего не делает: доступ к диску не требует входа.
func (a *Adapter) SignIn(context.Context) error { return nil }

func (a *Adapter) IsSignedIn(context.Context) (bool, error) { return true, nil }

func (a *Adapter) UserInfo(context.Context) (*adapter.UserInfo, error) {
	u, err := user.Current()
	if err != nil {
		return &adapter.UserInfo{ID: Kind, Name: Kind}, nil
	}
	return &adapter.UserInfo{ID: u.Uid, Name: u.Username}, nil
}

// SelectFolder принимает путь к каталогу; "~" раскрывается в домашний каталог.
func (a *Adapter) SelectFolder(_ context.Context, ref string) (*adapter.FolderInfo, error) {
	root, err := expandHome(ref)
	if err != nil {
		return nil, err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	folder := &adapter.FolderInfo{ID: root, Name: filepath.Base(root), Path: root}

	a.mu.Lock()
	a.root = root
	a.folder = folder
	a.mu.Unlock()

	return folder, nil
}

func (a *Adapter) SelectedFolder(context.Context) (*adapter.FolderInfo, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.folder == nil {
		return nil, adapter.ErrNotConfigured
	}
	f := *a.folder
	return &f, nil
}

// ListFiles обходит папку рекурсивно, скрытые файлы и каталоги пропускаются.
func (a *Adapter) ListFiles(ctx context.Context) ([]adapter.FileInfo, error) {
	root, err := a.currentRoot()
	if err != nil {
		return nil, err
	}

	var files []adapter.FileInfo
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		info, err := a.stat(root, filepath.ToSlash(rel))
		if err != nil {
			if errors.Is(err, adapter.ErrFileNotFound) {
				return nil
			}
			return err
		}
		files = append(files, *info)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}
	return files, nil
}

// ListChanges сравнивает дайджест текущего листинга с курсором.
func (a *Adapter) ListChanges(ctx context.Context, cursor string) (*adapter.ChangeSet, error) {
	files, err := a.ListFiles(ctx)
	if err != nil {
		return nil, err
	}
	return adapter.SnapshotChanges(files, cursor), nil
}

func (a *Adapter) DeltaCursor(ctx context.Context) (string, error) {
	files, err := a.ListFiles(ctx)
	if err != nil {
		return "", err
	}
	return adapter.ListingCursor(files), nil
}

func (a *Adapter) Download(_ context.Context, fileID string) ([]byte, error) {
	full, err := a.resolve(fileID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", adapter.ErrFileNotFound, fileID)
		}
		return nil, fmt.Errorf("failed to read %s: %w", fileID, err)
	}
	return data, nil
}

func (a *Adapter) Metadata(_ context.Context, fileID string) (*adapter.FileInfo, error) {
	root, err := a.currentRoot()
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateFilePath(fileID); err != nil {
		return nil, fmt.Errorf("invalid file id: %w", err)
	}
	return a.stat(root, fileID)
}

// Upload пишет файл атомарно: во временный файл рядом, затем rename.
func (a *Adapter) Upload(_ context.Context, filePath string, data []byte) (*adapter.FileInfo, error) {
	full, err := a.resolve(filePath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		return nil, fmt.Errorf("failed to replace %s: %w", filePath, err)
	}

	a.logger.Debug("File written", "path", filePath, "size", len(data))

	root, _ := a.currentRoot()
	return a.stat(root, filePath)
}

func (a *Adapter) Remove(_ context.Context, filePath string) error {
	full, err := a.resolve(filePath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", adapter.ErrFileNotFound, filePath)
		}
		return fmt.Errorf("failed to remove %s: %w", filePath, err)
	}
	return nil
}

func (a *Adapter) currentRoot() (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.root == "" {
		return "", adapter.ErrNotConfigured
	}
	return a.root, nil
}

// resolve переводит относительный путь в абсолютный внутри папки
func (a *Adapter) resolve(rel string) (string, error) {
	root, err := a.currentRoot()
	if err != nil {
		return "", err
	}
	if err := validation.ValidateFilePath(rel); err != nil {
		return "", fmt.Errorf("invalid path %q: %w", rel, err)
	}
	return filepath.Join(root, filepath.FromSlash(rel)), nil
}

func (a *Adapter) stat(root, rel string) (*adapter.FileInfo, error) {
	full := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", adapter.ErrFileNotFound, rel)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", adapter.ErrFileNotFound, rel)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", adapter.ErrFileNotFound, rel)
		}
		return nil, err
	}

	return &adapter.FileInfo{
		ModifiedAt: info.ModTime().UTC(),
		ID:         rel,
		Name:       path.Base(rel),
		Path:       rel,
		Revision:   crypto.ContentHash(data),
		Size:       info.Size(),
	}, nil
}

func expandHome(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("folder path cannot be empty")
	}
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
