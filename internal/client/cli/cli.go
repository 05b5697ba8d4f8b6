// Package cli реализует команды snipkeeper поверх клиентских сервисов.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/auth"
	"github.com/iudanet/snipkeeper/internal/client/data"
	"github.com/iudanet/snipkeeper/internal/client/expand"
	"github.com/iudanet/snipkeeper/internal/client/iocli"
	"github.com/iudanet/snipkeeper/internal/client/notify"
	"github.com/iudanet/snipkeeper/internal/client/sync"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/pkg/api"
)

//go:generate moq -out cli_mock.go . SourceManager Expander RelayFolders

// SourceManager управляет списком источников
type SourceManager interface {
	List(ctx context.Context) ([]models.Source, error)
	Add(ctx context.Context, src models.Source) (*models.Source, error)
	Remove(ctx context.Context, id string) error
	Move(ctx context.Context, id string, position int) error
	SelectFolder(ctx context.Context, id, ref string) (*adapter.FolderInfo, error)
	SignIn(ctx context.Context, id string) (*adapter.UserInfo, error)
	SetResolveMode(ctx context.Context, mode models.ResolveMode) error
}

// Expander раскрывает trigger по каталогу
type Expander interface {
	Candidates(ctx context.Context, trigger string) ([]models.CatalogEntry, error)
	Expand(ctx context.Context, trigger string, args map[string]string) (*expand.Expansion, error)
	ExpandID(ctx context.Context, id string, args map[string]string) (*expand.Expansion, error)
}

// RelayFolders операции с папками на сервере папок
type RelayFolders interface {
	CreateFolder(ctx context.Context, accessToken, name string) (*api.Folder, error)
	ListFolders(ctx context.Context, accessToken string) ([]api.Folder, error)
	AddMember(ctx context.Context, accessToken, folderID, username string) error
}

// RelayFactory возвращает сессию и клиент сервера папок для источника
type RelayFactory func(sourceID string) (auth.Service, RelayFolders, error)

// EventListener получает события других процессов
type EventListener interface {
	Listen(ctx context.Context, fn func(notify.Event)) error
}

// Cli связывает сервисы клиента с командами
type Cli struct {
	io          iocli.IO
	logger      *slog.Logger
	sources     SourceManager
	syncService sync.Service
	dataService data.Service
	expander    Expander
	relay       RelayFactory
	events      *notify.Dispatcher
	listener    EventListener
	closers     []func() error
	watch       WatchOptions
}

// WatchOptions параметры команды watch
type WatchOptions struct {
	LocalFolder string        // LocalFolder папка встроенного источника, за ней следит fsnotify
	Interval    time.Duration // Interval период опроса удалённых источников
	Debounce    time.Duration // Debounce пауза после последнего изменения на диске
}

// Close releases storages and connections opened by Open.
func (c *Cli) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// parseVars разбирает пары name=value из флагов
func parseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable %q, expected name=value", p)
		}
		vars[name] = value
	}
	return vars, nil
}

// parseVariables разбирает объявления name[=default]
func parseVariables(decls []string) ([]models.Variable, error) {
	var out []models.Variable
	for _, d := range decls {
		name, def, _ := strings.Cut(d, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid variable declaration %q", d)
		}
		out = append(out, models.Variable{Name: name, Default: def})
	}
	return out, nil
}

// describeError превращает типичные ошибки в подсказку пользователю
func describeError(err error) string {
	switch {
	case adapter.IsAuthError(err):
		var authErr *adapter.AuthError
		if errors.As(err, &authErr) && authErr.SourceID != "" {
			return fmt.Sprintf("%v (run 'snipkeeper sources signin %s')", err, authErr.SourceID)
		}
		return fmt.Sprintf("%v (sign in to the source first)", err)
	case errors.Is(err, adapter.ErrNotConfigured):
		return fmt.Sprintf("%v (run 'snipkeeper sources select-folder')", err)
	case errors.Is(err, adapter.ErrReadOnly):
		return fmt.Sprintf("%v (pick a writable source with --to)", err)
	}
	return err.Error()
}
