// Package relay реализует источник поверх сервера папок snipkeeper-server.
//
// Курсор: номер последнего изменения папки на сервере. Если курсор
// старше горизонта журнала, сервер отвечает 410 и адаптер запрашивает
// полный листинг.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/api"
	"github.com/iudanet/snipkeeper/internal/client/auth"
	"github.com/iudanet/snipkeeper/internal/models"
	pkgapi "github.com/iudanet/snipkeeper/pkg/api"
)

// Kind тип провайдера в реестре
const Kind = "relay"

// SettingURL адрес сервера папок в настройках провайдеров
const SettingURL = "relay.url"

// ErrNoServer адрес сервера не настроен
var ErrNoServer = errors.New("relay server url is not configured")

// Adapter работает с одной папкой на сервере
type Adapter struct {
	client  *api.Client
	session auth.Service
	prompt  adapter.Prompter
	logger  *slog.Logger
	folder  *adapter.FolderInfo
	source  models.Source
	mu      sync.RWMutex
}

var (
	_ adapter.Adapter  = (*Adapter)(nil)
	_ adapter.Uploader = (*Adapter)(nil)
	_ adapter.Remover  = (*Adapter)(nil)
)

// New is an adapter.Constructor.
func New(source models.Source, deps adapter.Dependencies) (adapter.Adapter, error) {
	baseURL := deps.Setting(SettingURL, "")
	if baseURL == "" {
		return nil, ErrNoServer
	}
	if deps.Credentials == nil {
		return nil, fmt.Errorf("relay source %q: credential store is required", source.ID)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	client := api.NewClient(baseURL, deps.Retry)
	session := auth.NewSession(client, deps.Credentials, source.ID, logger)
	return NewWithSession(source, client, session, deps.Prompt, logger), nil
}

// NewWithSession собирает адаптер из готовых клиента и сессии
func NewWithSession(source models.Source, client *api.Client, session auth.Service, prompt adapter.Prompter, logger *slog.Logger) *Adapter {
	return &Adapter{
		client:  client,
		session: session,
		prompt:  prompt,
		logger:  logger,
		source:  source,
	}
}

// Register добавляет провайдер в реестр
func Register(r *adapter.Registry) {
	r.Register(Kind, New)
}

func (a *Adapter) Kind() string { return Kind }

func (a *Adapter) Capabilities() adapter.Capabilities {
	return adapter.Capabilities{Upload: true, Incremental: true}
}

// SignIn запрашивает логин и пароль и открывает сессию на сервере.
func (a *Adapter) SignIn(ctx context.Context) error {
	if a.prompt == nil {
		return a.authError(errors.New("interactive input is not available"))
	}

	a.prompt.Printf("Sign in to %s\n", a.client.BaseURL())
	username, err := a.prompt.ReadInput("Username: ")
	if err != nil {
		return a.authError(fmt.Errorf("failed to read username: %w", err))
	}
	password, err := a.prompt.ReadPassword("Password: ")
	if err != nil {
		return a.authError(fmt.Errorf("failed to read password: %w", err))
	}

	tokens, err := a.session.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return a.authError(err)
	}
	a.prompt.Printf("Signed in as %s\n", tokens.Username)
	return nil
}

func (a *Adapter) IsSignedIn(ctx context.Context) (bool, error) {
	_, err := a.session.Tokens(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, auth.ErrNotSignedIn), errors.Is(err, adapter.ErrCredentialNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (a *Adapter) UserInfo(ctx context.Context) (*adapter.UserInfo, error) {
	var me *pkgapi.UserResponse
	err := a.withToken(ctx, func(token string) error {
		var err error
		me, err = a.client.Me(ctx, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &adapter.UserInfo{ID: me.ID, Name: me.Username}, nil
}

// SelectFolder принимает ID папки или её имя (без учёта регистра).
func (a *Adapter) SelectFolder(ctx context.Context, ref string) (*adapter.FolderInfo, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("folder reference cannot be empty")
	}

	var folder *pkgapi.Folder
	err := a.withToken(ctx, func(token string) error {
		f, err := a.client.GetFolder(ctx, token, ref)
		if err == nil {
			folder = f
			return nil
		}
		if !errors.Is(err, api.ErrNotFound) {
			return err
		}

		folders, err := a.client.ListFolders(ctx, token)
		if err != nil {
			return err
		}
		for i := range folders {
			if strings.EqualFold(folders[i].Name, ref) {
				folder = &folders[i]
				return nil
			}
		}
		return fmt.Errorf("folder %q: %w", ref, api.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}

	info := &adapter.FolderInfo{ID: folder.ID, Name: folder.Name, Path: folder.Name}
	a.mu.Lock()
	a.folder = info
	a.mu.Unlock()
	return info, nil
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

func (a *Adapter) ListFiles(ctx context.Context) ([]adapter.FileInfo, error) {
	list, err := a.listing(ctx)
	if err != nil {
		return nil, err
	}
	files := make([]adapter.FileInfo, 0, len(list.Files))
	for _, f := range list.Files {
		if f.Deleted {
			continue
		}
		files = append(files, toFileInfo(f))
	}
	return files, nil
}

// ListChanges запрашивает журнал изменений после курсора.
// Пустой курсор даёт полный листинг.
func (a *Adapter) ListChanges(ctx context.Context, cursor string) (*adapter.ChangeSet, error) {
	if cursor == "" {
		return adapter.FullListing(ctx, a)
	}
	since, err := strconv.ParseInt(cursor, 10, 64)
	if err != nil || since < 0 {
		a.logger.Debug("Unparseable cursor, requesting resync", "cursor", cursor)
		return &adapter.ChangeSet{ResyncRequired: true}, nil
	}

	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}

	var changes *pkgapi.Changes
	err = a.withToken(ctx, func(token string) error {
		var err error
		changes, err = a.client.Changes(ctx, token, folderID, since)
		return err
	})
	if errors.Is(err, api.ErrGone) {
		return &adapter.ChangeSet{ResyncRequired: true}, nil
	}
	if err != nil {
		return nil, err
	}

	set := &adapter.ChangeSet{Cursor: strconv.FormatInt(changes.Cursor, 10)}
	for _, f := range changes.Files {
		if f.Deleted {
			set.Removed = append(set.Removed, f.ID)
			continue
		}
		set.Files = append(set.Files, toFileInfo(f))
	}
	return set, nil
}

func (a *Adapter) DeltaCursor(ctx context.Context) (string, error) {
	list, err := a.listing(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(list.Cursor, 10), nil
}

func (a *Adapter) Download(ctx context.Context, fileID string) ([]byte, error) {
	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}

	var data []byte
	err = a.withToken(ctx, func(token string) error {
		var err error
		data, _, err = a.client.Download(ctx, token, folderID, fileID)
		return err
	})
	if err != nil {
		return nil, notFound(err, fileID)
	}
	return data, nil
}

func (a *Adapter) Metadata(ctx context.Context, fileID string) (*adapter.FileInfo, error) {
	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}

	var file *pkgapi.File
	err = a.withToken(ctx, func(token string) error {
		var err error
		file, err = a.client.FileMeta(ctx, token, folderID, fileID)
		return err
	})
	if err != nil {
		return nil, notFound(err, fileID)
	}
	if file.Deleted {
		return nil, fmt.Errorf("%w: %s", adapter.ErrFileNotFound, fileID)
	}
	info := toFileInfo(*file)
	return &info, nil
}

func (a *Adapter) Upload(ctx context.Context, filePath string, data []byte) (*adapter.FileInfo, error) {
	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}

	var file *pkgapi.File
	err = a.withToken(ctx, func(token string) error {
		var err error
		file, err = a.client.Upload(ctx, token, folderID, filePath, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	info := toFileInfo(*file)
	return &info, nil
}

func (a *Adapter) Remove(ctx context.Context, filePath string) error {
	folderID, err := a.folderID()
	if err != nil {
		return err
	}
	err = a.withToken(ctx, func(token string) error {
		return a.client.DeleteFile(ctx, token, folderID, filePath)
	})
	if err != nil {
		return notFound(err, filePath)
	}
	return nil
}

func (a *Adapter) listing(ctx context.Context) (*pkgapi.FileList, error) {
	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}

	var list *pkgapi.FileList
	err = a.withToken(ctx, func(token string) error {
		var err error
		list, err = a.client.ListFiles(ctx, token, folderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (a *Adapter) folderID() (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.folder == nil {
		return "", adapter.ErrNotConfigured
	}
	return a.folder.ID, nil
}

// withToken переводит потерю сессии в AuthError
func (a *Adapter) withToken(ctx context.Context, fn func(token string) error) error {
	err := a.session.WithToken(ctx, fn)
	if err == nil {
		return nil
	}
	if errors.Is(err, auth.ErrNotSignedIn) || errors.Is(err, adapter.ErrCredentialNotFound) || errors.Is(err, api.ErrUnauthorized) {
		return a.authError(err)
	}
	return err
}

func (a *Adapter) authError(err error) error {
	return &adapter.AuthError{SourceID: a.source.ID, Kind: Kind, Err: err}
}

func notFound(err error, id string) error {
	if errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("%w: %s", adapter.ErrFileNotFound, id)
	}
	return err
}

func toFileInfo(f pkgapi.File) adapter.FileInfo {
	return adapter.FileInfo{
		ModifiedAt: f.UpdatedAt,
		ID:         f.ID,
		Name:       path.Base(f.Path),
		Path:       f.Path,
		Revision:   f.Revision,
		Size:       f.Size,
	}
}
