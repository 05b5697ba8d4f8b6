// Package gdrive реализует источник поверх папки Google Drive.
//
// Курсор: page token Changes API. Учитываются только файлы, лежащие
// непосредственно в выбранной папке; вложенные папки не обходятся.
package gdrive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/retry"
)

// Kind тип провайдера в реестре
const Kind = "gdrive"

// Ключи настроек провайдера
const (
	SettingClientID     = "gdrive.client_id"
	SettingClientSecret = "gdrive.client_secret"
	SettingEndpoint     = "gdrive.endpoint"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	fileFields     = "id, name, mimeType, md5Checksum, size, modifiedTime, version, parents, trashed"
)

// ErrNoClient не настроен OAuth клиент
var ErrNoClient = errors.New("gdrive client_id is not configured")

// Adapter работает с одной папкой Drive
type Adapter struct {
	creds    adapter.CredentialStore
	prompt   adapter.Prompter
	logger   *slog.Logger
	config   *oauth2.Config
	service  *drive.Service
	folder   *adapter.FolderInfo
	source   models.Source
	endpoint string
	policy   retry.Policy
	mu       sync.Mutex
}

var (
	_ adapter.Adapter  = (*Adapter)(nil)
	_ adapter.Uploader = (*Adapter)(nil)
	_ adapter.Remover  = (*Adapter)(nil)
)

// New is an adapter.Constructor.
func New(source models.Source, deps adapter.Dependencies) (adapter.Adapter, error) {
	clientID := deps.Setting(SettingClientID, "")
	if clientID == "" {
		return nil, ErrNoClient
	}
	if deps.Credentials == nil {
		return nil, fmt.Errorf("gdrive source %q: credential store is required", source.ID)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Adapter{
		creds:  deps.Credentials,
		prompt: deps.Prompt,
		logger: logger,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: deps.Setting(SettingClientSecret, ""),
			Endpoint:     endpoints.Google,
			Scopes:       []string{drive.DriveScope},
		},
		source:   source,
		endpoint: deps.Setting(SettingEndpoint, ""),
		policy:   deps.Retry,
	}, nil
}

// Register добавляет провайдер в реестр
func Register(r *adapter.Registry) {
	r.Register(Kind, New)
}

func (a *Adapter) Kind() string { return Kind }

func (a *Adapter) Capabilities() adapter.Capabilities {
	return adapter.Capabilities{Upload: true, Incremental: true}
}

func (a *Adapter) IsSignedIn(ctx context.Context) (bool, error) {
	tok, err := a.loadToken(ctx)
	if errors.Is(err, adapter.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return tok.RefreshToken != "" || tok.Valid(), nil
}

func (a *Adapter) UserInfo(ctx context.Context) (*adapter.UserInfo, error) {
	srv, err := a.drive(ctx)
	if err != nil {
		return nil, err
	}
	about, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.About, error) {
		about, err := srv.About.Get().Fields("user").Context(ctx).Do()
		return about, a.classify(err)
	})
	if err != nil {
		return nil, err
	}
	if about.User == nil {
		return &adapter.UserInfo{}, nil
	}
	return &adapter.UserInfo{
		ID:    about.User.PermissionId,
		Name:  about.User.DisplayName,
		Email: about.User.EmailAddress,
	}, nil
}

// SelectFolder принимает ID папки, "root" или имя папки.
func (a *Adapter) SelectFolder(ctx context.Context, ref string) (*adapter.FolderInfo, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("folder reference cannot be empty")
	}
	srv, err := a.drive(ctx)
	if err != nil {
		return nil, err
	}

	f, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.File, error) {
		f, err := srv.Files.Get(ref).Fields("id, name, mimeType").SupportsAllDrives(true).Context(ctx).Do()
		return f, a.classify(err)
	})
	if statusCode(err) == http.StatusNotFound {
		f, err = a.findFolderByName(ctx, srv, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder %q: %w", ref, err)
	}
	if f.MimeType != folderMimeType {
		return nil, fmt.Errorf("%q is not a folder", f.Name)
	}

	info := &adapter.FolderInfo{ID: f.Id, Name: f.Name, Path: f.Name}
	a.mu.Lock()
	a.folder = info
	a.mu.Unlock()
	return info, nil
}

func (a *Adapter) findFolderByName(ctx context.Context, srv *drive.Service, name string) (*drive.File, error) {
	q := fmt.Sprintf("mimeType = '%s' and name = '%s' and trashed = false", folderMimeType, escapeQuery(name))
	list, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.FileList, error) {
		list, err := srv.Files.List().Q(q).Fields("files(id, name, mimeType)").PageSize(2).Context(ctx).Do()
		return list, a.classify(err)
	})
	if err != nil {
		return nil, err
	}
	if len(list.Files) == 0 {
		return nil, fmt.Errorf("%w: folder %q", adapter.ErrFileNotFound, name)
	}
	if len(list.Files) > 1 {
		a.logger.Warn("Several folders share the name, using the first", "name", name)
	}
	return list.Files[0], nil
}

func (a *Adapter) SelectedFolder(context.Context) (*adapter.FolderInfo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.folder == nil {
		return nil, adapter.ErrNotConfigured
	}
	f := *a.folder
	return &f, nil
}

func (a *Adapter) ListFiles(ctx context.Context) ([]adapter.FileInfo, error) {
	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}
	srv, err := a.drive(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("'%s' in parents and trashed = false and mimeType != '%s'", escapeQuery(folderID), folderMimeType)
	var (
		files     []adapter.FileInfo
		pageToken string
	)
	for {
		list, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.FileList, error) {
			call := srv.Files.List().Q(q).Fields(googleapi.Field("nextPageToken, files(" + fileFields + ")")).PageSize(1000)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			list, err := call.Context(ctx).Do()
			return list, a.classify(err)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list folder: %w", err)
		}
		for _, f := range list.Files {
			files = append(files, toFileInfo(f))
		}
		if list.NextPageToken == "" {
			return files, nil
		}
		pageToken = list.NextPageToken
	}
}

// ListChanges проходит все страницы Changes API после курсора.
// Файл, покинувший папку или попавший в корзину, считается удалённым.
// Пустой курсор даёт полный листинг без обращения к Changes API.
func (a *Adapter) ListChanges(ctx context.Context, cursor string) (*adapter.ChangeSet, error) {
	if cursor == "" {
		return adapter.FullListing(ctx, a)
	}
	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}
	srv, err := a.drive(ctx)
	if err != nil {
		return nil, err
	}

	set := &adapter.ChangeSet{}
	pageToken := cursor
	for {
		list, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.ChangeList, error) {
			list, err := srv.Changes.List(pageToken).
				Fields(googleapi.Field("nextPageToken, newStartPageToken, changes(fileId, removed, file(" + fileFields + "))")).
				IncludeRemoved(true).
				PageSize(1000).
				Context(ctx).Do()
			return list, a.classify(err)
		})
		if err != nil {
			// Недействительный page token
			if code := statusCode(err); code == http.StatusBadRequest || code == http.StatusNotFound {
				a.logger.Debug("Page token rejected, requesting resync", "error", err)
				return &adapter.ChangeSet{ResyncRequired: true}, nil
			}
			return nil, fmt.Errorf("failed to list changes: %w", err)
		}

		for _, ch := range list.Changes {
			if ch.Removed || ch.File == nil || ch.File.Trashed || !slices.Contains(ch.File.Parents, folderID) {
				set.Removed = append(set.Removed, ch.FileId)
				continue
			}
			if ch.File.MimeType == folderMimeType {
				continue
			}
			set.Files = append(set.Files, toFileInfo(ch.File))
		}

		if list.NewStartPageToken != "" {
			set.Cursor = list.NewStartPageToken
			return set, nil
		}
		if list.NextPageToken == "" {
			set.Cursor = pageToken
			return set, nil
		}
		pageToken = list.NextPageToken
	}
}

func (a *Adapter) DeltaCursor(ctx context.Context) (string, error) {
	srv, err := a.drive(ctx)
	if err != nil {
		return "", err
	}
	tok, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.StartPageToken, error) {
		tok, err := srv.Changes.GetStartPageToken().Context(ctx).Do()
		return tok, a.classify(err)
	})
	if err != nil {
		return "", fmt.Errorf("failed to get start page token: %w", err)
	}
	return tok.StartPageToken, nil
}

func (a *Adapter) Download(ctx context.Context, fileID string) ([]byte, error) {
	srv, err := a.drive(ctx)
	if err != nil {
		return nil, err
	}
	data, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) ([]byte, error) {
		resp, err := srv.Files.Get(fileID).Context(ctx).Download()
		if err != nil {
			return nil, a.classify(err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", retry.ErrTransientNetwork, err)
		}
		return data, nil
	})
	if err != nil {
		return nil, notFound(err, fileID)
	}
	return data, nil
}

func (a *Adapter) Metadata(ctx context.Context, fileID string) (*adapter.FileInfo, error) {
	srv, err := a.drive(ctx)
	if err != nil {
		return nil, err
	}
	f, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.File, error) {
		f, err := srv.Files.Get(fileID).Fields(fileFields).Context(ctx).Do()
		return f, a.classify(err)
	})
	if err != nil {
		return nil, notFound(err, fileID)
	}
	if f.Trashed {
		return nil, fmt.Errorf("%w: %s", adapter.ErrFileNotFound, fileID)
	}
	info := toFileInfo(f)
	return &info, nil
}

// Upload заменяет файл с тем же именем в папке или создаёт новый.
// Вложенные пути сводятся к имени файла.
func (a *Adapter) Upload(ctx context.Context, filePath string, data []byte) (*adapter.FileInfo, error) {
	folderID, err := a.folderID()
	if err != nil {
		return nil, err
	}
	srv, err := a.drive(ctx)
	if err != nil {
		return nil, err
	}

	name := baseName(filePath)
	existing, err := a.findFile(ctx, srv, folderID, name)
	if err != nil {
		return nil, err
	}

	f, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.File, error) {
		var (
			f   *drive.File
			err error
		)
		if existing != nil {
			f, err = srv.Files.Update(existing.Id, &drive.File{}).Media(bytes.NewReader(data)).Fields(fileFields).Context(ctx).Do()
		} else {
			meta := &drive.File{Name: name, Parents: []string{folderID}}
			f, err = srv.Files.Create(meta).Media(bytes.NewReader(data)).Fields(fileFields).Context(ctx).Do()
		}
		return f, a.classify(err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}
	info := toFileInfo(f)
	return &info, nil
}

// Remove перемещает файл в корзину
func (a *Adapter) Remove(ctx context.Context, filePath string) error {
	folderID, err := a.folderID()
	if err != nil {
		return err
	}
	srv, err := a.drive(ctx)
	if err != nil {
		return err
	}

	existing, err := a.findFile(ctx, srv, folderID, baseName(filePath))
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", adapter.ErrFileNotFound, filePath)
	}

	return retry.Do(ctx, a.policy, func(ctx context.Context) error {
		_, err := srv.Files.Update(existing.Id, &drive.File{Trashed: true}).Context(ctx).Do()
		return a.classify(err)
	})
}

func (a *Adapter) findFile(ctx context.Context, srv *drive.Service, folderID, name string) (*drive.File, error) {
	q := fmt.Sprintf("'%s' in parents and name = '%s' and trashed = false", escapeQuery(folderID), escapeQuery(name))
	list, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (*drive.FileList, error) {
		list, err := srv.Files.List().Q(q).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
		return list, a.classify(err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", name, err)
	}
	if len(list.Files) == 0 {
		return nil, nil
	}
	return list.Files[0], nil
}

func (a *Adapter) folderID() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.folder == nil {
		return "", adapter.ErrNotConfigured
	}
	return a.folder.ID, nil
}

// drive лениво создаёт клиент Drive API с сохранённым токеном
func (a *Adapter) drive(ctx context.Context) (*drive.Service, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.service != nil {
		return a.service, nil
	}

	tok, err := a.loadToken(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrCredentialNotFound) {
			return nil, a.authError(err)
		}
		return nil, err
	}

	// Токен обновляется вне контекста отдельного вызова
	base := a.config.TokenSource(context.WithoutCancel(ctx), tok)
	ts := &savingTokenSource{
		base:     oauth2.ReuseTokenSource(tok, base),
		save:     func(t *oauth2.Token) error { return a.saveToken(context.WithoutCancel(ctx), t) },
		last:     tok.AccessToken,
		logger:   a.logger,
		sourceID: a.source.ID,
	}

	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(ctx, ts))}
	if a.endpoint != "" {
		opts = append(opts, option.WithEndpoint(a.endpoint))
	}
	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}
	a.service = srv
	return srv, nil
}

// classify переводит ошибки Drive API в таксономию retry и адаптера
func (a *Adapter) classify(err error) error {
	if err == nil {
		return nil
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return a.authError(err)
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}
	if gerr.Code == http.StatusUnauthorized {
		return a.authError(err)
	}

	httpErr := &retry.HTTPError{StatusCode: gerr.Code, Message: gerr.Message}
	if gerr.Code == http.StatusForbidden && isRateLimit(gerr) {
		return fmt.Errorf("%w: %w", retry.ErrRateLimited, httpErr)
	}
	if ra := gerr.Header.Get("Retry-After"); ra != "" {
		if secs, perr := strconv.Atoi(ra); perr == nil {
			httpErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return httpErr
}

func (a *Adapter) authError(err error) error {
	return &adapter.AuthError{SourceID: a.source.ID, Kind: Kind, Err: err}
}

func isRateLimit(gerr *googleapi.Error) bool {
	for _, item := range gerr.Errors {
		if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
			return true
		}
	}
	return false
}

func statusCode(err error) int {
	var httpErr *retry.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func notFound(err error, id string) error {
	if statusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %s", adapter.ErrFileNotFound, id)
	}
	return err
}

func toFileInfo(f *drive.File) adapter.FileInfo {
	revision := f.Md5Checksum
	if revision == "" {
		revision = fmt.Sprintf("v%d", f.Version)
	}
	modified, _ := time.Parse(time.RFC3339, f.ModifiedTime)
	return adapter.FileInfo{
		ModifiedAt: modified,
		ID:         f.Id,
		Name:       f.Name,
		Path:       f.Name,
		Revision:   revision,
		Size:       f.Size,
	}
}

func baseName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// escapeQuery экранирует строку для языка запросов Drive
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
