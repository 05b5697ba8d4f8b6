// Package gitrepo реализует источник только для чтения поверх git репозитория.
//
// Папка задаётся как "<url или путь>[#ветка]". Удалённый репозиторий
// клонируется без рабочей копии в кэш и обновляется fetch при каждом
// проходе; локальный путь читается напрямую. Курсор: хеш коммита,
// изменения считаются диффом деревьев.
package gitrepo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/retry"
)

// Kind тип провайдера в реестре
const Kind = "git"

// SettingCacheDir каталог для клонов удалённых репозиториев
const SettingCacheDir = "git.cache_dir"

const remoteName = "origin"

// Token учётные данные для приватных репозиториев по HTTPS
type Token struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Adapter читает файлы одной ветки репозитория
type Adapter struct {
	creds    adapter.CredentialStore
	prompt   adapter.Prompter
	logger   *slog.Logger
	repo     *git.Repository
	folder   *adapter.FolderInfo
	source   models.Source
	cacheDir string
	url      string
	branch   plumbing.ReferenceName
	policy   retry.Policy
	remote   bool
	fetched  bool
	mu       sync.Mutex
}

var _ adapter.Adapter = (*Adapter)(nil)

// New is an adapter.Constructor.
func New(source models.Source, deps adapter.Dependencies) (adapter.Adapter, error) {
	cacheDir := deps.Setting(SettingCacheDir, "")
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
		}
		cacheDir = filepath.Join(base, "snipkeeper", "git")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Adapter{
		creds:    deps.Credentials,
		prompt:   deps.Prompt,
		logger:   logger,
		source:   source,
		cacheDir: cacheDir,
		policy:   deps.Retry,
	}, nil
}

// Register добавляет провайдер в реестр
func Register(r *adapter.Registry) {
	r.Register(Kind, New)
}

func (a *Adapter) Kind() string { return Kind }

func (a *Adapter) Capabilities() adapter.Capabilities {
	return adapter.Capabilities{Incremental: true}
}

// SignIn сохраняет имя пользователя и токен доступа для HTTPS.
func (a *Adapter) SignIn(ctx context.Context) error {
	if a.prompt == nil || a.creds == nil {
		return a.authError(errors.New("interactive input is not available"))
	}

	username, err := a.prompt.ReadInput("Username: ")
	if err != nil {
		return a.authError(fmt.Errorf("failed to read username: %w", err))
	}
	token, err := a.prompt.ReadPassword("Access token: ")
	if err != nil {
		return a.authError(fmt.Errorf("failed to read token: %w", err))
	}
	if token == "" {
		return a.authError(errors.New("access token cannot be empty"))
	}

	data, err := json.Marshal(Token{Username: strings.TrimSpace(username), Token: token})
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return a.creds.SaveCredential(ctx, a.source.ID, data)
}

// IsSignedIn всегда true: публичные репозитории читаются анонимно.
func (a *Adapter) IsSignedIn(context.Context) (bool, error) {
	return true, nil
}

func (a *Adapter) UserInfo(ctx context.Context) (*adapter.UserInfo, error) {
	tok, err := a.token(ctx)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return &adapter.UserInfo{ID: "anonymous", Name: "anonymous"}, nil
	}
	return &adapter.UserInfo{ID: tok.Username, Name: tok.Username}, nil
}

// SelectFolder открывает локальный репозиторий или клонирует удалённый.
func (a *Adapter) SelectFolder(ctx context.Context, ref string) (*adapter.FolderInfo, error) {
	url, branch := parseFolderRef(ref)
	if url == "" {
		return nil, fmt.Errorf("repository reference cannot be empty")
	}

	var (
		repo   *git.Repository
		err    error
		remote = isRemote(url)
	)
	if remote {
		repo, err = a.openClone(ctx, url, branch)
	} else {
		repo, err = git.PlainOpenWithOptions(url, &git.PlainOpenOptions{DetectDotGit: true})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", url, err)
	}

	refName := plumbing.NewBranchReferenceName(branch)
	if branch == "" {
		head, err := repo.Head()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve HEAD of %s: %w", url, err)
		}
		refName = head.Name()
	}

	name := strings.TrimSuffix(path.Base(strings.TrimRight(filepath.ToSlash(url), "/")), ".git")
	info := &adapter.FolderInfo{ID: ref, Name: name, Path: url + "#" + refName.Short()}

	a.mu.Lock()
	a.repo = repo
	a.url = url
	a.branch = refName
	a.remote = remote
	a.fetched = remote // свежий клон не требует fetch
	a.folder = info
	a.mu.Unlock()

	return info, nil
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
	commit, err := a.head(ctx)
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}

	var files []adapter.FileInfo
	err = tree.Files().ForEach(func(f *object.File) error {
		if hidden(f.Name) {
			return nil
		}
		files = append(files, toFileInfo(f, commit))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk tree: %w", err)
	}
	return files, nil
}

// ListChanges сравнивает дерево коммита-курсора с текущим.
// Пустой курсор даёт полный листинг. Если коммит курсора недоступен,
// запрашивается полный листинг через ResyncRequired.
func (a *Adapter) ListChanges(ctx context.Context, cursor string) (*adapter.ChangeSet, error) {
	if cursor == "" {
		return adapter.FullListing(ctx, a)
	}
	commit, err := a.head(ctx)
	if err != nil {
		return nil, err
	}
	if commit.Hash.String() == cursor {
		return &adapter.ChangeSet{Cursor: cursor}, nil
	}

	if !isCommitHash(cursor) {
		return &adapter.ChangeSet{ResyncRequired: true}, nil
	}
	hash := plumbing.NewHash(cursor)
	a.mu.Lock()
	repo := a.repo
	a.mu.Unlock()

	previous, err := repo.CommitObject(hash)
	if err != nil {
		a.logger.Debug("Cursor commit is unavailable, requesting resync", "cursor", cursor, "error", err)
		return &adapter.ChangeSet{ResyncRequired: true}, nil
	}

	from, err := previous.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	to, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}

	changes, err := from.DiffContext(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees: %w", err)
	}

	set := &adapter.ChangeSet{Cursor: commit.Hash.String()}
	for _, ch := range changes {
		action, err := ch.Action()
		if err != nil {
			return nil, fmt.Errorf("failed to classify change: %w", err)
		}
		switch action {
		case merkletrie.Delete:
			if !hidden(ch.From.Name) {
				set.Removed = append(set.Removed, ch.From.Name)
			}
		case merkletrie.Insert, merkletrie.Modify:
			if hidden(ch.To.Name) {
				continue
			}
			f, err := to.File(ch.To.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", ch.To.Name, err)
			}
			set.Files = append(set.Files, toFileInfo(f, commit))
		}
	}
	return set, nil
}

func (a *Adapter) DeltaCursor(ctx context.Context) (string, error) {
	commit, err := a.head(ctx)
	if err != nil {
		return "", err
	}
	return commit.Hash.String(), nil
}

func (a *Adapter) Download(ctx context.Context, fileID string) ([]byte, error) {
	f, _, err := a.file(ctx, fileID)
	if err != nil {
		return nil, err
	}
	contents, err := f.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileID, err)
	}
	return []byte(contents), nil
}

func (a *Adapter) Metadata(ctx context.Context, fileID string) (*adapter.FileInfo, error) {
	f, commit, err := a.file(ctx, fileID)
	if err != nil {
		return nil, err
	}
	info := toFileInfo(f, commit)
	return &info, nil
}

func (a *Adapter) file(ctx context.Context, fileID string) (*object.File, *object.Commit, error) {
	commit, err := a.head(ctx)
	if err != nil {
		return nil, nil, err
	}
	f, err := commit.File(fileID)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", adapter.ErrFileNotFound, fileID)
		}
		return nil, nil, fmt.Errorf("failed to read %s: %w", fileID, err)
	}
	return f, commit, nil
}

// head возвращает вершину ветки; удалённый репозиторий обновляется один раз за проход
func (a *Adapter) head(ctx context.Context) (*object.Commit, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.repo == nil {
		return nil, adapter.ErrNotConfigured
	}

	if a.remote && !a.fetched {
		if err := a.fetch(ctx); err != nil {
			return nil, err
		}
		a.fetched = true
	}

	ref, err := a.repo.Reference(a.branch, true)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve branch %s: %w", a.branch.Short(), err)
	}
	commit, err := a.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", ref.Hash(), err)
	}
	return commit, nil
}

func (a *Adapter) fetch(ctx context.Context) error {
	auth, err := a.auth(ctx)
	if err != nil {
		return err
	}
	spec := config.RefSpec(fmt.Sprintf("+%s:%s", a.branch, a.branch))

	err = retry.Do(ctx, a.policy, func(ctx context.Context) error {
		err := a.repo.FetchContext(ctx, &git.FetchOptions{
			RemoteName: remoteName,
			RefSpecs:   []config.RefSpec{spec},
			Auth:       auth,
			Tags:       git.NoTags,
			Force:      true,
		})
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil
		}
		return a.classify(err)
	})
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", a.url, err)
	}
	a.logger.Debug("Repository fetched", "url", a.url, "branch", a.branch.Short())
	return nil
}

// openClone открывает кэшированный клон или создаёт новый
func (a *Adapter) openClone(ctx context.Context, url, branch string) (*git.Repository, error) {
	dir := filepath.Join(a.cacheDir, a.source.ID+"-"+shortHash(url))

	repo, err := git.PlainOpen(dir)
	switch {
	case err == nil:
		if matchesRemote(repo, url) {
			return repo, nil
		}
		a.logger.Info("Cached clone points elsewhere, recloning", "dir", dir)
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("failed to remove stale clone: %w", err)
		}
	case errors.Is(err, git.ErrRepositoryNotExists), errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err := os.MkdirAll(a.cacheDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	auth, err := a.auth(ctx)
	if err != nil {
		return nil, err
	}

	opts := &git.CloneOptions{
		URL:          url,
		Auth:         auth,
		RemoteName:   remoteName,
		SingleBranch: true,
		Tags:         git.NoTags,
	}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
	}

	return retry.DoValue(ctx, a.policy, func(ctx context.Context) (*git.Repository, error) {
		repo, err := git.PlainCloneContext(ctx, dir, true, opts)
		if err != nil {
			_ = os.RemoveAll(dir)
			return nil, a.classify(err)
		}
		a.logger.Info("Repository cloned", "url", url, "dir", dir)
		return repo, nil
	})
}

func (a *Adapter) token(ctx context.Context) (*Token, error) {
	if a.creds == nil {
		return nil, nil
	}
	data, err := a.creds.GetCredential(ctx, a.source.ID)
	if errors.Is(err, adapter.ErrCredentialNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return &tok, nil
}

func (a *Adapter) auth(ctx context.Context) (transport.AuthMethod, error) {
	tok, err := a.token(ctx)
	if err != nil || tok == nil {
		return nil, err
	}
	return &githttp.BasicAuth{Username: tok.Username, Password: tok.Token}, nil
}

// classify отделяет ошибки доступа от временных сбоев сети
func (a *Adapter) classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return a.authError(err)
	}
	return err
}

func (a *Adapter) authError(err error) error {
	return &adapter.AuthError{SourceID: a.source.ID, Kind: Kind, Err: err}
}

func matchesRemote(repo *git.Repository, url string) bool {
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return false
	}
	urls := remote.Config().URLs
	return len(urls) > 0 && urls[0] == url
}

// parseFolderRef отделяет ветку после '#'
func parseFolderRef(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	url, branch, _ := strings.Cut(ref, "#")
	return url, strings.TrimSpace(branch)
}

func isRemote(url string) bool {
	return strings.Contains(url, "://") || strings.HasPrefix(url, "git@")
}

func hidden(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

func isCommitHash(s string) bool {
	if len(s) != 40 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func shortHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:6])
}

func toFileInfo(f *object.File, commit *object.Commit) adapter.FileInfo {
	return adapter.FileInfo{
		ModifiedAt: commit.Committer.When.UTC(),
		ID:         f.Name,
		Name:       path.Base(f.Name),
		Path:       f.Name,
		Revision:   f.Hash.String(),
		Size:       f.Size,
	}
}
