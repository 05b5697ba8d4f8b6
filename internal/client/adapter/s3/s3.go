// Package s3 реализует источник поверх бакета S3-совместимого хранилища.
//
// Папка задаётся как "bucket/prefix". Ревизия файла: ETag объекта,
// курсор: дайджест листинга префикса.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/retry"
)

// Kind тип провайдера в реестре
const Kind = "s3"

// Ключи настроек провайдера
const (
	SettingEndpoint  = "s3.endpoint"
	SettingAccessKey = "s3.access_key"
	SettingSecretKey = "s3.secret_key"
	SettingUseSSL    = "s3.use_ssl"
	SettingRegion    = "s3.region"
)

// ErrNoEndpoint адрес хранилища не настроен
var ErrNoEndpoint = errors.New("s3 endpoint is not configured")

// Keys ключ доступа, сохраняемый после SignIn
type Keys struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// Adapter работает с одним префиксом бакета
type Adapter struct {
	creds    adapter.CredentialStore
	prompt   adapter.Prompter
	logger   *slog.Logger
	client   *minio.Client
	folder   *adapter.FolderInfo
	static   Keys
	source   models.Source
	endpoint string
	region   string
	bucket   string
	prefix   string
	policy   retry.Policy
	useSSL   bool
	mu       sync.Mutex
}

var (
	_ adapter.Adapter  = (*Adapter)(nil)
	_ adapter.Uploader = (*Adapter)(nil)
	_ adapter.Remover  = (*Adapter)(nil)
)

// New is an adapter.Constructor.
func New(source models.Source, deps adapter.Dependencies) (adapter.Adapter, error) {
	endpoint := deps.Setting(SettingEndpoint, "")
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}
	useSSL, err := strconv.ParseBool(deps.Setting(SettingUseSSL, "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingUseSSL, err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Adapter{
		creds:  deps.Credentials,
		prompt: deps.Prompt,
		logger: logger,
		static: Keys{
			AccessKey: deps.Setting(SettingAccessKey, ""),
			SecretKey: deps.Setting(SettingSecretKey, ""),
		},
		source:   source,
		endpoint: endpoint,
		region:   deps.Setting(SettingRegion, ""),
		policy:   deps.Retry,
		useSSL:   useSSL,
	}, nil
}

// Register добавляет провайдер в реестр
func Register(r *adapter.Registry) {
	r.Register(Kind, New)
}

func (a *Adapter) Kind() string { return Kind }

func (a *Adapter) Capabilities() adapter.Capabilities {
	return adapter.Capabilities{Upload: true}
}

// SignIn запрашивает ключ доступа и сохраняет его для источника.
func (a *Adapter) SignIn(ctx context.Context) error {
	if a.prompt == nil || a.creds == nil {
		return a.authError(errors.New("interactive input is not available"))
	}

	accessKey, err := a.prompt.ReadInput("Access key: ")
	if err != nil {
		return a.authError(fmt.Errorf("failed to read access key: %w", err))
	}
	secretKey, err := a.prompt.ReadPassword("Secret key: ")
	if err != nil {
		return a.authError(fmt.Errorf("failed to read secret key: %w", err))
	}
	keys := Keys{AccessKey: strings.TrimSpace(accessKey), SecretKey: secretKey}
	if keys.AccessKey == "" || keys.SecretKey == "" {
		return a.authError(errors.New("access key and secret key are required"))
	}

	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to encode keys: %w", err)
	}
	if err := a.creds.SaveCredential(ctx, a.source.ID, data); err != nil {
		return fmt.Errorf("failed to save keys: %w", err)
	}

	a.mu.Lock()
	a.client = nil
	a.mu.Unlock()
	return nil
}

func (a *Adapter) IsSignedIn(ctx context.Context) (bool, error) {
	_, err := a.keys(ctx)
	if errors.Is(err, adapter.ErrCredentialNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (a *Adapter) UserInfo(ctx context.Context) (*adapter.UserInfo, error) {
	keys, err := a.keys(ctx)
	if err != nil {
		return nil, a.authError(err)
	}
	return &adapter.UserInfo{ID: keys.AccessKey, Name: keys.AccessKey}, nil
}

// SelectFolder принимает "bucket" или "bucket/prefix".
func (a *Adapter) SelectFolder(ctx context.Context, ref string) (*adapter.FolderInfo, error) {
	bucket, prefix, err := parseFolderRef(ref)
	if err != nil {
		return nil, err
	}
	client, err := a.minio(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (bool, error) {
		ok, err := client.BucketExists(ctx, bucket)
		return ok, a.classify(err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	name := bucket
	if prefix != "" {
		name = path.Base(strings.TrimSuffix(prefix, "/"))
	}
	info := &adapter.FolderInfo{ID: bucket + "/" + prefix, Name: name, Path: bucket + "/" + prefix}

	a.mu.Lock()
	a.bucket, a.prefix, a.folder = bucket, prefix, info
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
	bucket, prefix, err := a.location()
	if err != nil {
		return nil, err
	}
	client, err := a.minio(ctx)
	if err != nil {
		return nil, err
	}

	return retry.DoValue(ctx, a.policy, func(ctx context.Context) ([]adapter.FileInfo, error) {
		var files []adapter.FileInfo
		for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
			if obj.Err != nil {
				return nil, a.classify(obj.Err)
			}
			if strings.HasSuffix(obj.Key, "/") {
				continue
			}
			files = append(files, toFileInfo(obj, prefix))
		}
		return files, nil
	})
}

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

func (a *Adapter) Download(ctx context.Context, fileID string) ([]byte, error) {
	bucket, _, err := a.location()
	if err != nil {
		return nil, err
	}
	client, err := a.minio(ctx)
	if err != nil {
		return nil, err
	}

	data, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) ([]byte, error) {
		obj, err := client.GetObject(ctx, bucket, fileID, minio.GetObjectOptions{})
		if err != nil {
			return nil, a.classify(err)
		}
		defer func() {
			_ = obj.Close()
		}()
		data, err := io.ReadAll(obj)
		if err != nil {
			return nil, a.classify(err)
		}
		return data, nil
	})
	if err != nil {
		return nil, notFound(err, fileID)
	}
	return data, nil
}

func (a *Adapter) Metadata(ctx context.Context, fileID string) (*adapter.FileInfo, error) {
	bucket, prefix, err := a.location()
	if err != nil {
		return nil, err
	}
	client, err := a.minio(ctx)
	if err != nil {
		return nil, err
	}

	obj, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (minio.ObjectInfo, error) {
		obj, err := client.StatObject(ctx, bucket, fileID, minio.StatObjectOptions{})
		return obj, a.classify(err)
	})
	if err != nil {
		return nil, notFound(err, fileID)
	}
	info := toFileInfo(obj, prefix)
	return &info, nil
}

func (a *Adapter) Upload(ctx context.Context, filePath string, data []byte) (*adapter.FileInfo, error) {
	bucket, prefix, err := a.location()
	if err != nil {
		return nil, err
	}
	client, err := a.minio(ctx)
	if err != nil {
		return nil, err
	}

	key := prefix + strings.TrimPrefix(filePath, "/")
	upload, err := retry.DoValue(ctx, a.policy, func(ctx context.Context) (minio.UploadInfo, error) {
		info, err := client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType(key),
		})
		return info, a.classify(err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return &adapter.FileInfo{
		ModifiedAt: upload.LastModified,
		ID:         key,
		Name:       path.Base(key),
		Path:       strings.TrimPrefix(key, prefix),
		Revision:   strings.Trim(upload.ETag, `"`),
		Size:       upload.Size,
	}, nil
}

func (a *Adapter) Remove(ctx context.Context, filePath string) error {
	bucket, prefix, err := a.location()
	if err != nil {
		return err
	}
	key := prefix + strings.TrimPrefix(filePath, "/")

	// DELETE в S3 не сообщает об отсутствии объекта
	if _, err := a.Metadata(ctx, key); err != nil {
		return err
	}

	client, err := a.minio(ctx)
	if err != nil {
		return err
	}
	return retry.Do(ctx, a.policy, func(ctx context.Context) error {
		return a.classify(client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}))
	})
}

func (a *Adapter) location() (string, string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.folder == nil {
		return "", "", adapter.ErrNotConfigured
	}
	return a.bucket, a.prefix, nil
}

// keys возвращает ключи из настроек или из хранилища учётных данных
func (a *Adapter) keys(ctx context.Context) (Keys, error) {
	if a.static.AccessKey != "" && a.static.SecretKey != "" {
		return a.static, nil
	}
	if a.creds == nil {
		return Keys{}, adapter.ErrCredentialNotFound
	}

	data, err := a.creds.GetCredential(ctx, a.source.ID)
	if err != nil {
		return Keys{}, err
	}
	var keys Keys
	if err := json.Unmarshal(data, &keys); err != nil {
		return Keys{}, fmt.Errorf("failed to decode keys: %w", err)
	}
	return keys, nil
}

func (a *Adapter) minio(ctx context.Context) (*minio.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.client != nil {
		return a.client, nil
	}

	keys, err := a.keys(ctx)
	if err != nil {
		return nil, a.authError(err)
	}

	client, err := minio.New(a.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(keys.AccessKey, keys.SecretKey, ""),
		Secure: a.useSSL,
		Region: a.region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	a.client = client
	return client, nil
}

// classify переводит ответы хранилища в таксономию retry и адаптера
func (a *Adapter) classify(err error) error {
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)
	switch {
	case resp.StatusCode == 0:
		return err
	case resp.Code == "InvalidAccessKeyId" || resp.Code == "SignatureDoesNotMatch" || resp.StatusCode == http.StatusUnauthorized:
		return a.authError(err)
	case resp.Code == "SlowDown":
		return fmt.Errorf("%w: %w", retry.ErrRateLimited, err)
	}

	message := resp.Message
	if resp.Code != "" {
		message = resp.Code + ": " + message
	}
	return &retry.HTTPError{StatusCode: resp.StatusCode, Message: message}
}

func (a *Adapter) authError(err error) error {
	return &adapter.AuthError{SourceID: a.source.ID, Kind: Kind, Err: err}
}

func notFound(err error, id string) error {
	var httpErr *retry.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", adapter.ErrFileNotFound, id)
	}
	return err
}

// parseFolderRef разбирает "bucket/prefix"; префикс всегда оканчивается на "/"
func parseFolderRef(ref string) (string, string, error) {
	ref = strings.Trim(strings.TrimSpace(ref), "/")
	if ref == "" {
		return "", "", fmt.Errorf("folder reference cannot be empty")
	}
	bucket, prefix, _ := strings.Cut(ref, "/")
	if prefix != "" {
		prefix = path.Clean(prefix) + "/"
		if strings.HasPrefix(prefix, "../") || prefix == "./" {
			return "", "", fmt.Errorf("invalid prefix in %q", ref)
		}
	}
	return bucket, prefix, nil
}

func toFileInfo(obj minio.ObjectInfo, prefix string) adapter.FileInfo {
	return adapter.FileInfo{
		ModifiedAt: obj.LastModified,
		ID:         obj.Key,
		Name:       path.Base(obj.Key),
		Path:       strings.TrimPrefix(obj.Key, prefix),
		Revision:   strings.Trim(obj.ETag, `"`),
		Size:       obj.Size,
	}
}

func contentType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".json":
		return "application/json"
	case ".md", ".markdown":
		return "text/markdown; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
