package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/snipkeeper/internal/retry"
	"github.com/iudanet/snipkeeper/pkg/api"
)

// ErrUnauthorized токен отсутствует, истёк или отозван
var ErrUnauthorized = errors.New("unauthorized")

// ErrGone курсор старше горизонта журнала изменений
var ErrGone = errors.New("cursor is behind change log horizon")

// ErrNotFound ресурс не найден
var ErrNotFound = errors.New("not found")

// Client представляет HTTP клиент для взаимодействия с сервером папок
type Client struct {
	httpClient *http.Client
	baseURL    string
	policy     retry.Policy
}

// NewClient создает новый API клиент
func NewClient(baseURL string, policy retry.Policy) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  policy,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL returns the server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh token на сервере
func (c *Client) Logout(ctx context.Context, accessToken, refreshToken string) error {
	req := api.LogoutRequest{RefreshToken: refreshToken}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Me возвращает текущего пользователя
func (c *Client) Me(ctx context.Context, accessToken string) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/auth/me", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// CreateFolder создаёт папку, владельцем становится текущий пользователь
func (c *Client) CreateFolder(ctx context.Context, accessToken, name string) (*api.Folder, error) {
	var resp api.Folder
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/folders", accessToken, api.CreateFolderRequest{Name: name}, &resp); err != nil {
		return nil, fmt.Errorf("create folder request failed: %w", err)
	}
	return &resp, nil
}

// ListFolders возвращает папки, доступные пользователю
func (c *Client) ListFolders(ctx context.Context, accessToken string) ([]api.Folder, error) {
	var resp api.FolderList
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/folders", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list folders request failed: %w", err)
	}
	return resp.Folders, nil
}

// GetFolder возвращает папку по ID
func (c *Client) GetFolder(ctx context.Context, accessToken, folderID string) (*api.Folder, error) {
	var resp api.Folder
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/folders/"+url.PathEscape(folderID), accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get folder request failed: %w", err)
	}
	return &resp, nil
}

// AddMember выдаёт пользователю доступ к папке
func (c *Client) AddMember(ctx context.Context, accessToken, folderID, username string) error {
	path := "/api/v1/folders/" + url.PathEscape(folderID) + "/members"
	if err := c.doJSON(ctx, http.MethodPost, path, accessToken, api.AddMemberRequest{Username: username}, nil); err != nil {
		return fmt.Errorf("add member request failed: %w", err)
	}
	return nil
}

// ListFiles возвращает полный листинг папки
func (c *Client) ListFiles(ctx context.Context, accessToken, folderID string) (*api.FileList, error) {
	var resp api.FileList
	if err := c.doJSON(ctx, http.MethodGet, folderPath(folderID, "/files"), accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list files request failed: %w", err)
	}
	return &resp, nil
}

// Changes возвращает изменения после since. ErrGone, если курсор устарел.
func (c *Client) Changes(ctx context.Context, accessToken, folderID string, since int64) (*api.Changes, error) {
	var resp api.Changes
	path := folderPath(folderID, "/changes") + "?since=" + strconv.FormatInt(since, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("changes request failed: %w", err)
	}
	return &resp, nil
}

// FileMeta возвращает метаданные файла
func (c *Client) FileMeta(ctx context.Context, accessToken, folderID, fileID string) (*api.File, error) {
	var resp api.File
	if err := c.doJSON(ctx, http.MethodGet, folderPath(folderID, "/files/"+url.PathEscape(fileID)), accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("file meta request failed: %w", err)
	}
	return &resp, nil
}

// Download возвращает содержимое файла и его ревизию
func (c *Client) Download(ctx context.Context, accessToken, folderID, fileID string) ([]byte, string, error) {
	var (
		data     []byte
		revision string
	)
	path := folderPath(folderID, "/files/"+url.PathEscape(fileID)+"/content")
	err := c.do(ctx, http.MethodGet, path, accessToken, "", nil, func(resp *http.Response) error {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		data = body
		revision = resp.Header.Get(api.HeaderRevision)
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("download request failed: %w", err)
	}
	return data, revision, nil
}

// Upload создаёт или заменяет файл по относительному пути
func (c *Client) Upload(ctx context.Context, accessToken, folderID, filePath string, data []byte) (*api.File, error) {
	var resp api.File
	path := folderPath(folderID, "/files") + "?path=" + url.QueryEscape(filePath)
	err := c.do(ctx, http.MethodPut, path, accessToken, "application/octet-stream", data, decodeInto(&resp))
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	return &resp, nil
}

// DeleteFile удаляет файл по относительному пути
func (c *Client) DeleteFile(ctx context.Context, accessToken, folderID, filePath string) error {
	path := folderPath(folderID, "/files") + "?path=" + url.QueryEscape(filePath)
	if err := c.do(ctx, http.MethodDelete, path, accessToken, "", nil, nil); err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

func folderPath(folderID, suffix string) string {
	return "/api/v1/folders/" + url.PathEscape(folderID) + suffix
}

func decodeInto(result any) func(*http.Response) error {
	return func(resp *http.Response) error {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
}

// doJSON выполняет запрос с JSON телом и JSON ответом
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, result any) error {
	var (
		payload     []byte
		contentType string
	)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
		contentType = "application/json"
	}

	var handle func(*http.Response) error
	if result != nil {
		handle = decodeInto(result)
	}
	return c.do(ctx, method, path, token, contentType, payload, handle)
}

// do выполняет HTTP запрос с повторами временных ошибок
func (c *Client) do(ctx context.Context, method, path, token, contentType string, payload []byte, handle func(*http.Response) error) error {
	return retry.Do(ctx, c.policy, func(ctx context.Context) error {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return statusError(resp)
		}

		if handle == nil {
			return nil
		}
		return handle(resp)
	})
}

// statusError переводит неуспешный ответ в ошибку, понятную retry и адаптеру
func statusError(resp *http.Response) error {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := strings.TrimSpace(string(respBody))
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
		if errResp.Message != "" {
			message += ": " + errResp.Message
		}
	}

	httpErr := &retry.HTTPError{StatusCode: resp.StatusCode, Message: message}
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil {
			httpErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, httpErr)
	case http.StatusGone:
		return fmt.Errorf("%w: %w", ErrGone, httpErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, httpErr)
	}
	return httpErr
}
