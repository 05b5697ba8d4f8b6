package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/crypto"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/server/storage"
	"github.com/iudanet/snipkeeper/pkg/api"
)

// folderFixture одна папка f1 владельца owner, и участник member
func folderFixture() *storage.FolderStorageMock {
	folder := &models.Folder{ID: "f1", Name: "team", OwnerID: "owner", CreatedAt: time.Now()}
	members := map[string]bool{"owner": true, "member": true}

	return &storage.FolderStorageMock{
		GetFolderFunc: func(ctx context.Context, folderID string) (*models.Folder, error) {
			if folderID != folder.ID {
				return nil, storage.ErrFolderNotFound
			}
			return folder, nil
		},
		IsMemberFunc: func(ctx context.Context, folderID, userID string) (bool, error) {
			return members[userID], nil
		},
		AddMemberFunc: func(ctx context.Context, folderID, userID string) error {
			members[userID] = true
			return nil
		},
	}
}

// serve прогоняет запрос через ServeMux, чтобы заполнить PathValue
func serve(h *FolderHandler, pattern string, fn http.HandlerFunc, req *http.Request, userID string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, fn)

	if userID != "" {
		req = req.WithContext(WithUser(req.Context(), userID, userID))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestFolderHandler_Authorize(t *testing.T) {
	folders := folderFixture()
	h := NewFolderHandler(setupTestLogger(), folders, nil, 0)

	tests := []struct {
		name     string
		path     string
		userID   string
		wantCode int
	}{
		{name: "member", path: "/api/v1/folders/f1", userID: "member", wantCode: http.StatusOK},
		{name: "stranger", path: "/api/v1/folders/f1", userID: "stranger", wantCode: http.StatusNotFound},
		{name: "missing folder", path: "/api/v1/folders/nope", userID: "member", wantCode: http.StatusNotFound},
		{name: "no user", path: "/api/v1/folders/f1", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := serve(h, "GET /api/v1/folders/{id}", h.GetFolder, req, tt.userID)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestFolderHandler_CreateAndList(t *testing.T) {
	var created []*models.Folder
	folders := &storage.FolderStorageMock{
		CreateFolderFunc: func(ctx context.Context, folder *models.Folder) error {
			created = append(created, folder)
			return nil
		},
		ListUserFoldersFunc: func(ctx context.Context, userID string) ([]*models.Folder, error) {
			return created, nil
		},
	}
	h := NewFolderHandler(setupTestLogger(), folders, nil, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/folders", jsonBody(t, api.CreateFolderRequest{Name: "  Team  "}))
	w := serve(h, "POST /api/v1/folders", h.CreateFolder, req, "owner")
	require.Equal(t, http.StatusCreated, w.Code)

	var folder api.Folder
	require.NoError(t, json.NewDecoder(w.Body).Decode(&folder))
	assert.Equal(t, "Team", folder.Name)
	assert.Equal(t, "owner", folder.OwnerID)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/folders", jsonBody(t, api.CreateFolderRequest{Name: " "}))
	w = serve(h, "POST /api/v1/folders", h.CreateFolder, req, "owner")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/folders", nil)
	w = serve(h, "GET /api/v1/folders", h.ListFolders, req, "owner")
	require.Equal(t, http.StatusOK, w.Code)

	var list api.FolderList
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	assert.Len(t, list.Folders, 1)
}

func TestFolderHandler_AddMember(t *testing.T) {
	store := newAuthStore()
	store.addUser(t, "bob-id", "bob", "password123")

	folders := folderFixture()
	h := NewFolderHandler(setupTestLogger(), folders, store.userMock(), 0)

	tests := []struct {
		name     string
		userID   string
		username string
		wantCode int
	}{
		{name: "owner adds user", userID: "owner", username: "bob", wantCode: http.StatusNoContent},
		{name: "member cannot add", userID: "member", username: "bob", wantCode: http.StatusForbidden},
		{name: "unknown user", userID: "owner", username: "carol", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/folders/f1/members", jsonBody(t, api.AddMemberRequest{Username: tt.username}))
			w := serve(h, "POST /api/v1/folders/{id}/members", h.AddMember, req, tt.userID)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}

	require.Len(t, folders.AddMemberCalls(), 1)
	assert.Equal(t, "bob-id", folders.AddMemberCalls()[0].UserID)
}

func TestFolderHandler_Changes(t *testing.T) {
	folders := folderFixture()
	folders.ChangesFunc = func(ctx context.Context, folderID string, since int64) ([]*models.FolderFile, int64, error) {
		if since < 3 {
			return nil, 0, storage.ErrCursorExpired
		}
		return []*models.FolderFile{{ID: "x", Path: "a.json", Seq: 4, Deleted: true}}, 4, nil
	}
	h := NewFolderHandler(setupTestLogger(), folders, nil, 0)

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{name: "fresh cursor", query: "since=3", wantCode: http.StatusOK},
		{name: "behind horizon", query: "since=1", wantCode: http.StatusGone},
		{name: "negative", query: "since=-1", wantCode: http.StatusBadRequest},
		{name: "missing", query: "", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/folders/f1/changes?"+tt.query, nil)
			w := serve(h, "GET /api/v1/folders/{id}/changes", h.Changes, req, "member")
			require.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusOK {
				var changes api.Changes
				require.NoError(t, json.NewDecoder(w.Body).Decode(&changes))
				assert.Equal(t, int64(4), changes.Cursor)
				require.Len(t, changes.Files, 1)
				assert.True(t, changes.Files[0].Deleted)
			}
		})
	}
}

func TestFolderHandler_UploadAndDownload(t *testing.T) {
	files := map[string]*models.FolderFile{}
	folders := folderFixture()
	folders.PutFileFunc = func(ctx context.Context, file *models.FolderFile) (*models.FolderFile, error) {
		stored := *file
		stored.ID = "file-" + file.Path
		stored.Seq = int64(len(files) + 1)
		stored.Size = int64(len(file.Content))
		files[stored.ID] = &stored
		return &stored, nil
	}
	folders.GetFileFunc = func(ctx context.Context, folderID, fileID string) (*models.FolderFile, error) {
		f, ok := files[fileID]
		if !ok {
			return nil, storage.ErrFileNotFound
		}
		return f, nil
	}
	h := NewFolderHandler(setupTestLogger(), folders, nil, 16)

	content := []byte(`{"id":"1"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/folders/f1/files?path=team/a.json", bytes.NewReader(content))
	w := serve(h, "PUT /api/v1/folders/{id}/files", h.Upload, req, "member")
	require.Equal(t, http.StatusOK, w.Code)

	var file api.File
	require.NoError(t, json.NewDecoder(w.Body).Decode(&file))
	assert.Equal(t, crypto.ContentHash(content), file.Revision)
	assert.Equal(t, "member", file.UpdatedBy)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/folders/f1/files/"+file.ID+"/content", nil)
	w = serve(h, "GET /api/v1/folders/{id}/files/{fileID}/content", h.Download, req, "member")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())
	assert.Equal(t, file.Revision, w.Header().Get(api.HeaderRevision))

	t.Run("invalid path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/folders/f1/files?path=../escape.json", strings.NewReader("x"))
		w := serve(h, "PUT /api/v1/folders/{id}/files", h.Upload, req, "member")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too large", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/folders/f1/files?path=big.json", strings.NewReader(strings.Repeat("x", 17)))
		w := serve(h, "PUT /api/v1/folders/{id}/files", h.Upload, req, "member")
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/folders/f1/files/nope", nil)
		w := serve(h, "GET /api/v1/folders/{id}/files/{fileID}", h.FileMeta, req, "member")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFolderHandler_DeleteFile(t *testing.T) {
	folders := folderFixture()
	folders.DeleteFileFunc = func(ctx context.Context, folderID, path, userID string, at time.Time) (*models.FolderFile, error) {
		if path != "a.json" {
			return nil, storage.ErrFileNotFound
		}
		return &models.FolderFile{ID: "x", Path: path, Deleted: true, Seq: 2}, nil
	}
	h := NewFolderHandler(setupTestLogger(), folders, nil, 0)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/folders/f1/files?path=a.json", nil)
	w := serve(h, "DELETE /api/v1/folders/{id}/files", h.DeleteFile, req, "owner")
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/folders/f1/files?path=b.json", nil)
	w = serve(h, "DELETE /api/v1/folders/{id}/files", h.DeleteFile, req, "owner")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
