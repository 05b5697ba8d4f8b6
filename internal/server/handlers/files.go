package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/snipkeeper/internal/crypto"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/server/storage"
	"github.com/iudanet/snipkeeper/internal/validation"
	"github.com/iudanet/snipkeeper/pkg/api"
)

func toAPIFile(f *models.FolderFile) api.File {
	return api.File{
		UpdatedAt: f.UpdatedAt,
		ID:        f.ID,
		Path:      f.Path,
		Revision:  f.Revision,
		UpdatedBy: f.UpdatedBy,
		Size:      f.Size,
		Seq:       f.Seq,
		Deleted:   f.Deleted,
	}
}

func toAPIFiles(files []*models.FolderFile) []api.File {
	result := make([]api.File, 0, len(files))
	for _, f := range files {
		result = append(result, toAPIFile(f))
	}
	return result
}

// ListFiles обрабатывает GET /api/v1/folders/{id}/files
func (h *FolderHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, _, ok := h.authorize(w, r)
	if !ok {
		return
	}

	files, cursor, err := h.folders.ListFiles(ctx, folder.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list files", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.FileList{Files: toAPIFiles(files), Cursor: cursor}, http.StatusOK)
}

// Changes обрабатывает GET /api/v1/folders/{id}/changes?since=N.
// Курсор за горизонтом компактации: 410 Gone, клиент делает полный листинг.
func (h *FolderHandler) Changes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, _, ok := h.authorize(w, r)
	if !ok {
		return
	}

	since, err := strconv.ParseInt(r.URL.Query().Get("since"), 10, 64)
	if err != nil || since < 0 {
		h.sendError(w, "since must be a non-negative integer", http.StatusBadRequest)
		return
	}

	files, cursor, err := h.folders.Changes(ctx, folder.ID, since)
	if err != nil {
		if errors.Is(err, storage.ErrCursorExpired) {
			h.logger.InfoContext(ctx, "cursor expired",
				slog.String("folder_id", folder.ID),
				slog.Int64("since", since))
			h.sendError(w, "cursor expired, full listing required", http.StatusGone)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get changes", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.Changes{Files: toAPIFiles(files), Cursor: cursor}, http.StatusOK)
}

// FileMeta обрабатывает GET /api/v1/folders/{id}/files/{fileID}
func (h *FolderHandler) FileMeta(w http.ResponseWriter, r *http.Request) {
	file, ok := h.loadFile(w, r)
	if !ok {
		return
	}
	h.sendJSON(w, toAPIFile(file), http.StatusOK)
}

// Download обрабатывает GET /api/v1/folders/{id}/files/{fileID}/content
func (h *FolderHandler) Download(w http.ResponseWriter, r *http.Request) {
	file, ok := h.loadFile(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.Header().Set(api.HeaderRevision, file.Revision)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write file content", slog.Any("error", err))
	}
}

// Upload обрабатывает PUT /api/v1/folders/{id}/files?path=...
func (h *FolderHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	path := r.URL.Query().Get("path")
	if err := validation.ValidateFilePath(path); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxFileSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.sendError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	stored, err := h.folders.PutFile(ctx, &models.FolderFile{
		FolderID:  folder.ID,
		Path:      path,
		Revision:  crypto.ContentHash(content),
		Content:   content,
		UpdatedBy: userID,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to store file", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "file stored",
		slog.String("folder_id", folder.ID),
		slog.String("path", path),
		slog.Int64("seq", stored.Seq))

	h.sendJSON(w, toAPIFile(stored), http.StatusOK)
}

// DeleteFile обрабатывает DELETE /api/v1/folders/{id}/files?path=...
func (h *FolderHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	path := r.URL.Query().Get("path")
	if err := validation.ValidateFilePath(path); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.folders.DeleteFile(ctx, folder.ID, path, userID, time.Now())
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			h.sendError(w, "file not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete file", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "file deleted",
		slog.String("folder_id", folder.ID),
		slog.String("path", path),
		slog.Int64("seq", deleted.Seq))

	w.WriteHeader(http.StatusNoContent)
}

func (h *FolderHandler) loadFile(w http.ResponseWriter, r *http.Request) (*models.FolderFile, bool) {
	ctx := r.Context()

	folder, _, ok := h.authorize(w, r)
	if !ok {
		return nil, false
	}

	file, err := h.folders.GetFile(ctx, folder.ID, r.PathValue("fileID"))
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			h.sendError(w, "file not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get file", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return file, true
}
