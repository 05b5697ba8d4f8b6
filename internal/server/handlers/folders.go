package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/server/storage"
	"github.com/iudanet/snipkeeper/internal/validation"
	"github.com/iudanet/snipkeeper/pkg/api"
)

// FolderHandler обрабатывает запросы к общим папкам и их файлам
type FolderHandler struct {
	responder
	folders     storage.FolderStorage
	userStorage storage.UserStorage
	maxFileSize int64
}

// DefaultMaxFileSize ограничение размера загружаемого файла
const DefaultMaxFileSize = 4 << 20

// NewFolderHandler создает handler папок
func NewFolderHandler(logger *slog.Logger, folders storage.FolderStorage, userStorage storage.UserStorage, maxFileSize int64) *FolderHandler {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &FolderHandler{
		responder:   responder{logger: logger},
		folders:     folders,
		userStorage: userStorage,
		maxFileSize: maxFileSize,
	}
}

func toAPIFolder(f *models.Folder) api.Folder {
	return api.Folder{
		CreatedAt: f.CreatedAt,
		ID:        f.ID,
		Name:      f.Name,
		OwnerID:   f.OwnerID,
	}
}

// CreateFolder обрабатывает POST /api/v1/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if err := validation.ValidateFolderName(name); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	folder := &models.Folder{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.folders.CreateFolder(ctx, folder); err != nil {
		h.logger.ErrorContext(ctx, "failed to create folder", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "folder created",
		slog.String("folder_id", folder.ID),
		slog.String("user_id", userID))

	h.sendJSON(w, toAPIFolder(folder), http.StatusCreated)
}

// ListFolders обрабатывает GET /api/v1/folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	folders, err := h.folders.ListUserFolders(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list folders", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.FolderList{Folders: make([]api.Folder, 0, len(folders))}
	for _, f := range folders {
		resp.Folders = append(resp.Folders, toAPIFolder(f))
	}
	h.sendJSON(w, resp, http.StatusOK)
}

// GetFolder обрабатывает GET /api/v1/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	folder, _, ok := h.authorize(w, r)
	if !ok {
		return
	}
	h.sendJSON(w, toAPIFolder(folder), http.StatusOK)
}

// AddMember обрабатывает POST /api/v1/folders/{id}/members.
// Доступ выдаёт только владелец папки.
func (h *FolderHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, userID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	if folder.OwnerID != userID {
		h.sendError(w, "only the owner can add members", http.StatusForbidden)
		return
	}

	var req api.AddMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.folders.AddMember(ctx, folder.ID, member.ID); err != nil {
		h.logger.ErrorContext(ctx, "failed to add member", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "member added",
		slog.String("folder_id", folder.ID),
		slog.String("member_id", member.ID))

	w.WriteHeader(http.StatusNoContent)
}

// authorize загружает папку из пути и проверяет членство пользователя.
// Чужая папка неотличима от отсутствующей.
func (h *FolderHandler) authorize(w http.ResponseWriter, r *http.Request) (*models.Folder, string, bool) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return nil, "", false
	}

	folderID := r.PathValue("id")
	folder, err := h.folders.GetFolder(ctx, folderID)
	if err != nil {
		if errors.Is(err, storage.ErrFolderNotFound) {
			h.sendError(w, "folder not found", http.StatusNotFound)
			return nil, "", false
		}
		h.logger.ErrorContext(ctx, "failed to get folder", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return nil, "", false
	}

	member, err := h.folders.IsMember(ctx, folderID, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check membership", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return nil, "", false
	}
	if !member {
		h.logger.WarnContext(ctx, "folder access denied",
			slog.String("folder_id", folderID),
			slog.String("user_id", userID))
		h.sendError(w, "folder not found", http.StatusNotFound)
		return nil, "", false
	}

	return folder, userID, true
}
