// Package server собирает HTTP сервер папок: маршруты, middleware и фоновое обслуживание
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/snipkeeper/internal/server/handlers"
	"github.com/iudanet/snipkeeper/internal/server/middleware"
	"github.com/iudanet/snipkeeper/internal/server/storage"
)

// Storage объединяет хранилища, нужные серверу
type Storage interface {
	storage.UserStorage
	storage.TokenStorage
	storage.FolderStorage
	handlers.Pinger
}

// Dependencies зависимости HTTP обработчика
type Dependencies struct {
	Storage     Storage
	Logger      *slog.Logger
	JWT         handlers.JWTConfig
	Version     string
	MaxFileSize int64
	// Limiter общий лимит на IP; AuthLimiter строже, для /api/v1/auth/
	Limiter     *middleware.RateLimiter
	AuthLimiter *middleware.RateLimiter
}

// NewHTTPHandler регистрирует маршруты API
func NewHTTPHandler(deps Dependencies) http.Handler {
	logger := deps.Logger

	authHandler := handlers.NewAuthHandler(logger, deps.Storage, deps.Storage, deps.JWT)
	folderHandler := handlers.NewFolderHandler(logger, deps.Storage, deps.Storage, deps.MaxFileSize)
	healthHandler := handlers.NewHealthHandler(logger, deps.Storage, deps.Version)

	protected := middleware.Auth(logger, deps.JWT)
	secure := func(h http.HandlerFunc) http.Handler {
		return protected(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.Handle("POST /api/v1/auth/logout", secure(authHandler.Logout))
	mux.Handle("GET /api/v1/auth/me", secure(authHandler.Me))

	mux.Handle("POST /api/v1/folders", secure(folderHandler.CreateFolder))
	mux.Handle("GET /api/v1/folders", secure(folderHandler.ListFolders))
	mux.Handle("GET /api/v1/folders/{id}", secure(folderHandler.GetFolder))
	mux.Handle("POST /api/v1/folders/{id}/members", secure(folderHandler.AddMember))
	mux.Handle("GET /api/v1/folders/{id}/files", secure(folderHandler.ListFiles))
	mux.Handle("PUT /api/v1/folders/{id}/files", secure(folderHandler.Upload))
	mux.Handle("DELETE /api/v1/folders/{id}/files", secure(folderHandler.DeleteFile))
	mux.Handle("GET /api/v1/folders/{id}/changes", secure(folderHandler.Changes))
	mux.Handle("GET /api/v1/folders/{id}/files/{fileID}", secure(folderHandler.FileMeta))
	mux.Handle("GET /api/v1/folders/{id}/files/{fileID}/content", secure(folderHandler.Download))

	var limits []middleware.PathRateLimit
	if deps.AuthLimiter != nil {
		limits = append(limits, middleware.PathRateLimit{Prefix: "/api/v1/auth/", Limiter: deps.AuthLimiter})
	}

	return middleware.Chain(mux,
		middleware.Recovery(logger),
		middleware.Logging(logger, "/api/v1/health"),
		middleware.RateLimit(logger, deps.Limiter, limits...),
	)
}

// Maintenance периодически компактирует удалённые файлы и чистит просроченные refresh токены
type Maintenance struct {
	storage      Storage
	logger       *slog.Logger
	now          func() time.Time
	tombstoneTTL time.Duration
}

// NewMaintenance создает фоновое обслуживание хранилища
func NewMaintenance(s Storage, tombstoneTTL time.Duration, logger *slog.Logger) *Maintenance {
	return &Maintenance{
		storage:      s,
		logger:       logger,
		now:          time.Now,
		tombstoneTTL: tombstoneTTL,
	}
}

// RunOnce выполняет один проход обслуживания
func (m *Maintenance) RunOnce(ctx context.Context) {
	purged, err := m.storage.Compact(ctx, m.now().Add(-m.tombstoneTTL))
	if err != nil {
		m.logger.ErrorContext(ctx, "tombstone compaction failed", slog.Any("error", err))
	} else if purged > 0 {
		m.logger.InfoContext(ctx, "tombstones compacted", slog.Int("purged", purged))
	}

	expired, err := m.storage.DeleteExpiredTokens(ctx)
	if err != nil {
		m.logger.ErrorContext(ctx, "expired token cleanup failed", slog.Any("error", err))
	} else if expired > 0 {
		m.logger.InfoContext(ctx, "expired refresh tokens removed", slog.Int("deleted", expired))
	}
}

// Run выполняет обслуживание каждые interval до отмены ctx
func (m *Maintenance) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.RunOnce(ctx)
	for {
		select {
		case <-ticker.C:
			m.RunOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}
