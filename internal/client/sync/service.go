package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/notify"
	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/resolve"
)

//go:generate moq -out service_mock.go . Service AdapterFactory Decoder

// ErrSyncInProgress проход уже выполняется, новый отклонён без ожидания
var ErrSyncInProgress = errors.New("sync already in progress")

// ErrNotInitialized настройки ещё не созданы
var ErrNotInitialized = errors.New("settings not initialized")

// Service определяет интерфейс синхронизации
type Service interface {
	// Sync выполняет один проход: загрузка всех источников, разрешение, фиксация
	Sync(ctx context.Context) (*SyncResult, error)

	// Phase возвращает текущую фазу конечного автомата
	Phase() models.SyncPhase

	// Status возвращает сводку последнего прохода
	Status(ctx context.Context) (*models.SyncStatus, error)
}

// AdapterFactory создаёт адаптер для источника
type AdapterFactory interface {
	Create(source models.Source) (adapter.Adapter, error)
}

// Decoder разбирает файлы источника
type Decoder interface {
	Supported(name string) bool
	Parse(name string, data []byte) ([]models.Snippet, error)
}

// SyncResult contains sync pass results
type SyncResult struct {
	Sources      []models.SourceOutcome
	Stats        resolve.Stats
	SnippetCount int
}

// Option настраивает service
type Option func(*service)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithConcurrency ограничивает число одновременно загружаемых источников
func WithConcurrency(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

type service struct {
	adapters    AdapterFactory
	state       storage.SyncStateStorage
	catalog     storage.CatalogStorage
	decoder     Decoder
	notifier    notify.Broadcaster
	logger      *slog.Logger
	now         func() time.Time
	phase       atomic.Value
	concurrency int
}

// NewService creates a new sync service
func NewService(
	adapters AdapterFactory,
	state storage.SyncStateStorage,
	catalog storage.CatalogStorage,
	decoder Decoder,
	notifier notify.Broadcaster,
	logger *slog.Logger,
	opts ...Option,
) Service {
	s := &service{
		adapters:    adapters,
		state:       state,
		catalog:     catalog,
		decoder:     decoder,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
		concurrency: 4,
	}
	s.phase.Store(models.PhaseIdle)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current state machine phase
func (s *service) Phase() models.SyncPhase {
	return s.phase.Load().(models.SyncPhase)
}

// Status returns the persisted status of the last pass
func (s *service) Status(ctx context.Context) (*models.SyncStatus, error) {
	status, err := s.state.GetStatus(ctx)
	if err != nil {
		return nil, err
	}
	if phase := s.Phase(); phase != models.PhaseIdle {
		status.Phase = phase
	}
	return status, nil
}

// sourceResult итог загрузки одного источника
type sourceResult struct {
	err     error
	cursor  string
	records []models.SourceRecord
	outcome models.SourceOutcome
}

// Sync performs one synchronization pass
// 1. Загружает все источники параллельно и ждёт завершения каждого
// 2. Разрешает конфликты в порядке приоритетов
// 3. Фиксирует: быстрый снимок, затем структурированное хранилище, затем курсоры
// 4. Оповещает подписчиков
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	if !s.phase.CompareAndSwap(models.PhaseIdle, models.PhaseSyncing) {
		return nil, ErrSyncInProgress
	}
	defer s.phase.Store(models.PhaseIdle)

	started := s.now()
	s.logger.Info("Starting synchronization")

	settings, err := s.state.LoadSettings(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSettingsNotFound) {
			err = ErrNotInitialized
		}
		return nil, s.fail(ctx, started, nil, fmt.Errorf("failed to load settings: %w", err))
	}

	sources := slices.Clone(settings.Sources)
	models.SortSources(sources)

	results := s.fetchAll(ctx, sources)

	outcomes := make([]models.SourceOutcome, len(results))
	for i, r := range results {
		outcomes[i] = r.outcome
	}

	acc := resolve.NewAccumulator()
	for i, src := range sources {
		r := results[i]
		if r.err != nil {
			if src.IsDefault() {
				return nil, s.fail(ctx, started, outcomes, fmt.Errorf("default source failed: %w", r.err))
			}
			s.logger.Warn("Source failed, using cached records",
				"source_id", src.ID,
				"cached_files", len(r.records),
				"error", r.err)
		}
		acc.Add(src, snippetsOf(r.records))
	}

	res := acc.Resolve(resolve.Options{Now: s.now})

	s.phase.Store(models.PhaseCommitting)
	if err := s.commit(ctx, sources, results, res, outcomes); err != nil {
		return nil, s.fail(ctx, started, outcomes, err)
	}

	status := &models.SyncStatus{
		LastSyncAt:        s.now(),
		Phase:             models.PhaseIdle,
		Sources:           outcomes,
		SnippetCount:      len(res.Entries),
		DuplicatesRemoved: res.Stats.DuplicatesRemoved,
	}
	if err := s.state.SaveStatus(ctx, status); err != nil {
		s.logger.Warn("Failed to save sync status", "error", err)
	}

	if err := s.notifier.Publish(ctx, notify.Event{
		Type:         notify.EventCatalogChanged,
		At:           status.LastSyncAt,
		SnippetCount: len(res.Entries),
	}); err != nil {
		// Каталог уже зафиксирован, ошибка доставки не отменяет проход
		s.logger.Warn("Failed to publish catalog change", "error", err)
	}

	s.logger.Info("Synchronization completed",
		"sources", res.Stats.SourcesProcessed,
		"total", res.Stats.TotalInput,
		"unique", res.Stats.UniqueOutput,
		"duplicates_removed", res.Stats.DuplicatesRemoved,
		"duration", s.now().Sub(started))

	return &SyncResult{
		Sources:      outcomes,
		Stats:        res.Stats,
		SnippetCount: len(res.Entries),
	}, nil
}

// fetchAll загружает источники параллельно; результат доступен только после завершения всех
func (s *service) fetchAll(ctx context.Context, sources []models.Source) []sourceResult {
	results := make([]sourceResult, len(sources))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			results[i] = s.fetchSource(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// commit записывает каталог в строгом порядке.
// Некритичные сбои записываются в outcomes источника.
func (s *service) commit(ctx context.Context, sources []models.Source, results []sourceResult, res *resolve.Result, outcomes []models.SourceOutcome) error {
	catalog := res.Catalog()

	previous, err := s.state.GetCatalogSnapshot(ctx)
	if err != nil && !errors.Is(err, storage.ErrCatalogNotFound) {
		return &storage.PersistenceError{Store: "kv", Op: "read snapshot", Err: err}
	}

	if err := s.state.SaveCatalogSnapshot(ctx, catalog); err != nil {
		return &storage.PersistenceError{Store: "kv", Op: "write snapshot", Err: err}
	}

	var (
		ids     []string
		records []models.SourceRecord
	)
	for i, src := range sources {
		r := results[i]
		if r.err != nil || r.outcome.Skipped {
			continue
		}
		ids = append(ids, src.ID)
		records = append(records, r.records...)
	}

	if err := s.catalog.ReplaceCatalog(ctx, catalog, ids, records); err != nil {
		// Возвращаем прежний снимок, чтобы хранилища не расходились
		if rerr := s.state.SaveCatalogSnapshot(context.WithoutCancel(ctx), previous); rerr != nil {
			s.logger.Error("Failed to restore catalog snapshot", "error", rerr)
		}
		return &storage.PersistenceError{Store: "catalog", Op: "replace catalog", Err: err}
	}

	for i, src := range sources {
		r := results[i]
		if r.err != nil || r.outcome.Skipped || r.cursor == "" {
			continue
		}
		if err := s.state.SaveCursor(ctx, src.ID, src.Folder, r.cursor); err != nil {
			// Не критично: следующий проход выполнит полный листинг
			s.logger.Warn("Failed to save cursor", "source_id", src.ID, "error", err)
			outcomes[i].Warning = fmt.Sprintf("cursor not saved, next pass lists everything: %v", err)
		}
	}

	return nil
}

// fail переводит автомат в Failed, сохраняет статус и оповещает пользователя
func (s *service) fail(ctx context.Context, started time.Time, outcomes []models.SourceOutcome, cause error) error {
	s.phase.Store(models.PhaseFailed)
	s.logger.Error("Synchronization failed", "error", cause, "duration", s.now().Sub(started))

	// Статус пишем даже при отменённом контексте прохода
	bg := context.WithoutCancel(ctx)

	status, err := s.state.GetStatus(bg)
	if err != nil || status == nil {
		status = &models.SyncStatus{}
	}
	status.Phase = models.PhaseFailed
	status.LastError = cause.Error()
	if outcomes != nil {
		status.Sources = outcomes
	}
	if err := s.state.SaveStatus(bg, status); err != nil {
		s.logger.Warn("Failed to save sync status", "error", err)
	}

	if err := s.notifier.Publish(bg, notify.Event{
		Type:  notify.EventSyncFailed,
		At:    s.now(),
		Error: cause.Error(),
	}); err != nil {
		s.logger.Warn("Failed to publish sync failure", "error", err)
	}

	return cause
}

func snippetsOf(records []models.SourceRecord) []models.Snippet {
	var out []models.Snippet
	for _, r := range records {
		out = append(out, r.Snippets...)
	}
	return out
}
