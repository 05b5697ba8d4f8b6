// Package data создаёт, изменяет и удаляет сниппеты в выбранных источниках.
//
// Изменение записывается только в те источники, которые пользователь указал
// явно. Локальный каталог обновляется следующим проходом синхронизации.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/expand"
	"github.com/iudanet/snipkeeper/internal/client/format"
	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
)

//go:generate moq -out service_mock.go . Service

var (
	// ErrNoTargets не выбран ни один источник для записи
	ErrNoTargets = errors.New("no target sources")

	// ErrUnknownSource источник отсутствует в настройках
	ErrUnknownSource = errors.New("unknown source")

	// ErrSharedFile сниппет хранится в файле вместе с другими и не может быть удалён отдельно
	ErrSharedFile = errors.New("snippet is stored in a multi-snippet file")
)

// ValidationError сниппет не прошёл проверку перед записью
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// TargetResult итог записи в один источник
type TargetResult struct {
	Err      error
	File     *adapter.FileInfo
	SourceID string
}

// Results итоги по всем выбранным источникам
type Results []TargetResult

// Err joins the per-target failures, nil if every target succeeded.
func (r Results) Err() error {
	var errs []error
	for _, t := range r {
		if t.Err != nil {
			errs = append(errs, fmt.Errorf("source %s: %w", t.SourceID, t.Err))
		}
	}
	return errors.Join(errs...)
}

// Service определяет интерфейс авторинга сниппетов
type Service interface {
	// Create assigns a new id and writes the snippet to every target source.
	Create(ctx context.Context, snippet models.Snippet, targets []string) (*models.Snippet, Results, error)

	// Update rewrites an existing snippet. Without targets the snippet is
	// written back to the source that currently wins it.
	Update(ctx context.Context, snippet models.Snippet, targets []string) (*models.Snippet, Results, error)

	// Delete removes the snippet file from the target sources.
	Delete(ctx context.Context, id string, targets []string) (Results, error)

	// Get returns the catalog entry of a snippet.
	Get(ctx context.Context, id string) (*models.CatalogEntry, error)

	// List returns the whole merged catalog.
	List(ctx context.Context) ([]models.CatalogEntry, error)
}

// AdapterFactory создаёт адаптер для источника
type AdapterFactory interface {
	Create(source models.Source) (adapter.Adapter, error)
}

// Option настраивает service
type Option func(*service)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// WithActor задаёт автора изменений
func WithActor(actor string) Option {
	return func(s *service) {
		s.actor = actor
	}
}

type service struct {
	adapters AdapterFactory
	settings storage.SettingsStorage
	catalog  storage.CatalogStorage
	logger   *slog.Logger
	now      func() time.Time
	newID    func() (string, error)
	actor    string
}

// NewService creates a new snippet authoring service
func NewService(
	adapters AdapterFactory,
	settings storage.SettingsStorage,
	catalog storage.CatalogStorage,
	logger *slog.Logger,
	opts ...Option,
) Service {
	s := &service{
		adapters: adapters,
		settings: settings,
		catalog:  catalog,
		logger:   logger,
		now:      time.Now,
		newID:    newUUIDv7,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// Create adds a new snippet
func (s *service) Create(ctx context.Context, snippet models.Snippet, targets []string) (*models.Snippet, Results, error) {
	if len(targets) == 0 {
		targets = []string{models.DefaultSourceID}
	}

	id, err := s.newID()
	if err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	snippet = snippet.Clone()
	snippet.ID = id
	snippet.CreatedAt = now
	snippet.UpdatedAt = now
	snippet.CreatedBy = s.actor
	snippet.UpdatedBy = s.actor

	if err := prepare(&snippet); err != nil {
		return nil, nil, err
	}

	results, err := s.write(ctx, snippet, targets)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Snippet created",
		"snippet_id", snippet.ID,
		"trigger", snippet.Trigger,
		"targets", targets,
		"failed", countFailed(results))

	return &snippet, results, results.Err()
}

// Update rewrites an existing snippet
func (s *service) Update(ctx context.Context, snippet models.Snippet, targets []string) (*models.Snippet, Results, error) {
	current, err := s.catalog.GetCatalogEntry(ctx, snippet.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get snippet %s: %w", snippet.ID, err)
	}
	if len(targets) == 0 {
		targets = []string{current.SourceID}
	}

	snippet = snippet.Clone()
	snippet.CreatedAt = current.Snippet.CreatedAt
	snippet.CreatedBy = current.Snippet.CreatedBy
	snippet.UpdatedAt = s.now().UTC()
	snippet.UpdatedBy = s.actor

	if err := prepare(&snippet); err != nil {
		return nil, nil, err
	}

	if snippet.Fingerprint() == current.Snippet.Fingerprint() && slices.Equal(targets, []string{current.SourceID}) {
		s.logger.Info("Snippet unchanged, skipping write", "snippet_id", snippet.ID)
		return &current.Snippet, nil, nil
	}

	results, err := s.write(ctx, snippet, targets)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Snippet updated",
		"snippet_id", snippet.ID,
		"targets", targets,
		"failed", countFailed(results))

	return &snippet, results, results.Err()
}

// Delete removes a snippet from the target sources
func (s *service) Delete(ctx context.Context, id string, targets []string) (Results, error) {
	if len(targets) == 0 {
		current, err := s.catalog.GetCatalogEntry(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get snippet %s: %w", id, err)
		}
		targets = []string{current.SourceID}
		for _, d := range current.Duplicates {
			targets = append(targets, d.SourceID)
		}
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	results := make(Results, 0, len(targets))
	for _, sourceID := range dedupe(targets) {
		res := TargetResult{SourceID: sourceID}
		res.Err = s.removeFrom(ctx, settings, sourceID, id)
		results = append(results, res)
	}

	s.logger.Info("Snippet deleted",
		"snippet_id", id,
		"targets", targets,
		"failed", countFailed(results))

	return results, results.Err()
}

// Get returns one catalog entry
func (s *service) Get(ctx context.Context, id string) (*models.CatalogEntry, error) {
	entry, err := s.catalog.GetCatalogEntry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get snippet %s: %w", id, err)
	}
	return entry, nil
}

// List returns the merged catalog
func (s *service) List(ctx context.Context) ([]models.CatalogEntry, error) {
	entries, err := s.catalog.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return entries, nil
}

// write загружает сниппет в каждый источник по очереди, ошибки собираются по источникам
func (s *service) write(ctx context.Context, snippet models.Snippet, targets []string) (Results, error) {
	targets = dedupe(targets)
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	name, body, err := format.Encode(snippet)
	if err != nil {
		return nil, err
	}

	results := make(Results, 0, len(targets))
	for _, sourceID := range targets {
		res := TargetResult{SourceID: sourceID}
		res.File, res.Err = s.uploadTo(ctx, settings, sourceID, snippet.ID, name, body)
		if res.Err != nil {
			s.logger.Warn("Failed to write snippet to source",
				"snippet_id", snippet.ID,
				"source_id", sourceID,
				"error", res.Err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *service) uploadTo(ctx context.Context, settings *models.Settings, sourceID, snippetID, name string, body []byte) (*adapter.FileInfo, error) {
	a, err := s.open(ctx, settings, sourceID)
	if err != nil {
		return nil, err
	}

	up, ok := adapter.CanUpload(a)
	if !ok {
		return nil, adapter.ErrReadOnly
	}

	filePath := name
	if existing, ok := s.existingFile(ctx, sourceID, snippetID); ok && path.Ext(existing.Path) == ".json" && len(existing.Snippets) == 1 {
		// Перезаписываем файл, из которого сниппет пришёл
		filePath = existing.Path
	}

	return up.Upload(ctx, filePath, body)
}

func (s *service) removeFrom(ctx context.Context, settings *models.Settings, sourceID, snippetID string) error {
	a, err := s.open(ctx, settings, sourceID)
	if err != nil {
		return err
	}

	rm, ok := a.(adapter.Remover)
	if !ok || !a.Capabilities().Upload {
		return adapter.ErrReadOnly
	}

	filePath := format.FileName(snippetID)
	if existing, ok := s.existingFile(ctx, sourceID, snippetID); ok {
		if len(existing.Snippets) > 1 {
			return fmt.Errorf("%w: %s", ErrSharedFile, existing.Path)
		}
		filePath = existing.Path
	}

	return rm.Remove(ctx, filePath)
}

// open создаёт адаптер источника и выбирает его папку
func (s *service) open(ctx context.Context, settings *models.Settings, sourceID string) (adapter.Adapter, error) {
	src, ok := settings.Source(sourceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, sourceID)
	}
	if src.Folder == "" {
		return nil, adapter.ErrNotConfigured
	}

	a, err := s.adapters.Create(src)
	if err != nil {
		return nil, err
	}

	signedIn, err := a.IsSignedIn(ctx)
	if err != nil {
		return nil, err
	}
	if !signedIn {
		return nil, &adapter.AuthError{SourceID: src.ID, Kind: src.Kind, Err: errors.New("not signed in")}
	}

	if _, err := a.SelectFolder(ctx, src.Folder); err != nil {
		return nil, fmt.Errorf("failed to select folder: %w", err)
	}
	return a, nil
}

// existingFile ищет в кэше файл источника, содержащий сниппет
func (s *service) existingFile(ctx context.Context, sourceID, snippetID string) (models.SourceRecord, bool) {
	records, err := s.catalog.SourceRecords(ctx, sourceID)
	if err != nil {
		s.logger.Warn("Failed to read cached source records", "source_id", sourceID, "error", err)
		return models.SourceRecord{}, false
	}
	for _, r := range records {
		for _, sn := range r.Snippets {
			if sn.ID == snippetID {
				return r, true
			}
		}
	}
	return models.SourceRecord{}, false
}

func (s *service) loadSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settings.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// prepare нормализует и проверяет сниппет перед записью
func prepare(s *models.Snippet) error {
	s.Normalize()

	if s.Trigger == "" {
		return &ValidationError{Field: "trigger", Message: "must not be empty"}
	}
	if strings.ContainsAny(s.Trigger, " \t\n") {
		return &ValidationError{Field: "trigger", Message: "must not contain whitespace"}
	}
	if !s.ContentType.Valid() {
		return &ValidationError{Field: "content_type", Message: fmt.Sprintf("unknown type %q", s.ContentType)}
	}

	seen := make(map[string]bool, len(s.Variables))
	for _, v := range s.Variables {
		if v.Name == "" || strings.HasPrefix(v.Name, "snippet:") {
			return &ValidationError{Field: "variables", Message: fmt.Sprintf("bad name %q", v.Name)}
		}
		if seen[v.Name] {
			return &ValidationError{Field: "variables", Message: fmt.Sprintf("duplicate %q", v.Name)}
		}
		seen[v.Name] = true
	}

	s.Dependencies = expand.References(s.Content)
	if slices.Contains(s.Dependencies, s.ID) {
		return &ValidationError{Field: "content", Message: "snippet references itself"}
	}

	s.Tags = dedupe(s.Tags)
	return nil
}

func dedupe(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func countFailed(results Results) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
