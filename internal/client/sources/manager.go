// Package sources управляет списком источников в настройках.
//
// Встроенный локальный источник всегда существует и всегда имеет наивысший
// приоритет. Новые источники добавляются в конец порядка разрешения.
package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/validation"
)

var (
	// ErrDefaultSource встроенный источник нельзя удалить или переместить
	ErrDefaultSource = errors.New("default source cannot be changed this way")

	// ErrSourceExists источник с таким ID уже есть
	ErrSourceExists = errors.New("source already exists")

	// ErrSourceNotFound источника нет в настройках
	ErrSourceNotFound = errors.New("source not found")
)

// AdapterFactory создаёт адаптер для источника
type AdapterFactory interface {
	Create(source models.Source) (adapter.Adapter, error)
	Supports(kind string) bool
}

// Manager изменяет список источников
type Manager struct {
	settings      storage.SettingsStorage
	cursors       storage.CursorStorage
	catalog       storage.CatalogStorage
	credentials   adapter.CredentialStore
	adapters      AdapterFactory
	logger        *slog.Logger
	defaultFolder string
	defaultMode   models.ResolveMode
}

// Config зависимости Manager
type Config struct {
	Settings      storage.SettingsStorage
	Cursors       storage.CursorStorage
	Catalog       storage.CatalogStorage
	Credentials   adapter.CredentialStore
	Adapters      AdapterFactory
	Logger        *slog.Logger
	DefaultFolder string             // DefaultFolder папка встроенного источника
	DefaultMode   models.ResolveMode // DefaultMode режим разрешения для новых настроек
}

// NewManager creates a source manager.
func NewManager(cfg Config) *Manager {
	return &Manager{
		settings:      cfg.Settings,
		cursors:       cfg.Cursors,
		catalog:       cfg.Catalog,
		credentials:   cfg.Credentials,
		adapters:      cfg.Adapters,
		logger:        cfg.Logger,
		defaultFolder: cfg.DefaultFolder,
		defaultMode:   cfg.DefaultMode,
	}
}

// Init returns stored settings, creating them with the default source
// on first use.
func (m *Manager) Init(ctx context.Context) (*models.Settings, error) {
	settings, err := m.settings.LoadSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, storage.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := os.MkdirAll(m.defaultFolder, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create default folder: %w", err)
	}

	settings = &models.Settings{
		ResolveMode: m.defaultMode,
		Sources:     []models.Source{models.DefaultSource(m.defaultFolder)},
	}
	if err := m.settings.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	m.logger.Info("Settings initialized", "default_folder", m.defaultFolder)
	return settings, nil
}

// List returns sources in resolution order.
func (m *Manager) List(ctx context.Context) ([]models.Source, error) {
	settings, err := m.Init(ctx)
	if err != nil {
		return nil, err
	}
	sources := slices.Clone(settings.Sources)
	models.SortSources(sources)
	return sources, nil
}

// Add registers a new source after all existing ones.
func (m *Manager) Add(ctx context.Context, src models.Source) (*models.Source, error) {
	src.ID = strings.TrimSpace(src.ID)
	src.Kind = strings.ToLower(strings.TrimSpace(src.Kind))
	if err := validation.ValidateSourceID(src.ID); err != nil {
		return nil, err
	}
	if !m.adapters.Supports(src.Kind) {
		return nil, &adapter.UnsupportedProviderError{Kind: src.Kind}
	}
	if src.Name == "" {
		src.Name = src.ID
	}

	settings, err := m.Init(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := settings.Source(src.ID); exists {
		return nil, fmt.Errorf("%w: %s", ErrSourceExists, src.ID)
	}

	src.Priority = models.DefaultPriority + 1
	for _, s := range settings.Sources {
		if s.Priority >= src.Priority {
			src.Priority = s.Priority + 1
		}
	}
	settings.Sources = append(settings.Sources, src)

	if err := m.save(ctx, settings); err != nil {
		return nil, err
	}

	m.logger.Info("Source added", "source_id", src.ID, "kind", src.Kind, "priority", src.Priority)
	return &src, nil
}

// Remove deletes a source together with its cursors, cached records and credentials.
func (m *Manager) Remove(ctx context.Context, id string) error {
	if id == models.DefaultSourceID {
		return ErrDefaultSource
	}

	settings, err := m.Init(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(settings.Sources, func(s models.Source) bool { return s.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, id)
	}
	settings.Sources = slices.Delete(settings.Sources, idx, idx+1)

	if err := m.save(ctx, settings); err != nil {
		return err
	}

	// Источник уже удалён из настроек, дальше только уборка
	if err := m.cursors.DeleteCursors(ctx, id); err != nil {
		m.logger.Warn("Failed to delete cursors", "source_id", id, "error", err)
	}
	if err := m.catalog.DeleteSourceRecords(ctx, id); err != nil {
		m.logger.Warn("Failed to delete cached records", "source_id", id, "error", err)
	}
	if err := m.credentials.DeleteCredential(ctx, id); err != nil && !errors.Is(err, adapter.ErrCredentialNotFound) {
		m.logger.Warn("Failed to delete credentials", "source_id", id, "error", err)
	}

	m.logger.Info("Source removed", "source_id", id)
	return nil
}

// Move places a source at position (1-based) among the non-default
// sources and renumbers priorities.
func (m *Manager) Move(ctx context.Context, id string, position int) error {
	if id == models.DefaultSourceID {
		return ErrDefaultSource
	}

	settings, err := m.Init(ctx)
	if err != nil {
		return err
	}

	var (
		def    []models.Source
		others []models.Source
		moved  *models.Source
	)
	ordered := slices.Clone(settings.Sources)
	models.SortSources(ordered)
	for _, s := range ordered {
		switch {
		case s.IsDefault():
			def = append(def, s)
		case s.ID == id:
			moved = &s
		default:
			others = append(others, s)
		}
	}
	if moved == nil {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, id)
	}

	position = min(max(position, 1), len(others)+1)
	others = slices.Insert(others, position-1, *moved)
	for i := range others {
		others[i].Priority = models.DefaultPriority + 1 + i
	}
	settings.Sources = append(def, others...)

	if err := m.save(ctx, settings); err != nil {
		return err
	}

	m.logger.Info("Source moved", "source_id", id, "position", position)
	return nil
}

// SelectFolder resolves ref with the provider and stores the folder.
// Cursors of the previous folder are dropped.
func (m *Manager) SelectFolder(ctx context.Context, id, ref string) (*adapter.FolderInfo, error) {
	settings, err := m.Init(ctx)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(settings.Sources, func(s models.Source) bool { return s.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, id)
	}
	src := settings.Sources[idx]

	a, err := m.adapters.Create(src)
	if err != nil {
		return nil, err
	}
	signedIn, err := a.IsSignedIn(ctx)
	if err != nil {
		return nil, err
	}
	if !signedIn {
		return nil, &adapter.AuthError{SourceID: src.ID, Kind: src.Kind, Err: errors.New("sign in first")}
	}

	folder, err := a.SelectFolder(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to select folder: %w", err)
	}

	previous := src.Folder
	settings.Sources[idx].Folder = folder.ID
	if err := m.save(ctx, settings); err != nil {
		return nil, err
	}

	if previous != folder.ID {
		if err := m.cursors.DeleteCursors(ctx, id); err != nil {
			m.logger.Warn("Failed to delete cursors", "source_id", id, "error", err)
		}
	}

	m.logger.Info("Folder selected", "source_id", id, "folder", folder.ID)
	return folder, nil
}

// SignIn runs the provider's interactive sign-in and returns the principal.
func (m *Manager) SignIn(ctx context.Context, id string) (*adapter.UserInfo, error) {
	settings, err := m.Init(ctx)
	if err != nil {
		return nil, err
	}
	src, ok := settings.Source(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, id)
	}

	a, err := m.adapters.Create(src)
	if err != nil {
		return nil, err
	}
	if err := a.SignIn(ctx); err != nil {
		return nil, err
	}
	return a.UserInfo(ctx)
}

// SetResolveMode stores the ranking mode used for shared triggers.
func (m *Manager) SetResolveMode(ctx context.Context, mode models.ResolveMode) error {
	switch mode {
	case models.ResolvePriority, models.ResolveUsageFirst:
	default:
		return fmt.Errorf("unknown resolve mode %q", mode)
	}

	settings, err := m.Init(ctx)
	if err != nil {
		return err
	}
	settings.ResolveMode = mode
	return m.save(ctx, settings)
}

func (m *Manager) save(ctx context.Context, settings *models.Settings) error {
	if err := m.settings.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
