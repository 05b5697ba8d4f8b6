package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sort"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/format"
	"github.com/iudanet/snipkeeper/internal/models"
)

// fetchSource загружает один источник.
// При ошибке возвращает ранее закэшированные записи источника вместе с ошибкой:
// сбой одного источника не удаляет его сниппеты из каталога.
func (s *service) fetchSource(ctx context.Context, src models.Source) sourceResult {
	logger := s.logger.With("source_id", src.ID, "kind", src.Kind)
	outcome := models.SourceOutcome{SourceID: src.ID}

	previous, err := s.catalog.SourceRecords(ctx, src.ID)
	if err != nil {
		return failed(outcome, nil, fmt.Errorf("failed to load cached records: %w", err))
	}

	if src.Folder == "" {
		logger.Debug("Source has no folder selected, skipping")
		outcome.Skipped = true
		return sourceResult{outcome: outcome}
	}

	a, err := s.adapters.Create(src)
	if err != nil {
		return failed(outcome, previous, err)
	}

	signedIn, err := a.IsSignedIn(ctx)
	if err != nil {
		return failed(outcome, previous, &adapter.AuthError{SourceID: src.ID, Kind: src.Kind, Err: err})
	}
	if !signedIn {
		return failed(outcome, previous, &adapter.AuthError{SourceID: src.ID, Kind: src.Kind, Err: errors.New("not signed in")})
	}

	if _, err := a.SelectFolder(ctx, src.Folder); err != nil {
		return failed(outcome, previous, fmt.Errorf("failed to select folder %q: %w", src.Folder, err))
	}

	changes, err := s.listChanges(ctx, a, src, logger)
	if err != nil {
		return failed(outcome, previous, err)
	}
	outcome.Full = changes.Full

	records, stats, err := s.applyChanges(ctx, a, src, previous, changes, logger)
	if err != nil {
		return failed(outcome, previous, err)
	}

	outcome.Files = len(records)
	outcome.Downloaded = stats.downloaded
	outcome.ParseErrors = stats.parseErrors
	for _, r := range records {
		outcome.Snippets += len(r.Snippets)
	}

	logger.Debug("Source fetched",
		"full", changes.Full,
		"files", outcome.Files,
		"downloaded", outcome.Downloaded,
		"parse_errors", outcome.ParseErrors)

	return sourceResult{
		cursor:  changes.Cursor,
		records: records,
		outcome: outcome,
	}
}

// listChanges возвращает дельту по сохранённому курсору или полный листинг.
func (s *service) listChanges(ctx context.Context, a adapter.Adapter, src models.Source, logger *slog.Logger) (*adapter.ChangeSet, error) {
	cursor, err := s.state.GetCursor(ctx, src.ID, src.Folder)
	if err != nil {
		logger.Warn("Failed to read cursor, falling back to full listing", "error", err)
		cursor = ""
	}

	if cursor != "" {
		changes, err := a.ListChanges(ctx, cursor)
		switch {
		case errors.Is(err, adapter.ErrResyncRequired):
			logger.Info("Cursor expired, performing full listing")
		case err != nil:
			return nil, fmt.Errorf("failed to list changes: %w", err)
		case changes.ResyncRequired:
			logger.Info("Cursor expired, performing full listing")
		default:
			if changes.Cursor == "" {
				changes.Cursor = cursor
			}
			return changes, nil
		}
	}

	return adapter.FullListing(ctx, a)
}

type applyStats struct {
	downloaded  int
	parseErrors int
}

// applyChanges накладывает изменения на кэш источника.
// Файлы с неизменной ревизией не скачиваются повторно.
func (s *service) applyChanges(
	ctx context.Context,
	a adapter.Adapter,
	src models.Source,
	previous []models.SourceRecord,
	changes *adapter.ChangeSet,
	logger *slog.Logger,
) ([]models.SourceRecord, applyStats, error) {
	var stats applyStats

	cached := make(map[string]models.SourceRecord, len(previous))
	for _, r := range previous {
		cached[r.FileID] = r
	}

	next := make(map[string]models.SourceRecord, len(previous))
	if !changes.Full {
		// Инкрементальная дельта: начинаем с кэша
		for id, r := range cached {
			next[id] = r
		}
		for _, id := range changes.Removed {
			delete(next, id)
		}
	}

	for _, f := range changes.Files {
		name := f.Path
		if name == "" {
			name = f.Name
		}
		if !s.decoder.Supported(name) {
			delete(next, f.ID)
			continue
		}

		if prev, ok := cached[f.ID]; ok && f.Revision != "" && prev.Revision == f.Revision {
			prev.Path = name
			next[f.ID] = prev
			continue
		}

		data, err := a.Download(ctx, f.ID)
		if err != nil {
			if errors.Is(err, adapter.ErrFileNotFound) {
				// Файл удалён между листингом и скачиванием
				delete(next, f.ID)
				continue
			}
			return nil, stats, fmt.Errorf("failed to download %s: %w", name, err)
		}
		stats.downloaded++

		snippets, err := s.decoder.Parse(path.Base(name), data)
		if err != nil {
			stats.parseErrors++
			logger.Warn("Skipping unparseable file", "path", name, "error", err)
			delete(next, f.ID)
			continue
		}

		next[f.ID] = models.SourceRecord{
			UpdatedAt: s.now(),
			SourceID:  src.ID,
			FileID:    f.ID,
			Path:      name,
			Revision:  f.Revision,
			Snippets:  snippets,
		}
	}

	records := make([]models.SourceRecord, 0, len(next))
	for _, r := range next {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Path != records[j].Path {
			return records[i].Path < records[j].Path
		}
		return records[i].FileID < records[j].FileID
	})

	return records, stats, nil
}

func failed(outcome models.SourceOutcome, previous []models.SourceRecord, err error) sourceResult {
	outcome.Error = err.Error()
	return sourceResult{err: err, records: previous, outcome: outcome}
}

var _ Decoder = (*format.Registry)(nil)
