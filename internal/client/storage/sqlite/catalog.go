package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
)

const catalogColumns = `source_id, priority, snippet, duplicates`

// ReplaceCatalog atomically replaces the catalog and the cached records
// of the listed sources
func (s *Storage) ReplaceCatalog(ctx context.Context, catalog *models.Catalog, sourceIDs []string, records []models.SourceRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_entries`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	insertEntry, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_entries (id, trigger, content_type, source_id, priority, fingerprint, snippet, duplicates)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare catalog insert: %w", err)
	}
	defer func() {
		_ = insertEntry.Close()
	}()

	if catalog != nil {
		for _, e := range catalog.Entries {
			snippet, err := json.Marshal(e.Snippet)
			if err != nil {
				return fmt.Errorf("failed to marshal snippet %s: %w", e.Snippet.ID, err)
			}
			dups := e.Duplicates
			if dups == nil {
				dups = []models.Variant{}
			}
			duplicates, err := json.Marshal(dups)
			if err != nil {
				return fmt.Errorf("failed to marshal duplicates of %s: %w", e.Snippet.ID, err)
			}

			if _, err := insertEntry.ExecContext(ctx,
				e.Snippet.ID,
				e.Snippet.Trigger,
				string(e.Snippet.ContentType),
				e.SourceID,
				e.Priority,
				e.Snippet.Fingerprint(),
				string(snippet),
				string(duplicates),
			); err != nil {
				return fmt.Errorf("failed to insert catalog entry %s: %w", e.Snippet.ID, err)
			}
		}
	}

	for _, sourceID := range sourceIDs {
		if _, err := tx.ExecContext(ctx, `DELETE FROM source_records WHERE source_id = ?`, sourceID); err != nil {
			return fmt.Errorf("failed to clear records of %s: %w", sourceID, err)
		}
	}

	for _, r := range records {
		snippets, err := json.Marshal(r.Snippets)
		if err != nil {
			return fmt.Errorf("failed to marshal records of %s: %w", r.FileID, err)
		}
		updatedAt := r.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = time.Now().UTC()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO source_records (source_id, file_id, path, revision, snippets, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, r.SourceID, r.FileID, r.Path, r.Revision, string(snippets), updatedAt); err != nil {
			return fmt.Errorf("failed to insert record %s/%s: %w", r.SourceID, r.FileID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}

// ListCatalog returns all entries ordered by trigger, then id
func (s *Storage) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.queryEntries(ctx, `SELECT `+catalogColumns+` FROM catalog_entries ORDER BY trigger, id`)
}

// FindByTrigger returns entries with the given trigger
func (s *Storage) FindByTrigger(ctx context.Context, trigger string) ([]models.CatalogEntry, error) {
	return s.queryEntries(ctx, `SELECT `+catalogColumns+` FROM catalog_entries WHERE trigger = ? ORDER BY priority, id`, trigger)
}

// GetCatalogEntry returns an entry by snippet id
func (s *Storage) GetCatalogEntry(ctx context.Context, id string) (*models.CatalogEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+catalogColumns+` FROM catalog_entries WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	return entry, nil
}

func (s *Storage) queryEntries(ctx context.Context, query string, args ...any) ([]models.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []models.CatalogEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.CatalogEntry, error) {
	var (
		entry      models.CatalogEntry
		snippet    string
		duplicates string
	)
	if err := row.Scan(&entry.SourceID, &entry.Priority, &snippet, &duplicates); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(snippet), &entry.Snippet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snippet: %w", err)
	}
	if err := json.Unmarshal([]byte(duplicates), &entry.Duplicates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duplicates: %w", err)
	}
	if len(entry.Duplicates) == 0 {
		entry.Duplicates = nil
	}
	return &entry, nil
}

// SourceRecords returns cached records of a source ordered by path
func (s *Storage) SourceRecords(ctx context.Context, sourceID string) ([]models.SourceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source_id, file_id, path, revision, snippets, updated_at
		FROM source_records
		WHERE source_id = ?
		ORDER BY path, file_id
	`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query source records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []models.SourceRecord
	for rows.Next() {
		var (
			r        models.SourceRecord
			snippets string
		)
		if err := rows.Scan(&r.SourceID, &r.FileID, &r.Path, &r.Revision, &snippets, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source record: %w", err)
		}
		if err := json.NewDecoder(strings.NewReader(snippets)).Decode(&r.Snippets); err != nil {
			return nil, fmt.Errorf("failed to unmarshal source record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}

// DeleteSourceRecords drops cached records of a source
func (s *Storage) DeleteSourceRecords(ctx context.Context, sourceID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM source_records WHERE source_id = ?`, sourceID); err != nil {
		return fmt.Errorf("failed to delete source records: %w", err)
	}
	return nil
}

// Ensure Storage implements storage.CatalogStorage
var _ storage.CatalogStorage = (*Storage)(nil)
