package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// ListingCursor returns a digest of the listing.
// Используется провайдерами без ленты изменений: курсор меняется,
// только если изменился путь или ревизия хотя бы одного файла.
func ListingCursor(files []FileInfo) string {
	sorted := make([]FileInfo, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	h := sha256.New()
	for _, f := range sorted {
		h.Write([]byte(f.ID))
		h.Write([]byte{0})
		h.Write([]byte(f.Revision))
		h.Write([]byte{'\n'})
	}
	return "snap:" + hex.EncodeToString(h.Sum(nil))
}

// SnapshotChanges строит ChangeSet из полного листинга.
// Если листинг не изменился с cursor, возвращается пустая дельта.
func SnapshotChanges(files []FileInfo, cursor string) *ChangeSet {
	next := ListingCursor(files)
	if next == cursor {
		return &ChangeSet{Cursor: cursor}
	}
	return &ChangeSet{Cursor: next, Files: files, Full: true}
}

// FullListing строит полный ChangeSet для пустого или устаревшего курсора.
// Курсор запрашивается до листинга: изменения во время листинга
// попадут в следующий проход, а не потеряются.
func FullListing(ctx context.Context, a Adapter) (*ChangeSet, error) {
	cursor, err := a.DeltaCursor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get delta cursor: %w", err)
	}
	files, err := a.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return &ChangeSet{Cursor: cursor, Files: files, Full: true}, nil
}
