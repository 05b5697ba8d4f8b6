package models

import "time"

// Variant версия сниппета из конкретного источника
type Variant struct {
	Snippet  Snippet `json:"snippet"`
	SourceID string  `json:"source_id"`
	Priority int     `json:"priority"`
}

// CatalogEntry единственная запись объединённого каталога для одного ID.
// Snippet взят из источника-победителя целиком, остальные версии
// сохраняются в Duplicates без слияния полей.
type CatalogEntry struct {
	Snippet    Snippet   `json:"snippet"`
	SourceID   string    `json:"source_id"`
	Duplicates []Variant `json:"duplicates,omitempty"`
	Priority   int       `json:"priority"`
}

// Catalog объединённый офлайн-каталог.
// Не содержит времени сборки: одинаковый вход даёт побайтово одинаковый снимок.
type Catalog struct {
	Entries []CatalogEntry `json:"entries"`
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id string) (CatalogEntry, bool) {
	if c == nil {
		return CatalogEntry{}, false
	}
	for _, e := range c.Entries {
		if e.Snippet.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// ByTrigger returns all entries sharing the trigger, in catalog order.
func (c *Catalog) ByTrigger(trigger string) []CatalogEntry {
	if c == nil {
		return nil
	}
	var out []CatalogEntry
	for _, e := range c.Entries {
		if e.Snippet.Trigger == trigger {
			out = append(out, e)
		}
	}
	return out
}

// SourceRecord кэшированное содержимое одного файла источника.
// Позволяет не скачивать файл повторно, пока не изменилась ревизия.
type SourceRecord struct {
	UpdatedAt time.Time `json:"updated_at"`
	SourceID  string    `json:"source_id"`
	FileID    string    `json:"file_id"`
	Path      string    `json:"path"`
	Revision  string    `json:"revision"`
	Snippets  []Snippet `json:"snippets"`
}
