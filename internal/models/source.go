package models

import (
	"cmp"
	"slices"
)

const (
	// DefaultSourceID идентификатор встроенного локального источника
	DefaultSourceID = "local"
	// DefaultSourceKind тип провайдера встроенного источника
	DefaultSourceKind = "local"
	// DefaultPriority приоритет встроенного источника (наивысший)
	DefaultPriority = 0
)

// Source описывает одно хранилище сниппетов.
// Меньшее значение Priority означает более высокий приоритет.
type Source struct {
	ID       string `json:"id"`       // ID уникальный идентификатор источника
	Name     string `json:"name"`     // Name отображаемое имя
	Kind     string `json:"kind"`     // Kind тип провайдера (local, relay, gdrive, s3, git)
	Folder   string `json:"folder"`   // Folder непрозрачная ссылка на выбранную папку
	Priority int    `json:"priority"` // Priority место в порядке разрешения конфликтов
}

// IsDefault reports whether this is the fixed default source.
func (s Source) IsDefault() bool {
	return s.ID == DefaultSourceID
}

// DefaultSource returns the built-in local source.
func DefaultSource(folder string) Source {
	return Source{
		ID:       DefaultSourceID,
		Name:     "Local",
		Kind:     DefaultSourceKind,
		Folder:   folder,
		Priority: DefaultPriority,
	}
}

// CompareSources упорядочивает источники по приоритету, затем по ID
func CompareSources(a, b Source) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortSources sorts sources in place by (priority, id).
func SortSources(sources []Source) {
	slices.SortFunc(sources, CompareSources)
}

// ResolveMode режим ранжирования кандидатов одного trigger
type ResolveMode string

const (
	ResolvePriority   ResolveMode = "priority"
	ResolveUsageFirst ResolveMode = "usage_first"
)

// Settings пользовательские настройки, хранимые в быстром KV хранилище
type Settings struct {
	ResolveMode ResolveMode `json:"resolve_mode"`
	Sources     []Source    `json:"sources"`
}

// Source returns the source with the given id.
func (s *Settings) Source(id string) (Source, bool) {
	for _, src := range s.Sources {
		if src.ID == id {
			return src, true
		}
	}
	return Source{}, false
}
