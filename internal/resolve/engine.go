// Package resolve объединяет сниппеты нескольких источников в один каталог.
//
// Движок чистый: не выполняет ввод-вывод и не зависит от порядка обхода map.
// Для одного ID побеждает запись источника с наименьшим приоритетом,
// остальные версии сохраняются как дубликаты.
package resolve

import (
	"cmp"
	"slices"
	"time"

	"github.com/iudanet/snipkeeper/internal/models"
)

// Mode режим ранжирования кандидатов внутри одного trigger
type Mode int

const (
	// ModePriority ранжирует по приоритету источника
	ModePriority Mode = iota
	// ModeUsageFirst ранжирует по частоте использования, при равенстве решает приоритет
	ModeUsageFirst
)

// Options управляют фильтрацией и ранжированием
type Options struct {
	Sources      map[string]bool             // Sources если не пусто: учитывать только эти источники
	ContentTypes map[models.ContentType]bool // ContentTypes если не пусто: только эти типы
	Usage        map[string]int              // Usage счётчики использования по ID сниппета
	Mode         Mode
	// Now источник времени для Stats.Duration, по умолчанию time.Now
	Now func() time.Time
}

// TriggerGroup все записи каталога с одинаковым trigger в порядке ранга
type TriggerGroup struct {
	Trigger string
	Entries []models.CatalogEntry
}

// Stats статистика одного разрешения
type Stats struct {
	TotalInput        int
	UniqueOutput      int
	DuplicatesRemoved int
	SourcesProcessed  int
	Duration          time.Duration
}

// Result результат разрешения
type Result struct {
	Entries  []models.CatalogEntry
	Triggers []TriggerGroup
	Stats    Stats
}

// Catalog returns the entries as a persistable catalog.
func (r *Result) Catalog() *models.Catalog {
	return &models.Catalog{Entries: r.Entries}
}

// Input содержимое одного источника
type Input struct {
	Source   models.Source
	Snippets []models.Snippet
}

// Accumulator собирает входы по мере завершения загрузки источников.
// Не потокобезопасен: заполняется одним владельцем после того,
// как все загрузки завершились.
type Accumulator struct {
	inputs []Input
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add records a source's snippets. Calling Add twice for one source appends.
func (a *Accumulator) Add(source models.Source, snippets []models.Snippet) {
	a.inputs = append(a.inputs, Input{Source: source, Snippets: snippets})
}

// Len returns the number of added inputs.
func (a *Accumulator) Len() int {
	return len(a.inputs)
}

// Resolve builds the merged catalog from everything added so far.
func (a *Accumulator) Resolve(opts Options) *Result {
	return Resolve(a.inputs, opts)
}

// Resolve merges inputs into a deterministic catalog.
func Resolve(inputs []Input, opts Options) *Result {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	started := now()

	groups := make(map[string][]models.Variant)
	sources := make(map[string]struct{})
	total := 0

	for _, in := range inputs {
		if len(opts.Sources) > 0 && !opts.Sources[in.Source.ID] {
			continue
		}
		sources[in.Source.ID] = struct{}{}

		for _, sn := range in.Snippets {
			if sn.ID == "" {
				continue
			}
			if len(opts.ContentTypes) > 0 && !opts.ContentTypes[sn.ContentType] {
				continue
			}
			total++
			groups[sn.ID] = append(groups[sn.ID], models.Variant{
				Snippet:  sn.Clone(),
				SourceID: in.Source.ID,
				Priority: in.Source.Priority,
			})
		}
	}

	entries := make([]models.CatalogEntry, 0, len(groups))
	for _, variants := range groups {
		slices.SortFunc(variants, compareVariants)
		entry := models.CatalogEntry{
			Snippet:  variants[0].Snippet,
			SourceID: variants[0].SourceID,
			Priority: variants[0].Priority,
		}
		if len(variants) > 1 {
			entry.Duplicates = slices.Clone(variants[1:])
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, compareEntries)

	res := &Result{
		Entries:  entries,
		Triggers: groupByTrigger(entries, opts),
	}
	res.Stats = Stats{
		TotalInput:        total,
		UniqueOutput:      len(entries),
		DuplicatesRemoved: total - len(entries),
		SourcesProcessed:  len(sources),
		Duration:          now().Sub(started),
	}
	return res
}

// compareVariants: приоритет, при равенстве trigger по алфавиту (ID в группе общий),
// затем источник, свежесть и отпечаток для дублей внутри одного источника
func compareVariants(a, b models.Variant) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Snippet.Trigger, b.Snippet.Trigger); c != 0 {
		return c
	}
	if c := cmp.Compare(a.SourceID, b.SourceID); c != 0 {
		return c
	}
	if c := a.Snippet.UpdatedAt.Compare(b.Snippet.UpdatedAt); c != 0 {
		// более свежая версия внутри источника впереди
		return -c
	}
	return cmp.Compare(a.Snippet.Fingerprint(), b.Snippet.Fingerprint())
}

func compareEntries(a, b models.CatalogEntry) int {
	if c := cmp.Compare(a.Snippet.Trigger, b.Snippet.Trigger); c != 0 {
		return c
	}
	return cmp.Compare(a.Snippet.ID, b.Snippet.ID)
}

func groupByTrigger(entries []models.CatalogEntry, opts Options) []TriggerGroup {
	byTrigger := make(map[string][]models.CatalogEntry)
	var order []string
	for _, e := range entries {
		if _, ok := byTrigger[e.Snippet.Trigger]; !ok {
			order = append(order, e.Snippet.Trigger)
		}
		byTrigger[e.Snippet.Trigger] = append(byTrigger[e.Snippet.Trigger], e)
	}
	// entries уже отсортированы по trigger, order тоже
	groups := make([]TriggerGroup, 0, len(order))
	for _, trig := range order {
		candidates := byTrigger[trig]
		RankCandidates(candidates, opts.Mode, opts.Usage)
		groups = append(groups, TriggerGroup{Trigger: trig, Entries: candidates})
	}
	return groups
}

// RankCandidates orders entries sharing a trigger. In priority mode the
// source priority decides; in usage-first mode usage decides and priority
// breaks ties. The snippet id is the final tie-break.
func RankCandidates(candidates []models.CatalogEntry, mode Mode, usage map[string]int) {
	slices.SortFunc(candidates, func(a, b models.CatalogEntry) int {
		if mode == ModeUsageFirst {
			if c := cmp.Compare(usage[b.Snippet.ID], usage[a.Snippet.ID]); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Snippet.ID, b.Snippet.ID)
	})
}

// ModeFromSetting maps the persisted setting to an engine mode.
func ModeFromSetting(m models.ResolveMode) Mode {
	if m == models.ResolveUsageFirst {
		return ModeUsageFirst
	}
	return ModePriority
}
