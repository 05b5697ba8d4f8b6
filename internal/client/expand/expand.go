// Package expand превращает trigger в итоговый текст.
//
// Выбор сниппета идёт по объединённому каталогу, затем подставляются
// переменные {{name}} и вложенные сниппеты {{snippet:<id>}}.
package expand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/iudanet/snipkeeper/internal/client/storage"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/resolve"
)

// MaxDepth ограничивает вложенность {{snippet:<id>}}
const MaxDepth = 8

// referencePrefix префикс ссылки на другой сниппет
const referencePrefix = "snippet:"

var (
	// ErrNoMatch в каталоге нет сниппетов с таким trigger
	ErrNoMatch = errors.New("no snippet for trigger")

	// ErrDepthExceeded превышена вложенность ссылок
	ErrDepthExceeded = errors.New("snippet references nested too deep")
)

// CycleError сниппеты ссылаются друг на друга по кругу
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "snippet reference cycle: " + strings.Join(e.Path, " -> ")
}

// MissingReferenceError ссылка на сниппет, которого нет в каталоге
type MissingReferenceError struct {
	ID string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("referenced snippet %q not found", e.ID)
}

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.:\-]+)\s*\}\}`)

// References returns the ids referenced via {{snippet:<id>}}, in order of
// first appearance.
func References(content string) []string {
	var (
		out  []string
		seen = make(map[string]bool)
	)
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		id, ok := strings.CutPrefix(m[1], referencePrefix)
		if !ok || id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Lookup возвращает сниппет по ID
type Lookup func(id string) (models.Snippet, error)

// Render substitutes variables and inlines referenced snippets.
// Args take precedence over declared defaults; unknown placeholders are
// left as is so that LaTeX braces survive.
func Render(s models.Snippet, args map[string]string, lookup Lookup) (string, error) {
	return render(s, args, lookup, []string{s.ID})
}

func render(s models.Snippet, args map[string]string, lookup Lookup, stack []string) (string, error) {
	defaults := make(map[string]string, len(s.Variables))
	for _, v := range s.Variables {
		defaults[v.Name] = v.Default
	}

	var firstErr error
	out := placeholderRe.ReplaceAllStringFunc(s.Content, func(match string) string {
		if firstErr != nil {
			return match
		}
		name := placeholderRe.FindStringSubmatch(match)[1]

		id, isRef := strings.CutPrefix(name, referencePrefix)
		if !isRef {
			if v, ok := args[name]; ok {
				return v
			}
			if v, ok := defaults[name]; ok {
				return v
			}
			return match
		}

		text, err := inline(id, args, lookup, stack)
		if err != nil {
			firstErr = err
			return match
		}
		return text
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func inline(id string, args map[string]string, lookup Lookup, stack []string) (string, error) {
	for _, seen := range stack {
		if seen == id {
			path := append(append([]string(nil), stack...), id)
			return "", &CycleError{Path: path}
		}
	}
	if len(stack) > MaxDepth {
		return "", fmt.Errorf("%w: limit %d", ErrDepthExceeded, MaxDepth)
	}
	if lookup == nil {
		return "", &MissingReferenceError{ID: id}
	}

	dep, err := lookup(id)
	if err != nil {
		return "", err
	}
	return render(dep, args, lookup, append(stack, id))
}

// Expansion результат раскрытия trigger
type Expansion struct {
	Entry        models.CatalogEntry
	Text         string
	Alternatives int // Alternatives сколько ещё кандидатов у этого trigger
}

// Engine раскрывает trigger по локальному каталогу
type Engine struct {
	catalog     storage.CatalogStorage
	usage       storage.UsageStorage
	settings    storage.SettingsStorage
	logger      *slog.Logger
	defaultMode models.ResolveMode
}

// NewEngine creates an expansion engine. defaultMode applies while
// the stored settings don't choose a resolve mode.
func NewEngine(
	catalog storage.CatalogStorage,
	usage storage.UsageStorage,
	settings storage.SettingsStorage,
	logger *slog.Logger,
	defaultMode models.ResolveMode,
) *Engine {
	return &Engine{
		catalog:     catalog,
		usage:       usage,
		settings:    settings,
		logger:      logger,
		defaultMode: defaultMode,
	}
}

// Candidates returns every catalog entry for trigger, best first.
func (e *Engine) Candidates(ctx context.Context, trigger string) ([]models.CatalogEntry, error) {
	entries, err := e.catalog.FindByTrigger(ctx, trigger)
	if err != nil {
		return nil, fmt.Errorf("failed to find trigger: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, trigger)
	}

	mode, err := e.mode(ctx)
	if err != nil {
		return nil, err
	}

	var usage map[string]int
	if mode == resolve.ModeUsageFirst {
		usage, err = e.usage.UsageCounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load usage counts: %w", err)
		}
	}

	resolve.RankCandidates(entries, mode, usage)
	return entries, nil
}

// Expand renders the best candidate for trigger and records its usage.
func (e *Engine) Expand(ctx context.Context, trigger string, args map[string]string) (*Expansion, error) {
	candidates, err := e.Candidates(ctx, trigger)
	if err != nil {
		return nil, err
	}

	exp, err := e.expandEntry(ctx, candidates[0], args)
	if err != nil {
		return nil, err
	}
	exp.Alternatives = len(candidates) - 1
	return exp, nil
}

// ExpandID renders a specific snippet, e.g. an alternative picked by the user.
func (e *Engine) ExpandID(ctx context.Context, id string, args map[string]string) (*Expansion, error) {
	entry, err := e.catalog.GetCatalogEntry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get snippet %s: %w", id, err)
	}
	return e.expandEntry(ctx, *entry, args)
}

func (e *Engine) expandEntry(ctx context.Context, entry models.CatalogEntry, args map[string]string) (*Expansion, error) {
	text, err := Render(entry.Snippet, args, e.lookup(ctx))
	if err != nil {
		return nil, err
	}

	if _, err := e.usage.IncrementUsage(ctx, entry.Snippet.ID); err != nil {
		// Счётчик влияет только на ранжирование
		e.logger.Warn("Failed to record usage", "snippet_id", entry.Snippet.ID, "error", err)
	}

	return &Expansion{Entry: entry, Text: text}, nil
}

func (e *Engine) lookup(ctx context.Context) Lookup {
	return func(id string) (models.Snippet, error) {
		entry, err := e.catalog.GetCatalogEntry(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrEntryNotFound) {
				return models.Snippet{}, &MissingReferenceError{ID: id}
			}
			return models.Snippet{}, err
		}
		return entry.Snippet, nil
	}
}

func (e *Engine) mode(ctx context.Context) (resolve.Mode, error) {
	settings, err := e.settings.LoadSettings(ctx)
	switch {
	case errors.Is(err, storage.ErrSettingsNotFound):
		return resolve.ModeFromSetting(e.defaultMode), nil
	case err != nil:
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.ResolveMode == "" {
		return resolve.ModeFromSetting(e.defaultMode), nil
	}
	return resolve.ModeFromSetting(settings.ResolveMode), nil
}
