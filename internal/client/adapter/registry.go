package adapter

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/iudanet/snipkeeper/internal/models"
)

// Registry сопоставляет тип провайдера с конструктором адаптера.
// Новые провайдеры регистрируются без изменения кода синхронизации.
type Registry struct {
	constructors map[string]Constructor
	deps         Dependencies
	mu           sync.RWMutex
}

// NewRegistry creates an empty registry. deps are passed to every constructor.
func NewRegistry(deps Dependencies) *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
		deps:         deps,
	}
}

// Register adds or replaces the constructor for kind.
func (r *Registry) Register(kind string, c Constructor) {
	kind = normalizeKind(kind)
	if kind == "" || c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[kind] = c
}

// Unregister removes kind from the registry.
func (r *Registry) Unregister(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.constructors, normalizeKind(kind))
}

// Kinds returns registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.constructors))
	for k := range r.constructors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Supports reports whether kind is registered.
func (r *Registry) Supports(kind string) bool {
	_, ok := r.lookup(kind)
	return ok
}

// Create builds a fresh adapter for source.
// Unknown kinds return *UnsupportedProviderError.
func (r *Registry) Create(source models.Source) (Adapter, error) {
	c, ok := r.lookup(source.Kind)
	if !ok {
		return nil, &UnsupportedProviderError{Kind: source.Kind}
	}

	deps := r.deps
	if deps.Logger != nil {
		deps.Logger = deps.Logger.With("source_id", source.ID, "kind", normalizeKind(source.Kind))
	}

	a, err := c(source, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s adapter for source %q: %w", source.Kind, source.ID, err)
	}
	return a, nil
}

func (r *Registry) lookup(kind string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.constructors[normalizeKind(kind)]
	return c, ok
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
