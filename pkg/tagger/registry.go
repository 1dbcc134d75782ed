package tagger

import (
	"slices"
	"sync"
)

// Registry maps content-type identifiers to tagger factories.
type Registry struct {
	mu      sync.RWMutex
	byKey   map[string]Factory
	aliases map[string]string // alias -> canonical content type
}

// NewRegistry creates an empty tagger registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:   make(map[string]Factory),
		aliases: make(map[string]string),
	}
}

// Register adds a factory for a content type.
// If the content type is already registered, it is replaced.
func (r *Registry) Register(contentType string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[contentType] = factory
}

// RegisterAlias maps an alias to a canonical content type
// (e.g., "cs" -> "csharp").
func (r *Registry) RegisterAlias(alias, contentType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = contentType
}

// Resolve returns the canonical content type and factory for a given key.
// The key can be a content type or an alias.
func (r *Registry) Resolve(key string) (string, Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if factory, ok := r.byKey[key]; ok {
		return key, factory, true
	}
	if target, ok := r.aliases[key]; ok {
		if factory, ok := r.byKey[target]; ok {
			return target, factory, true
		}
	}
	return "", nil, false
}

// Get retrieves a factory by content type or alias.
func (r *Registry) Get(key string) (Factory, bool) {
	_, factory, ok := r.Resolve(key)
	return factory, ok
}

// ContentTypes returns all registered content types in sorted order.
func (r *Registry) ContentTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byKey))
	for key := range r.byKey {
		result = append(result, key)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in taggers.
// Taggers register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for tagger registration
var DefaultRegistry = NewRegistry()
