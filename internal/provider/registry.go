package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a provider backend. Construction may fail when a
// required credential is missing; the error carries the backend's own
// guidance and is reported to the user unmodified.
type Factory func() (Provider, error)

// Registry maps backend names to their factories. Backends are constructed
// lazily, so a missing OpenAI key does not prevent a claude review.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a backend factory to the registry.
// If a factory with the same name already exists, it will be replaced.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// ForModel routes a model setting to its backend and constructs the provider.
func (r *Registry) ForModel(model string) (Provider, string, error) {
	name, bareModel := SplitModel(model)

	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		available := r.List()
		if len(available) == 0 {
			return nil, "", fmt.Errorf("no providers registered")
		}
		return nil, "", fmt.Errorf("unknown provider %q for model %q; available: %v", name, model, available)
	}

	p, err := f()
	if err != nil {
		return nil, "", err
	}
	return p, bareModel, nil
}

// Has returns true if a backend with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// List returns the sorted names of all registered backends.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
