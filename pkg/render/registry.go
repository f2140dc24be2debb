package render

import (
	"fmt"
	"sync"
)

// Registry stores section renderers by name while preserving registration
// order. Dispatch order matters: sections sharing a container must run in the
// sequence they were registered.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]Section
	sections []Section
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Section),
	}
}

// Register adds a section by its Name(). Duplicate names return an error.
func (r *Registry) Register(section Section) error {
	if section == nil {
		return fmt.Errorf("render: section is required")
	}
	name := section.Name()
	if name == "" {
		return fmt.Errorf("render: section name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("render: section %q already registered", name)
	}

	r.byName[name] = section
	r.sections = append(r.sections, section)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(sections ...Section) {
	for _, section := range sections {
		if err := r.Register(section); err != nil {
			panic(err)
		}
	}
}

// Get retrieves a section by name.
func (r *Registry) Get(name string) (Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("render: section %q not found", name)
	}
	return section, nil
}

// Ordered returns the sections in registration order.
func (r *Registry) Ordered() []Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// List returns section names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sections))
	for _, section := range r.sections {
		names = append(names, section.Name())
	}
	return names
}

// Has reports whether a section is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}
