package render

import (
	"fmt"
	"mime"
	"sort"
	"sync"
)

// Registry stores renderers by name.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates a registry holding renderers.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	r := &Registry{renderers: make(map[string]Renderer)}
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// Negotiate picks the renderer the Accept header prefers. Each renderer is
// weighed by the most specific media range covering its content type; ranges
// with q=0 refuse it. The highest q wins, then the earliest range in the
// header, then fallback, then name order. When nothing is acceptable the
// renderer named fallback is returned.
func (r *Registry) Negotiate(accept, fallback string) (Renderer, error) {
	ranges := parseAccept(accept)

	r.mu.RLock()
	var (
		best      Renderer
		bestRange mediaRange
	)
	for _, name := range r.sortedNamesLocked() {
		renderer := r.renderers[name]
		mediaType, _, err := mime.ParseMediaType(renderer.ContentType())
		if err != nil {
			continue
		}
		candidate, ok := match(ranges, mediaType)
		if !ok || candidate.q <= 0 {
			continue
		}
		if best == nil || preferred(candidate, bestRange, name == fallback) {
			best, bestRange = renderer, candidate
		}
	}
	r.mu.RUnlock()

	if best != nil {
		return best, nil
	}
	return r.Get(fallback)
}

// preferred reports whether candidate beats current. Names are visited in
// sorted order, so an exact tie keeps the earlier name unless candidate is the
// fallback renderer.
func preferred(candidate, current mediaRange, isFallback bool) bool {
	if candidate.q != current.q {
		return candidate.q > current.q
	}
	if candidate.index != current.index {
		return candidate.index < current.index
	}
	return isFallback
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNamesLocked()
}

func (r *Registry) sortedNamesLocked() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
