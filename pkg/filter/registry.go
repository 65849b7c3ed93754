// ABOUTME: Matcher registry keyed by name; replaces base-class dispatch
// ABOUTME: Hosts register matcher instances once and look them up per request

package filter

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds matcher instances keyed by Name().
type Registry struct {
	mu       sync.RWMutex
	matchers map[string]Matcher
}

// NewRegistry creates a Registry pre-populated with the given matchers.
func NewRegistry(matchers ...Matcher) *Registry {
	r := &Registry{matchers: make(map[string]Matcher, len(matchers))}
	for _, m := range matchers {
		r.Register(m)
	}
	return r
}

// Register adds a matcher, replacing any existing matcher with the same name.
func (r *Registry) Register(m Matcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchers[m.Name()] = m
}

// Get returns the matcher registered under name.
func (r *Registry) Get(name string) (Matcher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.matchers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, name)
	}
	return m, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.matchers))
	for name := range r.matchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered matcher ordered by name.
func (r *Registry) All() []Matcher {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Matcher, 0, len(names))
	for _, name := range names {
		out = append(out, r.matchers[name])
	}
	return out
}
