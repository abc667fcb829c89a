package gateway

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry routes provider names to their Gateway adapters. It replaces
// runtime type switching: adding a provider means registering another
// adapter, not editing calling code.
type Registry struct {
	mu       sync.RWMutex
	gateways map[string]Gateway
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{gateways: make(map[string]Gateway)}
}

// Register adds a gateway under its provider name. Names are
// case-insensitive; registering the same name twice is an error.
func (r *Registry) Register(gw Gateway) error {
	name := strings.ToUpper(gw.Name())
	if name == "" {
		return fmt.Errorf("register gateway: empty provider name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.gateways[name]; exists {
		return fmt.Errorf("register gateway: provider %q already registered", name)
	}
	r.gateways[name] = gw
	return nil
}

// Get returns the gateway registered under the given provider name.
func (r *Registry) Get(name string) (Gateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gw, ok := r.gateways[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("get gateway: unknown provider %q", name)
	}
	return gw, nil
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.gateways))
	for name := range r.gateways {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
