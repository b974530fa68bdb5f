package configurator

import (
	"fmt"
	"sort"
	"sync"
)

// Configurator registry
var (
	registryMu sync.RWMutex
	registry   = make(map[string]TargetConfigurator)
)

// Register adds a configurator to the global registry.
// Called by configurator implementations in their init() functions.
// Ids are unique; registering an id twice panics.
func Register(c TargetConfigurator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[c.ID()]; dup {
		panic(fmt.Sprintf("configurator: duplicate registration of %q", c.ID()))
	}
	registry[c.ID()] = c
}

// Get returns a configurator by id.
func Get(id string) (TargetConfigurator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[id]
	return c, ok
}

// MustGet returns a configurator by id and panics if it is not registered.
func MustGet(id string) TargetConfigurator {
	c, ok := Get(id)
	if !ok {
		panic(&UnknownConfiguratorError{ID: id, Available: List()})
	}
	return c
}

// List returns all registered configurator ids (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all registered configurators sorted by id.
func All() []TargetConfigurator {
	ids := List()
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]TargetConfigurator, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry[id])
	}
	return out
}

// Resolve returns the configurators for ids in order.
func Resolve(ids ...string) ([]TargetConfigurator, error) {
	out := make([]TargetConfigurator, 0, len(ids))
	for _, id := range ids {
		c, ok := Get(id)
		if !ok {
			return nil, &UnknownConfiguratorError{ID: id, Available: List()}
		}
		out = append(out, c)
	}
	return out, nil
}

// UnknownConfiguratorError is returned when an unknown configurator id is requested.
type UnknownConfiguratorError struct {
	ID        string
	Available []string
}

func (e *UnknownConfiguratorError) Error() string {
	return fmt.Sprintf("unknown target configurator %q\nAvailable configurators: %v\nHint: Run 'mpwizard targets' to list configurator ids", e.ID, e.Available)
}
