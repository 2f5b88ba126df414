// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate boards without hardcoded sizes.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes a named board preset.
type Variant struct {
	// ID is a unique identifier (e.g., "classic"). Used for CLI commands
	// and score storage.
	ID string

	// Title is a human-readable name for display (e.g., "Classic 4x4").
	Title string

	// Size is the number of tiles per side.
	Size int
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered or the size is invalid.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Size < 2 {
		panic(fmt.Sprintf("registry: variant %q has invalid size %d", v.ID, v.Size))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by size then ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Size != result[j].Size {
			return result[i].Size < result[j].Size
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
