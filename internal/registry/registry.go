// Package registry provides a global registry for world preset factories.
// Presets register themselves in init() functions, allowing the CLI and
// platform to discover generators without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/voxelpad/internal/world"
)

// GenParams carries the tunable knobs shared by all world generators.
type GenParams struct {
	Size       int     // Grid extent along X and Z
	DirtChance float64 // Per-column probability of a decorative dirt block
	Trees      int     // Number of tree structures to scatter
}

// DefaultGenParams returns the parameters of the classic 8×8 world.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:       8,
		DirtChance: 0.3,
		Trees:      3,
	}
}

// Factory generates a fresh world from parameters and a seed.
// The same params and seed must always produce the same world.
type Factory func(p GenParams, seed int64) *world.World

// PresetInfo contains metadata about a registered world preset.
type PresetInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Typically called from a generator's init() function.
// Panics if a preset with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PresetInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Generate builds a fresh world using the preset with the given ID.
// Returns an error if the preset is not registered.
func Generate(id string, p GenParams, seed int64) (*world.World, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown preset %q", id)
	}

	return f(p, seed), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
