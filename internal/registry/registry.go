// Package registry provides a global registry of world variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Env is the boundary between a world and its drivers (terminal front end,
// headless runner, scripts). Implementations are not safe for concurrent use.
type Env interface {
	// ID returns a unique identifier for this variant (e.g., "crossing").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new episode. A nil seed continues the current random
	// stream (seeding from the clock the first time).
	Reset(seed *int64) (core.Observation, core.Info)

	// Step applies one action and reports the outcome.
	Step(a core.Action) (core.StepResult, error)

	// State returns the current episode state.
	State() core.EpisodeState

	// Render draws the current world into the provided screen buffer.
	// It never mutates the world.
	Render(dst *core.Screen)

	// StepsPerSecond is the pacing hint for interactive front ends.
	StepsPerSecond() int

	// Close releases resources held by the variant.
	Close() error
}

// Info contains metadata about a registered variant.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a variant from a world config.
type Factory func(cfg config.CrossingConfig, logger *log.Logger) (Env, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered variants, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered or the config is rejected.
func Create(id string, cfg config.CrossingConfig, logger *log.Logger) (Env, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	env, err := f(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("registry: creating %q: %w", id, err)
	}
	return env, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
