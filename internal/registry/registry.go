// Package registry maps game ids to factories. Game packages register
// themselves in init() so hosts can create games by id without importing
// them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Game is what the platform drives. Implementations keep their logic free
// of terminal code; the host owns input mapping, timing and drawing.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current score and status flags.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Description() string
}

// GameInfo is the metadata shown in listings.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a game id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
