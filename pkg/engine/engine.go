package engine

import (
	"fmt"
	"sync"

	"github.com/rustysnake/rustysnake/pkg/game"
)

// Engine names as they appear in configuration.
const (
	NameMiniMax    = "mini_max"
	NameMonteCarlo = "monte_carlo"
)

// Engine picks the next move for a snake on a board.
type Engine interface {
	// Name returns the engine name (e.g. "mini_max")
	Name() string

	// BestMove returns the direction the snake should move in.
	BestMove(board *game.Board, snakeID string) (game.Direction, error)
}

// Registry holds the available engines
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
}

// NewRegistry creates a new engine registry
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]Engine),
	}
}

// Register adds an engine to the registry
func (r *Registry) Register(e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[e.Name()] = e
}

// Get returns an engine by name
func (r *Registry) Get(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("engine %q not found", name)
	}
	return e, nil
}

// Names returns the registered engine names
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the registry used by the server command.
var DefaultRegistry = NewRegistry()
