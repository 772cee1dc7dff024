package engine

import (
	"sync"

	"github.com/Seednode/quizengine/internal/events"
	"github.com/Seednode/quizengine/internal/session"
)

// Registry is the process-wide mapping from lobby code to SessionEngine,
// the teacher's GameManager generalized from per-game Hubs to per-lobby
// SessionEngines.
type Registry struct {
	mu      sync.Mutex
	engines map[string]*SessionEngine
	cfg     Config
	collab  Collaborators
}

// NewRegistry builds an empty Registry sharing cfg/collab across every
// engine it creates. This is the one legitimate process-wide mutable
// component; construct it once at program start.
func NewRegistry(cfg Config, collab Collaborators) *Registry {
	return &Registry{
		engines: make(map[string]*SessionEngine),
		cfg:     cfg,
		collab:  collab,
	}
}

// SetSink wires the event delivery collaborator after construction, letting
// callers break the otherwise-circular dependency between a Registry and
// the transport that listens to it.
func (r *Registry) SetSink(s events.Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.collab.Sink = s
}

// Get looks up the live engine for a lobby code.
func (r *Registry) Get(lobbyCode string) (*SessionEngine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.engines[lobbyCode]
	return e, ok
}

// Create registers a new, not-yet-started engine for lobbyCode. Fails with
// ALREADY_ACTIVE if one already exists.
func (r *Registry) Create(lobbyCode string) (*SessionEngine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[lobbyCode]; exists {
		return nil, session.NewError(session.AlreadyActive, lobbyCode)
	}

	e := New(lobbyCode, r.cfg, r.collab, r)
	r.engines[lobbyCode] = e

	return e, nil
}

// destroy removes lobbyCode's engine from the registry. Called by
// endSessionLocked as its final step.
func (r *Registry) destroy(lobbyCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.engines, lobbyCode)
}

// CleanupAll force-destroys every registered engine.
func (r *Registry) CleanupAll() {
	r.mu.Lock()
	engines := make([]*SessionEngine, 0, len(r.engines))
	for code, e := range r.engines {
		engines = append(engines, e)
		delete(r.engines, code)
	}
	r.mu.Unlock()

	for _, e := range engines {
		eng := e
		eng.post(func() {
			eng.cancelAllTimersLocked()
			eng.destroyed = true
		})
	}
}
