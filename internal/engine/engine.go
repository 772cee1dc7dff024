// Package engine implements SessionEngine, the per-lobby actor that owns a
// GameState exclusively and serializes every mutation through a single
// command mailbox, and EngineRegistry, the process-wide map from
// lobby code to SessionEngine. Both are grounded on the teacher's
// Hub/GameManager pattern (celebrity.go): one goroutine per lobby draining
// a channel of request structs, generalized here to SessionEngine's larger
// operation set and wrapped with synchronous reply channels so public
// methods can return a typed error instead of panicking or blocking forever.
package engine

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Seednode/quizengine/internal/catalog"
	"github.com/Seednode/quizengine/internal/events"
	"github.com/Seednode/quizengine/internal/mode"
	"github.com/Seednode/quizengine/internal/modifier"
	"github.com/Seednode/quizengine/internal/session"
	"github.com/Seednode/quizengine/internal/xp"
)

const logDate = `2006-01-02T15:04:05.000-07:00`

// Defaults for the per-mode/per-phase timers Config names.
const (
	DefaultSyncCountdownSeconds      = 5
	DefaultNextQuestionDelaySeconds  = 5
	DefaultDisconnectGraceSeconds    = 30
	DefaultWagerPhaseDeadlineSeconds = 30
	DefaultQuestionSetID             = 1
)

// Config carries every tunable deployed engine knob.
type Config struct {
	SyncCountdownSeconds      int
	NextQuestionDelaySeconds  int
	DisconnectGraceSeconds    int
	WagerPhaseDeadlineSeconds int
	MaxMultiplier             float64
	SurvivalLives             int
	WagerStartingScore        int
	DefaultQuestionSetID      int64
	Verbose                   bool
}

func (c Config) withDefaults() Config {
	if c.SyncCountdownSeconds <= 0 {
		c.SyncCountdownSeconds = DefaultSyncCountdownSeconds
	}
	if c.NextQuestionDelaySeconds <= 0 {
		c.NextQuestionDelaySeconds = DefaultNextQuestionDelaySeconds
	}
	if c.DisconnectGraceSeconds <= 0 {
		c.DisconnectGraceSeconds = DefaultDisconnectGraceSeconds
	}
	if c.WagerPhaseDeadlineSeconds <= 0 {
		c.WagerPhaseDeadlineSeconds = DefaultWagerPhaseDeadlineSeconds
	}
	if c.MaxMultiplier <= 0 {
		c.MaxMultiplier = 5.0
	}
	if c.SurvivalLives <= 0 {
		c.SurvivalLives = mode.DefaultSurvivalLives
	}
	if c.WagerStartingScore <= 0 {
		c.WagerStartingScore = mode.DefaultWagerStartingScore
	}
	if c.DefaultQuestionSetID <= 0 {
		c.DefaultQuestionSetID = DefaultQuestionSetID
	}
	return c
}

// Collaborators bundles every external, dependency-injected interface
// SessionEngine consults.
type Collaborators struct {
	Lobbies   catalog.LobbyStore
	Questions catalog.QuestionProvider
	Sessions  catalog.SessionRecorder
	Results   catalog.ResultRecorder
	XP        xp.Awarder
	Modifiers modifier.Oracle
	Sink      events.Sink
	RNG       session.RNG
}

// roundClock is the live per-question countdown; nil when no
// clock is running.
type roundClock struct {
	stop chan struct{}
}

// SessionEngine owns exactly one GameState and mutates it only from the
// goroutine running (*SessionEngine).run, matching single-actor
// model. Public methods enqueue a closure and block on a reply channel,
// so callers observe synchronous success/typed-error semantics.
type SessionEngine struct {
	lobbyCode string
	cfg       Config
	collab    Collaborators
	registry  *Registry
	locks     *playerLocks

	cmds chan func()

	gs      *session.GameState
	ruleset session.ModeRuleset

	clock             *roundClock
	syncStop          chan struct{}
	nextQuestionTimer *time.Timer
	wagerTimer        *time.Timer
	disconnectTimers  map[string]*time.Timer

	destroyed bool
}

// New constructs a SessionEngine and starts its mailbox-draining goroutine.
// Callers normally go through Registry.Create instead of calling this
// directly.
func New(lobbyCode string, cfg Config, collab Collaborators, registry *Registry) *SessionEngine {
	cfg = cfg.withDefaults()
	if collab.RNG == nil {
		collab.RNG = session.CryptoRNG()
	}

	e := &SessionEngine{
		lobbyCode:        lobbyCode,
		cfg:              cfg,
		collab:           collab,
		registry:         registry,
		locks:            newPlayerLocks(),
		cmds:             make(chan func(), 32),
		disconnectTimers: make(map[string]*time.Timer),
	}

	go e.run()

	return e
}

func (e *SessionEngine) run() {
	for cmd := range e.cmds {
		cmd()
		if e.destroyed {
			return
		}
	}
}

// call enqueues fn and blocks for its result, on the engine's single
// serialization point.
func (e *SessionEngine) call(fn func() error) error {
	reply := make(chan error, 1)
	e.cmds <- func() { reply <- fn() }
	return <-reply
}

// post enqueues fn without waiting for it to run; used by timer callbacks
// firing on their own goroutine.
func (e *SessionEngine) post(fn func()) {
	e.cmds <- fn
}

func (e *SessionEngine) emitLobby(t events.Type, payload any) {
	if e.collab.Sink == nil {
		return
	}
	e.collab.Sink.Emit(events.Event{Type: t, LobbyCode: e.lobbyCode, Payload: payload})
}

func (e *SessionEngine) logf(format string, args ...any) {
	if !e.cfg.Verbose {
		return
	}
	log.Printf("%s | ENGINE[%s]: "+format, append([]any{time.Now().Format(logDate), e.lobbyCode}, args...)...)
}

func (e *SessionEngine) allPlayerIDs() []string {
	ids := make([]string, len(e.gs.Roster))
	for i, p := range e.gs.Roster {
		ids[i] = p.ID
	}
	return ids
}

func newSessionID() string {
	return uuid.NewString()
}
