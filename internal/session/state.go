package session

import "github.com/Seednode/quizengine/internal/catalog"

// GameMode is one of the six pluggable ModeRulesets.
type GameMode string

const (
	ModeArcade        GameMode = "arcade"
	ModePractice      GameMode = "practice"
	ModeFastestFinger GameMode = "fastest_finger"
	ModeSurvival      GameMode = "survival"
	ModeWager         GameMode = "wager"
	ModeDuel          GameMode = "duel"
)

// Status is the per-session state machine:
// CREATED -> SYNCING -> PLAYING -> (ROUND_ACTIVE <-> ROUND_ENDING) -> FINAL -> DESTROYED.
type Status string

const (
	StatusCreated     Status = "CREATED"
	StatusSyncing     Status = "SYNCING"
	StatusPlaying     Status = "PLAYING"
	StatusRoundActive Status = "ROUND_ACTIVE"
	StatusRoundEnding Status = "ROUND_ENDING"
	StatusFinal       Status = "FINAL"
	StatusDestroyed   Status = "DESTROYED"
)

// GameState is exclusively owned by its SessionEngine: created on
// startSession, mutated only by engine operations, destroyed on
// endSession.
type GameState struct {
	LobbyCode string
	SessionID string
	Mode      GameMode
	Status    Status

	Questions            []catalog.Question
	TotalQuestions       int
	CurrentQuestionIndex int // -1 before the first round
	CurrentQuestion      *catalog.Question

	QuestionStartedAtMillis int64
	TimeRemainingSeconds    int
	IsActive                bool

	// Roster, in join order; RosterIndex maps playerID -> index into Roster.
	Roster      []*Player
	RosterIndex map[string]int

	// Mode-specific maps.
	PlayerLives       map[string]int
	EliminatedPlayers map[string]bool
	PlayerWagers      map[string]int
	WagerPhaseActive  bool
	DuelQueue         []string
	CurrentDuelPair   [2]string
	DuelWins          map[string]int
	FirstCorrectPlayerID string

	// Practice mode's wait-for-continue gate.
	AwaitingContinue  bool
	PracticeContinued map[string]bool

	// RoundStartScores snapshots every player's score when a round begins,
	// so endCurrentQuestion can report a per-round scoreDelta.
	RoundStartScores map[string]int
}

// NewGameState builds a fresh, not-yet-started GameState.
func NewGameState(lobbyCode, sessionID string, mode GameMode, questions []catalog.Question) *GameState {
	gs := &GameState{
		LobbyCode:            lobbyCode,
		SessionID:            sessionID,
		Mode:                 mode,
		Status:               StatusCreated,
		Questions:            questions,
		TotalQuestions:       len(questions),
		CurrentQuestionIndex: -1,
		Roster:               nil,
		RosterIndex:          make(map[string]int),
		PlayerLives:          make(map[string]int),
		EliminatedPlayers:    make(map[string]bool),
		PlayerWagers:         make(map[string]int),
		DuelWins:             make(map[string]int),
		PracticeContinued:    make(map[string]bool),
		RoundStartScores:     make(map[string]int),
	}
	return gs
}

// Player looks up a roster member by id.
func (gs *GameState) Player(id string) (*Player, bool) {
	idx, ok := gs.RosterIndex[id]
	if !ok {
		return nil, false
	}
	return gs.Roster[idx], true
}

// AddPlayer appends a new roster member, wiring the index.
func (gs *GameState) AddPlayer(p *Player) {
	gs.RosterIndex[p.ID] = len(gs.Roster)
	gs.Roster = append(gs.Roster, p)
}

// AlivePlayers returns roster members not eliminated (survival mode); for
// modes without elimination every player is "alive".
func (gs *GameState) AlivePlayers() []*Player {
	out := make([]*Player, 0, len(gs.Roster))
	for _, p := range gs.Roster {
		if !p.Eliminated {
			out = append(out, p)
		}
	}
	return out
}

// AllAnswered reports whether every player required to answer this round
// has done so (eliminated/spectating players are force-marked answered by
// SessionEngine at round start, so a plain scan suffices here).
func (gs *GameState) AllAnswered() bool {
	for _, p := range gs.Roster {
		if !p.HasAnsweredCurrentQuestion {
			return false
		}
	}
	return true
}
