package session

import "github.com/Seednode/quizengine/internal/modifier"

// Player is one participant of a lobby/session. Invariants:
// Score >= 0 always; Multiplier in [1, configured max]; at most one
// accepted answer per player per round.
type Player struct {
	ID             string
	Username       string
	Character      string
	CharacterLevel int
	IsHost         bool
	IsConnected    bool

	Score           int
	CurrentStreak   int
	LastWrongStreak int
	Multiplier      float64
	CorrectCount    int
	WrongCount      int

	HasAnsweredCurrentQuestion bool
	CurrentAnswer              string
	AnswerElapsedSeconds       int
	FreeWrongUsed              int

	Modifiers       *modifier.Set
	CosmeticEffects map[string]string
	Title           string

	// Mode-specific fields.
	Lives        int
	Eliminated   bool
	CurrentWager int
	HasWagered   bool
	IsDueling    bool
	IsSpectating bool
}

// NewPlayer constructs a Player with the invariant defaults (multiplier 1,
// score 0).
func NewPlayer(id, username, character string, characterLevel int, isHost bool) *Player {
	return &Player{
		ID:             id,
		Username:       username,
		Character:      character,
		CharacterLevel: characterLevel,
		IsHost:         isHost,
		IsConnected:    true,
		Multiplier:     1,
	}
}

// ResetRoundFlags clears the per-round answer bookkeeping ahead of a new
// question, leaving score/streak/lives alone.
func (p *Player) ResetRoundFlags() {
	p.HasAnsweredCurrentQuestion = false
	p.CurrentAnswer = ""
	p.AnswerElapsedSeconds = 0
}
