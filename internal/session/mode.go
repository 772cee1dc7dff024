package session

import "github.com/Seednode/quizengine/internal/scoring"

// ModeConfig carries the mode-tunable constants from engine configuration
// into ModeRuleset.Init.
type ModeConfig struct {
	SurvivalLives             int
	WagerStartingScore        int
	WagerPhaseDeadlineSeconds int
	MaxMultiplier             float64
}

// AnswerContext is what SessionEngine.submitAnswer hands to OnAnswer after
// running AnswerChecker and the baseline Scorer call, with ScoreResult's
// points already added to the player's score: the mode hook may replace
// those points through AnswerOutcome.OverridePoints (wager, fastest_finger,
// practice).
type AnswerContext struct {
	Elapsed      int
	Check        scoring.CheckResult
	ScoreResult  scoring.Result
	WagerPercent *int
}

// UndoAward tells the engine to subtract Points from PlayerID's score.
// Currently unused: every ModeRuleset prefers returning OverridePoints on
// the answering player's own outcome instead.
type UndoAward struct {
	PlayerID string
	Points   int
}

// AnswerOutcome is OnAnswer's verdict: what changed about the standard
// scoring path, and what mode-specific event fields to surface.
type AnswerOutcome struct {
	OverridePoints    *int
	Undo              *UndoAward
	IsFirstCorrect    *bool
	LivesRemaining    *int
	WagerAmount       *int
	WaitForContinue   bool
	BlockAdvance      bool
	JustEliminated    bool
}

// DuelRoundResult is the duel mode's round resolution.
type DuelRoundResult struct {
	WinnerID string
	LoserID  string
	Draw     bool
}

// RoundEndOutcome is OnRoundEnd's verdict, evaluated once all required
// players have answered.
type RoundEndOutcome struct {
	Duel              *DuelRoundResult
	SurvivalEnded     bool
	SurvivalWinnerID  string
}

// SessionEndOutcome is OnSessionEnd's verdict.
type SessionEndOutcome struct {
	SkipXP               bool
	DuelMostWinsPlayerID string
}

// ModeRuleset is the pluggable per-mode rule implementation:
// four hooks layered on top of the otherwise mode-agnostic SessionEngine.
type ModeRuleset interface {
	Mode() GameMode
	// DeadlineSeconds is the mode's initial per-question countdown; 0 means
	// no clock (practice).
	DeadlineSeconds() int
	// Init mutates a freshly built GameState at session start.
	Init(gs *GameState, cfg ModeConfig, rng RNG)
	// OnAnswer runs after AnswerChecker/Scorer, as a post-scoring
	// adjustment and side-event hook.
	OnAnswer(gs *GameState, player *Player, actx AnswerContext) AnswerOutcome
	// OnRoundEnd runs once all required players have answered.
	OnRoundEnd(gs *GameState) RoundEndOutcome
	// OnSessionEnd runs during endSession, before final emissions.
	OnSessionEnd(gs *GameState) SessionEndOutcome
}
