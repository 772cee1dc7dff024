package events

import "time"

// Payload shapes mirror the teacher's message-struct style (celebrity.go's
// GameStateMessage, CollisionMessage, ...): one struct per outbound shape,
// json tags documenting which fields are mode-specific add-ons.

type JoinSuccessPayload struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
}

type JoinErrorPayload struct {
	Reason string `json:"reason"`
}

type LobbyUpdatedPayload struct {
	Roster []RosterPlayer `json:"roster"`
}

type RosterPlayer struct {
	PlayerID    string `json:"playerId"`
	Username    string `json:"username"`
	Character   string `json:"character"`
	IsHost      bool   `json:"isHost"`
	IsConnected bool   `json:"isConnected"`
	IsReady     bool   `json:"isReady"`
}

type GameSyncingPayload struct {
	TicksRemaining int `json:"ticksRemaining"`
}

type GameStartedPayload struct {
	TotalQuestions int    `json:"totalQuestions"`
	GameMode       string `json:"gameMode"`
}

type QuestionStartedPayload struct {
	QuestionIndex  int      `json:"questionIndex"`
	TotalQuestions int      `json:"totalQuestions"`
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options,omitempty"`
	Kind           string   `json:"kind"`
	DeadlineSeconds int     `json:"deadlineSeconds"`
}

type DuelQuestionStartedPayload struct {
	QuestionStartedPayload
	DuelistIDs []string `json:"duelistIds"`
}

type TimeUpdatePayload struct {
	TimeRemaining int `json:"timeRemaining"`
}

type TimeWarningPayload struct {
	TimeRemaining int `json:"timeRemaining"`
}

// AnswerReceivedPayload carries both legacy and explicit score fields, plus
// mode-specific add-ons.
type AnswerReceivedPayload struct {
	PlayerID      string `json:"playerId"`
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`       // legacy field name
	ScoreDelta    int    `json:"scoreDelta"`   // explicit field name
	NewScore      int    `json:"newScore"`
	NewStreak     int    `json:"newStreak"`
	NewMultiplier float64 `json:"newMultiplier"`

	// mode-specific add-ons
	IsFirstCorrect  *bool   `json:"isFirstCorrect,omitempty"`
	LivesRemaining  *int    `json:"livesRemaining,omitempty"`
	WagerAmount     *int    `json:"wagerAmount,omitempty"`
	WaitForContinue bool    `json:"waitForContinue,omitempty"`
	CorrectAnswer   string  `json:"correctAnswer,omitempty"`
	Hint            string  `json:"hint,omitempty"`
}

type WagerSubmittedPayload struct {
	PlayerID     string `json:"playerId"`
	WagerPercent int    `json:"wagerPercent"`
	AllIn        bool   `json:"allWagered"`
}

type LivesUpdatedPayload struct {
	PlayerID      string `json:"playerId"`
	LivesRemaining int   `json:"livesRemaining"`
}

type PlayerEliminatedPayload struct {
	PlayerID string `json:"playerId"`
}

type SurvivalWinnerPayload struct {
	PlayerID string `json:"playerId,omitempty"`
}

type DuelResultPayload struct {
	WinnerID string `json:"winnerId,omitempty"`
	LoserID  string `json:"loserId,omitempty"`
	Draw     bool   `json:"draw"`
	NextDuelistIDs []string `json:"nextDuelistIds"`
}

type DuelEndedPayload struct {
	MostWinsPlayerID string `json:"mostWinsPlayerId,omitempty"`
}

type PlayerRoundResult struct {
	PlayerID      string `json:"playerId"`
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
	SubmittedAnswer string `json:"submittedAnswer,omitempty"`
	ElapsedSeconds int    `json:"elapsedSeconds,omitempty"`
	ScoreDelta    int    `json:"scoreDelta"`
	NewScore      int    `json:"newScore"`
}

type QuestionResultsPayload struct {
	QuestionIndex int                 `json:"questionIndex"`
	CorrectAnswer string              `json:"correctAnswer"`
	Results       []PlayerRoundResult `json:"results"`
}

type QuestionEndedPayload struct {
	QuestionIndex int            `json:"questionIndex"`
	CorrectAnswer string         `json:"correctAnswer"`
	Scores        map[string]int `json:"scores"`
}

type LeaderboardEntry struct {
	PlayerID  string `json:"playerId"`
	Username  string `json:"username"`
	Score     int    `json:"score"`
	Placement int    `json:"placement"`
	XPAwarded int    `json:"xpAwarded"`
	LeveledUp bool   `json:"leveledUp"`
	NewLevel  int    `json:"newLevel,omitempty"`
}

type GameEndedPayload struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type GameOverPayload struct {
	WinnerPlayerID string `json:"winnerPlayerId,omitempty"`
}

type PlayerLevelUpPayload struct {
	PlayerID string `json:"playerId"`
	OldLevel int    `json:"oldLevel"`
	NewLevel int    `json:"newLevel"`
	NewlyUnlockedPerks []string `json:"newlyUnlockedPerks,omitempty"`
}

type PlayerDisconnectedPayload struct {
	PlayerID string `json:"playerId"`
}

type PlayerDisconnectConfirmedPayload struct {
	PlayerID string `json:"playerId"`
}

type PlayerReconnectedPayload struct {
	PlayerID string `json:"playerId"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type WaitForContinuePayload struct {
	CorrectAnswer string `json:"correctAnswer"`
	Hint          string `json:"hint,omitempty"`
	WaitingOn     []string `json:"waitingOn"`
}

// SessionInfoPayload mirrors the teacher's SessionInfoMessage shape, sent
// immediately on connect.
type SessionInfoPayload struct {
	LobbyCode string    `json:"lobbyCode"`
	ServerTime time.Time `json:"serverTime"`
}
