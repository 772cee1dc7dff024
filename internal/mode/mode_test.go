package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Seednode/quizengine/internal/catalog"
	"github.com/Seednode/quizengine/internal/scoring"
	"github.com/Seednode/quizengine/internal/session"
)

// identityRNG never swaps, so Duel's initial queue order matches roster
// join order deterministically.
type identityRNG struct{}

func (identityRNG) Shuffle(n int, swap func(i, j int)) {}

func newGameState(mode session.GameMode, ids ...string) *session.GameState {
	gs := session.NewGameState("ABCD", "session-1", mode, nil)
	for _, id := range ids {
		gs.AddPlayer(session.NewPlayer(id, id, "", 0, false))
	}
	return gs
}

func TestNew_ResolvesEachMode(t *testing.T) {
	cases := map[session.GameMode]session.GameMode{
		session.ModeArcade:        session.ModeArcade,
		session.ModePractice:      session.ModePractice,
		session.ModeFastestFinger: session.ModeFastestFinger,
		session.ModeSurvival:      session.ModeSurvival,
		session.ModeWager:         session.ModeWager,
		session.ModeDuel:          session.ModeDuel,
		session.GameMode("bogus"): session.ModeArcade,
	}
	for input, want := range cases {
		assert.Equal(t, want, New(input).Mode())
	}
}

func TestFastestFinger_OnlyFirstCorrectKeepsPoints(t *testing.T) {
	ff := FastestFinger{}
	gs := newGameState(session.ModeFastestFinger, "p1", "p2")
	ff.Init(gs, session.ModeConfig{}, identityRNG{})

	p1, _ := gs.Player("p1")
	p2, _ := gs.Player("p2")

	out1 := ff.OnAnswer(gs, p1, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: true}})
	assert.True(t, *out1.IsFirstCorrect)
	assert.Nil(t, out1.OverridePoints)

	out2 := ff.OnAnswer(gs, p2, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: true}})
	assert.False(t, *out2.IsFirstCorrect)
	assert.Equal(t, 0, *out2.OverridePoints)
}

func TestFastestFinger_WrongAnswerUntouched(t *testing.T) {
	ff := FastestFinger{}
	gs := newGameState(session.ModeFastestFinger, "p1")
	p1, _ := gs.Player("p1")

	out := ff.OnAnswer(gs, p1, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: false}})
	assert.Nil(t, out.IsFirstCorrect)
	assert.Nil(t, out.OverridePoints)
}

func TestSurvival_WrongAnswerCostsLifeAndEliminates(t *testing.T) {
	sv := Survival{}
	gs := newGameState(session.ModeSurvival, "p1", "p2")
	sv.Init(gs, session.ModeConfig{SurvivalLives: 1}, identityRNG{})

	p1, _ := gs.Player("p1")
	assert.Equal(t, 1, p1.Lives)

	out := sv.OnAnswer(gs, p1, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: false}})
	assert.Equal(t, 0, *out.LivesRemaining)
	assert.True(t, out.JustEliminated)
	assert.True(t, p1.Eliminated)
	assert.True(t, gs.EliminatedPlayers["p1"])
}

func TestSurvival_CorrectAnswerNeverCostsLife(t *testing.T) {
	sv := Survival{}
	gs := newGameState(session.ModeSurvival, "p1")
	sv.Init(gs, session.ModeConfig{SurvivalLives: 2}, identityRNG{})
	p1, _ := gs.Player("p1")

	out := sv.OnAnswer(gs, p1, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: true}, ScoreResult: scoring.Result{Points: 500}})
	assert.Nil(t, out.LivesRemaining)
	assert.Equal(t, 2, p1.Lives)
}

func TestSurvival_DefaultLivesWhenUnconfigured(t *testing.T) {
	sv := Survival{}
	gs := newGameState(session.ModeSurvival, "p1")
	sv.Init(gs, session.ModeConfig{}, identityRNG{})
	p1, _ := gs.Player("p1")
	assert.Equal(t, DefaultSurvivalLives, p1.Lives)
}

func TestSurvival_LastPlayerStandingEndsSession(t *testing.T) {
	gs := newGameState(session.ModeSurvival, "p1", "p2")
	p2, _ := gs.Player("p2")
	p2.Eliminated = true

	out := SurvivalLivenessCheck(gs)
	assert.True(t, out.SurvivalEnded)
	assert.Equal(t, "p1", out.SurvivalWinnerID)
}

func TestSurvival_MultipleAliveContinues(t *testing.T) {
	gs := newGameState(session.ModeSurvival, "p1", "p2")
	out := SurvivalLivenessCheck(gs)
	assert.False(t, out.SurvivalEnded)
}

func TestWager_CorrectAnswerAddsStake(t *testing.T) {
	w := Wager{}
	gs := newGameState(session.ModeWager, "p1")
	w.Init(gs, session.ModeConfig{WagerStartingScore: 100}, identityRNG{})
	p1, _ := gs.Player("p1")
	assert.Equal(t, 100, p1.Score)

	pct := 50
	out := w.OnAnswer(gs, p1, session.AnswerContext{
		Check:        scoring.CheckResult{IsCorrect: true},
		WagerPercent: &pct,
	})
	assert.Equal(t, 50, *out.OverridePoints)
	assert.Equal(t, 50, *out.WagerAmount)
}

func TestWager_WrongAnswerSubtractsStakeClampedAtZero(t *testing.T) {
	w := Wager{}
	gs := newGameState(session.ModeWager, "p1")
	w.Init(gs, session.ModeConfig{WagerStartingScore: 100}, identityRNG{})
	p1, _ := gs.Player("p1")

	pct := 150 // out-of-range wager clamps to 100
	out := w.OnAnswer(gs, p1, session.AnswerContext{
		Check:        scoring.CheckResult{IsCorrect: false},
		WagerPercent: &pct,
	})
	assert.Equal(t, -100, *out.OverridePoints)
}

func TestWager_DefaultStartingScore(t *testing.T) {
	w := Wager{}
	gs := newGameState(session.ModeWager, "p1")
	w.Init(gs, session.ModeConfig{}, identityRNG{})
	p1, _ := gs.Player("p1")
	assert.Equal(t, DefaultWagerStartingScore, p1.Score)
}

func TestDuel_InitPairsFrontTwoAndSpectatesRest(t *testing.T) {
	d := Duel{}
	gs := newGameState(session.ModeDuel, "p1", "p2", "p3")
	d.Init(gs, session.ModeConfig{}, identityRNG{})

	assert.Equal(t, [2]string{"p1", "p2"}, gs.CurrentDuelPair)
	p1, _ := gs.Player("p1")
	p2, _ := gs.Player("p2")
	p3, _ := gs.Player("p3")
	assert.True(t, p1.IsDueling)
	assert.True(t, p2.IsDueling)
	assert.True(t, p3.IsSpectating)
	assert.False(t, p3.IsDueling)
}

func TestDuel_FasterCorrectAnswerWins(t *testing.T) {
	d := Duel{}
	gs := newGameState(session.ModeDuel, "p1", "p2")
	d.Init(gs, session.ModeConfig{}, identityRNG{})
	gs.CurrentQuestion = &catalog.Question{Kind: catalog.MultipleChoice, CorrectAnswer: "A"}

	p1, _ := gs.Player("p1")
	p2, _ := gs.Player("p2")
	p1.CurrentAnswer = "A"
	p1.AnswerElapsedSeconds = 2
	p2.CurrentAnswer = "A"
	p2.AnswerElapsedSeconds = 5

	out := d.OnRoundEnd(gs)
	assert.NotNil(t, out.Duel)
	assert.Equal(t, "p1", out.Duel.WinnerID)
	assert.Equal(t, "p2", out.Duel.LoserID)
	assert.Equal(t, 1, gs.DuelWins["p1"])
}

func TestDuel_BothWrongIsDraw(t *testing.T) {
	d := Duel{}
	gs := newGameState(session.ModeDuel, "p1", "p2")
	d.Init(gs, session.ModeConfig{}, identityRNG{})
	gs.CurrentQuestion = &catalog.Question{Kind: catalog.MultipleChoice, CorrectAnswer: "A"}

	p1, _ := gs.Player("p1")
	p2, _ := gs.Player("p2")
	p1.CurrentAnswer = "B"
	p2.CurrentAnswer = "C"

	out := d.OnRoundEnd(gs)
	assert.True(t, out.Duel.Draw)
}

func TestDuel_WinnerStaysInQueueLoserGoesToBack(t *testing.T) {
	d := Duel{}
	gs := newGameState(session.ModeDuel, "p1", "p2", "p3")
	d.Init(gs, session.ModeConfig{}, identityRNG{})
	gs.CurrentQuestion = &catalog.Question{Kind: catalog.MultipleChoice, CorrectAnswer: "A"}

	p1, _ := gs.Player("p1")
	p2, _ := gs.Player("p2")
	p1.CurrentAnswer = "A"
	p1.AnswerElapsedSeconds = 1
	p2.CurrentAnswer = "B"

	d.OnRoundEnd(gs)

	assert.Equal(t, []string{"p1", "p3", "p2"}, gs.DuelQueue)
	assert.Equal(t, [2]string{"p1", "p3"}, gs.CurrentDuelPair)
}

func TestDuel_OnSessionEndPicksMostWins(t *testing.T) {
	d := Duel{}
	gs := newGameState(session.ModeDuel, "p1", "p2")
	gs.DuelWins["p1"] = 3
	gs.DuelWins["p2"] = 5

	out := d.OnSessionEnd(gs)
	assert.Equal(t, "p2", out.DuelMostWinsPlayerID)
}

func TestPractice_WrongAnswerBlocksAdvanceAndWaits(t *testing.T) {
	p := Practice{}
	gs := newGameState(session.ModePractice, "p1")
	pl, _ := gs.Player("p1")

	out := p.OnAnswer(gs, pl, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: false}})
	assert.Equal(t, 0, *out.OverridePoints)
	assert.True(t, out.WaitForContinue)
	assert.True(t, out.BlockAdvance)
}

func TestPractice_CorrectAnswerNeverBlocks(t *testing.T) {
	p := Practice{}
	gs := newGameState(session.ModePractice, "p1")
	pl, _ := gs.Player("p1")

	out := p.OnAnswer(gs, pl, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: true}})
	assert.False(t, out.WaitForContinue)
	assert.False(t, out.BlockAdvance)
}

func TestPractice_SessionEndSkipsXP(t *testing.T) {
	p := Practice{}
	out := p.OnSessionEnd(newGameState(session.ModePractice))
	assert.True(t, out.SkipXP)
}

func TestArcade_NeverOverrides(t *testing.T) {
	a := Arcade{}
	gs := newGameState(session.ModeArcade, "p1")
	pl, _ := gs.Player("p1")

	out := a.OnAnswer(gs, pl, session.AnswerContext{Check: scoring.CheckResult{IsCorrect: true}})
	assert.Equal(t, session.AnswerOutcome{}, out)
}
