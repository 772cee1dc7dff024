package mode

import "github.com/Seednode/quizengine/internal/session"

// DefaultSurvivalLives is the starting life count when no override is
// configured.
const DefaultSurvivalLives = 3

// Survival gives every player a pool of lives; a wrong answer costs one,
// reaching zero eliminates the player.
type Survival struct{}

func (Survival) Mode() session.GameMode { return session.ModeSurvival }

func (Survival) DeadlineSeconds() int { return 60 }

func (Survival) Init(gs *session.GameState, cfg session.ModeConfig, rng session.RNG) {
	lives := cfg.SurvivalLives
	if lives <= 0 {
		lives = DefaultSurvivalLives
	}
	for _, p := range gs.Roster {
		p.Lives = lives
		gs.PlayerLives[p.ID] = lives
	}
}

func (Survival) OnAnswer(gs *session.GameState, p *session.Player, actx session.AnswerContext) session.AnswerOutcome {
	if actx.Check.IsCorrect || actx.ScoreResult.Points > 0 {
		return session.AnswerOutcome{}
	}

	if p.Eliminated {
		return session.AnswerOutcome{}
	}

	p.Lives--
	gs.PlayerLives[p.ID] = p.Lives
	lives := p.Lives

	outcome := session.AnswerOutcome{LivesRemaining: &lives}

	if p.Lives <= 0 {
		p.Eliminated = true
		gs.EliminatedPlayers[p.ID] = true
		outcome.JustEliminated = true
	}

	return outcome
}

func (Survival) OnRoundEnd(gs *session.GameState) session.RoundEndOutcome {
	return survivalLivenessCheck(gs)
}

func (Survival) OnSessionEnd(gs *session.GameState) session.SessionEndOutcome {
	return session.SessionEndOutcome{}
}

// survivalLivenessCheck is shared by OnRoundEnd and by the engine's
// round-start check.
func survivalLivenessCheck(gs *session.GameState) session.RoundEndOutcome {
	alive := gs.AlivePlayers()
	if len(alive) > 1 {
		return session.RoundEndOutcome{}
	}

	winnerID := ""
	if len(alive) == 1 {
		winnerID = alive[0].ID
	}
	return session.RoundEndOutcome{SurvivalEnded: true, SurvivalWinnerID: winnerID}
}

// SurvivalLivenessCheck is exported for SessionEngine's round-start check.
func SurvivalLivenessCheck(gs *session.GameState) session.RoundEndOutcome {
	return survivalLivenessCheck(gs)
}
