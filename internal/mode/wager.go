package mode

import "github.com/Seednode/quizengine/internal/session"

// DefaultWagerStartingScore is the score every player starts with when no
// override is configured.
const DefaultWagerStartingScore = 100

// Wager discards the standard point award and replaces it with a
// percentage-of-current-score bet, win or lose.
type Wager struct{}

func (Wager) Mode() session.GameMode { return session.ModeWager }

func (Wager) DeadlineSeconds() int { return 60 }

func (Wager) Init(gs *session.GameState, cfg session.ModeConfig, rng session.RNG) {
	start := cfg.WagerStartingScore
	if start <= 0 {
		start = DefaultWagerStartingScore
	}
	for _, p := range gs.Roster {
		p.Score = start
	}
}

func (Wager) OnAnswer(gs *session.GameState, p *session.Player, actx session.AnswerContext) session.AnswerOutcome {
	pct := gs.PlayerWagers[p.ID]
	if actx.WagerPercent != nil {
		pct = *actx.WagerPercent
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	// SessionEngine has already added the standard award to p.Score; the bet
	// is placed on the score from before that award.
	current := p.Score - actx.ScoreResult.Points
	stake := current * pct / 100

	var newScore int
	if actx.Check.IsCorrect {
		newScore = current + stake
	} else {
		newScore = current - stake
		if newScore < 0 {
			newScore = 0
		}
	}

	delta := newScore - current
	wagerAmount := stake

	return session.AnswerOutcome{OverridePoints: &delta, WagerAmount: &wagerAmount}
}

func (Wager) OnRoundEnd(gs *session.GameState) session.RoundEndOutcome {
	return session.RoundEndOutcome{}
}

func (Wager) OnSessionEnd(gs *session.GameState) session.SessionEndOutcome {
	return session.SessionEndOutcome{}
}
