package mode

import "github.com/Seednode/quizengine/internal/session"

// Practice has no clock and no scoring. A wrong answer doesn't advance the
// round: the server waits for every player to send practice-continue
// before moving on. XP award at session end is 0.
type Practice struct{}

func (Practice) Mode() session.GameMode { return session.ModePractice }

// DeadlineSeconds 0 means "no clock".
func (Practice) DeadlineSeconds() int { return 0 }

func (Practice) Init(gs *session.GameState, cfg session.ModeConfig, rng session.RNG) {}

func (Practice) OnAnswer(gs *session.GameState, p *session.Player, actx session.AnswerContext) session.AnswerOutcome {
	zero := 0
	outcome := session.AnswerOutcome{OverridePoints: &zero}

	if !actx.Check.IsCorrect {
		outcome.WaitForContinue = true
		outcome.BlockAdvance = true
	}

	return outcome
}

func (Practice) OnRoundEnd(gs *session.GameState) session.RoundEndOutcome {
	return session.RoundEndOutcome{}
}

func (Practice) OnSessionEnd(gs *session.GameState) session.SessionEndOutcome {
	return session.SessionEndOutcome{SkipXP: true}
}
