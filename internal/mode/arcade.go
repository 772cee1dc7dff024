// Package mode implements the six pluggable ModeRulesets.
package mode

import "github.com/Seednode/quizengine/internal/session"

// Arcade is the default mode: no overrides, 60-second rounds, standard
// scoring.
type Arcade struct{}

func (Arcade) Mode() session.GameMode { return session.ModeArcade }

func (Arcade) DeadlineSeconds() int { return 60 }

func (Arcade) Init(gs *session.GameState, cfg session.ModeConfig, rng session.RNG) {}

func (Arcade) OnAnswer(gs *session.GameState, p *session.Player, actx session.AnswerContext) session.AnswerOutcome {
	return session.AnswerOutcome{}
}

func (Arcade) OnRoundEnd(gs *session.GameState) session.RoundEndOutcome {
	return session.RoundEndOutcome{}
}

func (Arcade) OnSessionEnd(gs *session.GameState) session.SessionEndOutcome {
	return session.SessionEndOutcome{}
}
