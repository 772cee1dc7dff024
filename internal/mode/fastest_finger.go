package mode

import "github.com/Seednode/quizengine/internal/session"

// FastestFinger: the first correct answer in a round keeps its points;
// every later correct answer is zeroed. Since SessionEngine serializes
// answer submissions per lobby, the decision is made on the answering
// player's own outcome: a later correct answer returns OverridePoints of 0,
// which replaces the standard award the engine has already added.
type FastestFinger struct{}

func (FastestFinger) Mode() session.GameMode { return session.ModeFastestFinger }

func (FastestFinger) DeadlineSeconds() int { return 60 }

func (FastestFinger) Init(gs *session.GameState, cfg session.ModeConfig, rng session.RNG) {
	gs.FirstCorrectPlayerID = ""
}

func (FastestFinger) OnAnswer(gs *session.GameState, p *session.Player, actx session.AnswerContext) session.AnswerOutcome {
	if !actx.Check.IsCorrect {
		return session.AnswerOutcome{}
	}

	if gs.FirstCorrectPlayerID == "" {
		gs.FirstCorrectPlayerID = p.ID
		isFirst := true
		return session.AnswerOutcome{IsFirstCorrect: &isFirst}
	}

	isFirst := false
	zero := 0
	return session.AnswerOutcome{IsFirstCorrect: &isFirst, OverridePoints: &zero}
}

func (FastestFinger) OnRoundEnd(gs *session.GameState) session.RoundEndOutcome {
	return session.RoundEndOutcome{}
}

func (FastestFinger) OnSessionEnd(gs *session.GameState) session.SessionEndOutcome {
	return session.SessionEndOutcome{}
}
