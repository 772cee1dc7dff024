package mode

import (
	"github.com/Seednode/quizengine/internal/scoring"
	"github.com/Seednode/quizengine/internal/session"
)

// Duel shuffles players into a challenge queue; the front two duel each
// round while the rest spectate.
type Duel struct{}

func (Duel) Mode() session.GameMode { return session.ModeDuel }

func (Duel) DeadlineSeconds() int { return 30 }

func (Duel) Init(gs *session.GameState, cfg session.ModeConfig, rng session.RNG) {
	ids := make([]string, len(gs.Roster))
	for i, p := range gs.Roster {
		ids[i] = p.ID
	}
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	gs.DuelQueue = ids
	setDuelPair(gs)
}

// setDuelPair marks the front two of DuelQueue as dueling and everyone
// else as spectating, keeping the {p : p.IsDueling} == CurrentDuelPair
// invariant.
func setDuelPair(gs *session.GameState) {
	for _, p := range gs.Roster {
		p.IsDueling = false
		p.IsSpectating = true
	}

	if len(gs.DuelQueue) < 2 {
		gs.CurrentDuelPair = [2]string{}
		return
	}

	gs.CurrentDuelPair = [2]string{gs.DuelQueue[0], gs.DuelQueue[1]}
	for _, id := range gs.CurrentDuelPair {
		if p, ok := gs.Player(id); ok {
			p.IsDueling = true
			p.IsSpectating = false
		}
	}
}

// DuelPair exposes setDuelPair for SessionEngine's round-start wiring.
func DuelPair(gs *session.GameState) {
	setDuelPair(gs)
}

func (Duel) OnAnswer(gs *session.GameState, p *session.Player, actx session.AnswerContext) session.AnswerOutcome {
	return session.AnswerOutcome{}
}

func (Duel) OnRoundEnd(gs *session.GameState) session.RoundEndOutcome {
	if gs.CurrentDuelPair[0] == "" || gs.CurrentDuelPair[1] == "" {
		return session.RoundEndOutcome{}
	}

	a, aok := gs.Player(gs.CurrentDuelPair[0])
	b, bok := gs.Player(gs.CurrentDuelPair[1])
	if !aok || !bok || gs.CurrentQuestion == nil {
		return session.RoundEndOutcome{}
	}

	aCheck := scoring.Check(a.CurrentAnswer, *gs.CurrentQuestion)
	bCheck := scoring.Check(b.CurrentAnswer, *gs.CurrentQuestion)

	var winner, loser *session.Player
	draw := false

	switch {
	case aCheck.IsCorrect && !bCheck.IsCorrect:
		winner, loser = a, b
	case bCheck.IsCorrect && !aCheck.IsCorrect:
		winner, loser = b, a
	case aCheck.IsCorrect && bCheck.IsCorrect:
		switch {
		case a.AnswerElapsedSeconds < b.AnswerElapsedSeconds:
			winner, loser = a, b
		case b.AnswerElapsedSeconds < a.AnswerElapsedSeconds:
			winner, loser = b, a
		default:
			draw = true
		}
	default:
		draw = true
	}

	if draw {
		return session.RoundEndOutcome{Duel: &session.DuelRoundResult{Draw: true}}
	}

	gs.DuelWins[winner.ID]++

	rest := append([]string{}, gs.DuelQueue[2:]...)
	gs.DuelQueue = append([]string{winner.ID}, append(rest, loser.ID)...)
	setDuelPair(gs)

	return session.RoundEndOutcome{Duel: &session.DuelRoundResult{WinnerID: winner.ID, LoserID: loser.ID}}
}

func (Duel) OnSessionEnd(gs *session.GameState) session.SessionEndOutcome {
	best := ""
	bestWins := -1
	for _, p := range gs.Roster {
		if w := gs.DuelWins[p.ID]; w > bestWins {
			bestWins = w
			best = p.ID
		}
	}
	return session.SessionEndOutcome{DuelMostWinsPlayerID: best}
}
