package mode

import "github.com/Seednode/quizengine/internal/session"

// New resolves a GameMode to its concrete ModeRuleset. Unknown modes fall
// back to Arcade.
func New(m session.GameMode) session.ModeRuleset {
	switch m {
	case session.ModePractice:
		return Practice{}
	case session.ModeFastestFinger:
		return FastestFinger{}
	case session.ModeSurvival:
		return Survival{}
	case session.ModeWager:
		return Wager{}
	case session.ModeDuel:
		return Duel{}
	default:
		return Arcade{}
	}
}
