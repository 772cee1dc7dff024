// Package xp declares the XP-award collaborator: an
// external service the engine calls non-fatally at end of session.
package xp

import "github.com/Seednode/quizengine/internal/modifier"

// Award is the result of awarding experience to a player.
type Award struct {
	LevelUp          bool
	OldLevel         int
	NewLevel         int
	NewlyUnlockedPerks []string
}

// Awarder is the external collaborator that turns base XP into a
// leveled-up/unlocked-perks result, consulted by SessionEngine.endSession.
type Awarder interface {
	AwardXP(playerID string, amount int) (*Award, error)
}

// BaseXPFromScore is the default score->XP transform used before any
// modifier is applied; kept alongside the Awarder interface since both the
// engine and its tests need a deterministic starting point.
func BaseXPFromScore(score int) int {
	if score < 0 {
		return 0
	}
	return score / 10
}

// ModifiersContext aliases the whole modifier.Set for XP transforms,
// named here to avoid internal/xp importing internal/engine.
type ModifiersContext = modifier.Set
