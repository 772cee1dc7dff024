// Package modifier declares the ModifierOracle collaborator: an external service treated as a pure lookup by the engine.
package modifier

// Set is the opaque bag of scalars a player's modifiers contribute to
// scoring and XP. Every field is optional; a nil Set behaves as "no
// modifiers".
type Set struct {
	// FlatBonus is added to the base award on a correct answer.
	FlatBonus int
	// PercentBonus scales the base award by (100+PercentBonus)/100.
	PercentBonus int
	// FreeWrongAnswers lets a player take this many wrong answers without
	// losing their streak, consumed in submission order.
	FreeWrongAnswers int
	// LateBonusThresholdSeconds, when > 0, awards LateBonusPoints if the
	// player answers correctly with elapsed >= this many seconds.
	LateBonusThresholdSeconds int
	LateBonusPoints           int
	// AccuracyBonusThreshold, when > 0, awards AccuracyBonusPoints at
	// end-game if the player's accuracy (correct/total) meets it.
	AccuracyBonusThreshold float64
	AccuracyBonusPoints    int
	// PhoenixRecoveryStreak, when > 0, awards PhoenixRecoveryPoints the
	// first time a player answers correctly after a wrong streak of at
	// least this length.
	PhoenixRecoveryStreak int
	PhoenixRecoveryPoints int
	// XPMultiplierPercent scales awarded XP by (100+XPMultiplierPercent)/100.
	XPMultiplierPercent int
	// CosmeticEffects is an opaque bag of client-rendered cosmetic tags.
	CosmeticEffects map[string]string
	// Title is the player's currently active display title, if any.
	Title string
}

// Stats summarizes a player's performance, used by end-game bonus and XP
// hooks that key off accuracy or totals rather than a single answer.
type Stats struct {
	CorrectCount int
	WrongCount   int
	TotalScore   int
	BestStreak   int
}

// Oracle is the external modifier service, resolved once at session start,
// per player, non-fatally.
type Oracle interface {
	// ModifiersFor returns the gameplay modifiers, cosmetic configuration,
	// and active title for a player. A failure here is non-fatal: the
	// caller logs and continues with a nil Set.
	ModifiersFor(playerID string) (*Set, error)
}
