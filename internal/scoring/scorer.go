package scoring

import (
	"math"

	"github.com/Seednode/quizengine/internal/modifier"
)

// DefaultMaxMultiplier is the multiplier ceiling when a mode doesn't set one.
const DefaultMaxMultiplier = 5.0

// DefaultBasePoints is the maximum number of base points a correct,
// instant answer can earn before multiplier/modifier adjustments.
const DefaultBasePoints = 1000

// Context bundles everything Scorer needs to turn one answer into points
// plus updated streak/multiplier state. The Scorer never
// mutates a Player; callers apply Result to their own state.
type Context struct {
	ElapsedSeconds  int
	DeadlineSeconds int // 0 means "no clock" (practice mode)
	Multiplier      float64
	Streak          int
	LastWrongStreak int
	FreeWrongUsed   int
	MaxMultiplier   float64 // 0 defaults to DefaultMaxMultiplier
	Modifiers       *modifier.Set
}

// Result is what the caller (SessionEngine) applies back onto Player state.
type Result struct {
	Points              int
	NewStreak           int
	NewMultiplier       float64
	NewLastWrongStreak  int
	FreeWrongConsumed   bool
	PhoenixBonusApplied bool
}

func (c Context) maxMultiplier() float64 {
	if c.MaxMultiplier > 0 {
		return c.MaxMultiplier
	}
	return DefaultMaxMultiplier
}

// basePoints decays linearly from DefaultBasePoints to zero over the
// question's deadline.
func basePoints(elapsedSeconds, deadlineSeconds int) float64 {
	if deadlineSeconds <= 0 {
		return DefaultBasePoints
	}
	ratio := 1 - float64(elapsedSeconds)/float64(deadlineSeconds)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return DefaultBasePoints * ratio
}

// advanceMultiplier is the streak-based growth rule: each correct answer
// grows the multiplier, capped at the ceiling.
func advanceMultiplier(current, max float64) float64 {
	next := current + 0.5
	if next > max {
		return max
	}
	return next
}

func applyModifierBonuses(points float64, correct bool, elapsedSeconds int, mods *modifier.Set, lastWrongStreak int) (float64, bool) {
	if mods == nil {
		return points, false
	}

	phoenix := false

	if correct {
		if mods.PercentBonus != 0 {
			points = points * float64(100+mods.PercentBonus) / 100
		}
		if mods.FlatBonus != 0 {
			points += float64(mods.FlatBonus)
		}
		if mods.LateBonusThresholdSeconds > 0 && elapsedSeconds >= mods.LateBonusThresholdSeconds {
			points += float64(mods.LateBonusPoints)
		}
		if mods.PhoenixRecoveryStreak > 0 && lastWrongStreak >= mods.PhoenixRecoveryStreak {
			points += float64(mods.PhoenixRecoveryPoints)
			phoenix = true
		}
	}

	return points, phoenix
}

// CalculateScore is the full-correctness entry point.
func CalculateScore(correct bool, ctx Context) Result {
	if !correct {
		return wrongResult(ctx)
	}

	base := basePoints(ctx.ElapsedSeconds, ctx.DeadlineSeconds)
	bonused, phoenix := applyModifierBonuses(base, true, ctx.ElapsedSeconds, ctx.Modifiers, ctx.LastWrongStreak)
	points := bonused * ctx.Multiplier

	return Result{
		Points:              int(math.Round(points)),
		NewStreak:           ctx.Streak + 1,
		NewMultiplier:       advanceMultiplier(ctx.Multiplier, ctx.maxMultiplier()),
		NewLastWrongStreak:  0,
		PhoenixBonusApplied: phoenix,
	}
}

// CalculatePartialScore is the partial-correctness entry point:
// estimation/ordering/matching with 0 < partial < 1 behave like a correct
// answer for streak/multiplier purposes.
func CalculatePartialScore(partial float64, ctx Context) Result {
	if partial <= 0 {
		return wrongResult(ctx)
	}
	if partial > 1 {
		partial = 1
	}

	base := basePoints(ctx.ElapsedSeconds, ctx.DeadlineSeconds)
	bonused, phoenix := applyModifierBonuses(base, true, ctx.ElapsedSeconds, ctx.Modifiers, ctx.LastWrongStreak)
	points := bonused * partial * ctx.Multiplier

	return Result{
		Points:              int(math.Round(points)),
		NewStreak:           ctx.Streak + 1,
		NewMultiplier:       advanceMultiplier(ctx.Multiplier, ctx.maxMultiplier()),
		NewLastWrongStreak:  0,
		PhoenixBonusApplied: phoenix,
	}
}

func wrongResult(ctx Context) Result {
	// Free-wrong-answer consumption: preserve streak/multiplier instead of
	// resetting; the wrong streak still counts up.
	if ctx.Modifiers != nil && ctx.FreeWrongUsed < ctx.Modifiers.FreeWrongAnswers {
		return Result{
			Points:             0,
			NewStreak:          ctx.Streak,
			NewMultiplier:      ctx.Multiplier,
			NewLastWrongStreak: ctx.LastWrongStreak + 1,
			FreeWrongConsumed:  true,
		}
	}

	return Result{
		Points:             0,
		NewStreak:          0,
		NewMultiplier:       1,
		NewLastWrongStreak: ctx.LastWrongStreak + 1,
	}
}

// EndGameStats is the subset of per-player totals applyEndGameBonuses and
// calculateModifiedXP need.
type EndGameStats = modifier.Stats

// ApplyEndGameBonuses adds modifier-driven end-of-game bonuses (currently
// the accuracy bonus) on top of a player's total score.
func ApplyEndGameBonuses(totalScore int, mods *modifier.Set, stats EndGameStats) int {
	if mods == nil || mods.AccuracyBonusThreshold <= 0 {
		return totalScore
	}

	total := stats.CorrectCount + stats.WrongCount
	if total == 0 {
		return totalScore
	}

	accuracy := float64(stats.CorrectCount) / float64(total)
	if accuracy >= mods.AccuracyBonusThreshold {
		return totalScore + mods.AccuracyBonusPoints
	}
	return totalScore
}

// CalculateModifiedXP transforms base XP using a player's modifiers.
func CalculateModifiedXP(baseXP int, mods *modifier.Set, stats EndGameStats) int {
	if mods == nil {
		return baseXP
	}
	xp := float64(baseXP)
	if mods.XPMultiplierPercent != 0 {
		xp = xp * float64(100+mods.XPMultiplierPercent) / 100
	}
	return int(math.Round(xp))
}
