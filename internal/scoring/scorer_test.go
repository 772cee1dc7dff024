package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Seednode/quizengine/internal/modifier"
)

func TestCalculateScore_CorrectInstantAnswer(t *testing.T) {
	ctx := Context{
		ElapsedSeconds:  0,
		DeadlineSeconds: 20,
		Multiplier:      1.0,
		Streak:          0,
	}

	r := CalculateScore(true, ctx)

	assert.Equal(t, DefaultBasePoints, r.Points)
	assert.Equal(t, 1, r.NewStreak)
	assert.Equal(t, 1.5, r.NewMultiplier)
}

func TestCalculateScore_DecaysWithElapsedTime(t *testing.T) {
	ctx := Context{ElapsedSeconds: 10, DeadlineSeconds: 20, Multiplier: 1.0}

	r := CalculateScore(true, ctx)

	assert.Equal(t, DefaultBasePoints/2, r.Points)
}

func TestCalculateScore_Wrong_ResetsStreakAndMultiplier(t *testing.T) {
	ctx := Context{Streak: 4, Multiplier: 3.0, LastWrongStreak: 0}

	r := CalculateScore(false, ctx)

	assert.Equal(t, 0, r.Points)
	assert.Equal(t, 0, r.NewStreak)
	assert.Equal(t, 1.0, r.NewMultiplier)
	assert.Equal(t, 1, r.NewLastWrongStreak)
}

func TestCalculateScore_MultiplierCapsAtCeiling(t *testing.T) {
	ctx := Context{Multiplier: 5.0, MaxMultiplier: 5.0}

	r := CalculateScore(true, ctx)

	assert.Equal(t, 5.0, r.NewMultiplier)
}

func TestCalculateScore_FreeWrongAnswerPreservesStreak(t *testing.T) {
	ctx := Context{
		Streak:        3,
		Multiplier:    2.5,
		FreeWrongUsed: 0,
		Modifiers:     &modifier.Set{FreeWrongAnswers: 1},
	}

	r := CalculateScore(false, ctx)

	assert.Equal(t, 0, r.Points)
	assert.Equal(t, 3, r.NewStreak, "free wrong answer keeps the streak alive")
	assert.Equal(t, 2.5, r.NewMultiplier)
	assert.True(t, r.FreeWrongConsumed)
}

func TestCalculateScore_FreeWrongAnswerExhausted(t *testing.T) {
	ctx := Context{
		Streak:        3,
		Multiplier:    2.5,
		FreeWrongUsed: 1,
		Modifiers:     &modifier.Set{FreeWrongAnswers: 1},
	}

	r := CalculateScore(false, ctx)

	assert.Equal(t, 0, r.NewStreak)
	assert.False(t, r.FreeWrongConsumed)
}

func TestCalculateScore_ModifierBonuses(t *testing.T) {
	ctx := Context{
		ElapsedSeconds: 0,
		Multiplier:     1.0,
		Modifiers: &modifier.Set{
			FlatBonus:    50,
			PercentBonus: 10,
		},
	}

	r := CalculateScore(true, ctx)

	// base 1000 * 1.10 = 1100, + 50 flat = 1150
	assert.Equal(t, 1150, r.Points)
}

func TestCalculateScore_PhoenixBonus(t *testing.T) {
	ctx := Context{
		Multiplier:      1.0,
		LastWrongStreak: 3,
		Modifiers: &modifier.Set{
			PhoenixRecoveryStreak: 3,
			PhoenixRecoveryPoints: 200,
		},
	}

	r := CalculateScore(true, ctx)

	assert.True(t, r.PhoenixBonusApplied)
	assert.Equal(t, DefaultBasePoints+200, r.Points)
}

func TestCalculatePartialScore(t *testing.T) {
	ctx := Context{Multiplier: 2.0}

	r := CalculatePartialScore(0.5, ctx)
	assert.Equal(t, int(DefaultBasePoints*0.5*2.0), r.Points)
	assert.Equal(t, 1, r.NewStreak, "partial credit advances the streak like a correct answer")

	zero := CalculatePartialScore(0, ctx)
	assert.Equal(t, 0, zero.Points)
	assert.Equal(t, 0, zero.NewStreak)

	overOne := CalculatePartialScore(1.5, Context{Multiplier: 1.0})
	assert.Equal(t, DefaultBasePoints, overOne.Points, "partial credit is clamped at 1.0")
}

func TestApplyEndGameBonuses_AccuracyThresholdMet(t *testing.T) {
	mods := &modifier.Set{AccuracyBonusThreshold: 0.8, AccuracyBonusPoints: 500}
	stats := modifier.Stats{CorrectCount: 8, WrongCount: 2}

	assert.Equal(t, 1500, ApplyEndGameBonuses(1000, mods, stats))
}

func TestApplyEndGameBonuses_AccuracyThresholdMissed(t *testing.T) {
	mods := &modifier.Set{AccuracyBonusThreshold: 0.8, AccuracyBonusPoints: 500}
	stats := modifier.Stats{CorrectCount: 5, WrongCount: 5}

	assert.Equal(t, 1000, ApplyEndGameBonuses(1000, mods, stats))
}

func TestApplyEndGameBonuses_NilModifiers(t *testing.T) {
	assert.Equal(t, 1000, ApplyEndGameBonuses(1000, nil, modifier.Stats{}))
}

func TestCalculateModifiedXP(t *testing.T) {
	assert.Equal(t, 100, CalculateModifiedXP(100, nil, modifier.Stats{}))

	mods := &modifier.Set{XPMultiplierPercent: 50}
	assert.Equal(t, 150, CalculateModifiedXP(100, mods, modifier.Stats{}))
}
