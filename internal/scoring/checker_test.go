package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Seednode/quizengine/internal/catalog"
)

func TestCheck_MultipleChoice(t *testing.T) {
	q := catalog.Question{Kind: catalog.MultipleChoice, CorrectAnswer: "Berlin"}

	assert.Equal(t, CheckResult{true, 1.0}, Check("Berlin", q))
	assert.Equal(t, CheckResult{false, 0}, Check("Hamburg", q))
	assert.Equal(t, CheckResult{false, 0}, Check("berlin", q), "multiple choice is case-sensitive exact match")
}

func TestCheck_FreeText(t *testing.T) {
	q := catalog.Question{Kind: catalog.FreeText, CorrectAnswer: "Goethe"}

	assert.True(t, Check("goethe", q).IsCorrect)
	assert.True(t, Check("  Goethe  ", q).IsCorrect)
	assert.False(t, Check("Schiller", q).IsCorrect)
}

func TestCheck_EstimationAbsoluteTolerance(t *testing.T) {
	q := catalog.Question{
		Kind: catalog.Estimation,
		Estimation: &catalog.EstimationMeta{
			CorrectValue:  1989,
			Tolerance:     10,
			ToleranceType: catalog.ToleranceAbsolute,
		},
	}

	exact := Check("1989", q)
	assert.True(t, exact.IsCorrect)
	assert.Equal(t, 1.0, exact.PartialScore)

	near := Check("1994", q)
	assert.True(t, near.IsCorrect)
	assert.InDelta(t, 0.5, near.PartialScore, 0.01)

	far := Check("2100", q)
	assert.False(t, far.IsCorrect)
	assert.Equal(t, 0.0, far.PartialScore)

	malformed := Check("not-a-number", q)
	assert.False(t, malformed.IsCorrect)
}

func TestCheck_EstimationPercentageTolerance(t *testing.T) {
	q := catalog.Question{
		Kind: catalog.Estimation,
		Estimation: &catalog.EstimationMeta{
			CorrectValue:  2962,
			Tolerance:     5,
			ToleranceType: catalog.TolerancePercentage,
		},
	}

	// 5% of 2962 ~= 148.1
	within := Check("3050", q)
	assert.True(t, within.IsCorrect)

	outside := Check("4000", q)
	assert.False(t, outside.IsCorrect)
}

func TestCheck_Ordering(t *testing.T) {
	q := catalog.Question{
		Kind:     catalog.Ordering,
		Ordering: &catalog.OrderingMeta{CorrectOrder: []int{0, 1, 2}},
	}

	perfect := Check("[0,1,2]", q)
	assert.True(t, perfect.IsCorrect)
	assert.Equal(t, 1.0, perfect.PartialScore)

	partial := Check("0,2,1", q)
	assert.True(t, partial.IsCorrect)
	assert.InDelta(t, 1.0/3, partial.PartialScore, 0.01, "only index 0 lands in the right slot")

	wrongLength := Check("[0,1]", q)
	assert.False(t, wrongLength.IsCorrect)

	malformed := Check("[0,x,2]", q)
	assert.False(t, malformed.IsCorrect)
}

func TestCheck_Matching(t *testing.T) {
	q := catalog.Question{
		Kind: catalog.Matching,
		Matching: &catalog.MatchingMeta{Pairs: []catalog.MatchingPair{
			{Left: "Berlin", Right: "Berlin"},
			{Left: "München", Right: "Bayern"},
			{Left: "Hamburg", Right: "Hamburg"},
		}},
	}

	perfect := Check("Berlin=Berlin;München=Bayern;Hamburg=Hamburg", q)
	assert.True(t, perfect.IsCorrect)
	assert.Equal(t, 1.0, perfect.PartialScore)

	partial := Check("Berlin=Berlin;München=Hamburg;Hamburg=Hamburg", q)
	assert.True(t, partial.IsCorrect)
	assert.InDelta(t, 2.0/3, partial.PartialScore, 0.01)

	malformed := Check("not-pairs-at-all", q)
	assert.False(t, malformed.IsCorrect)

	empty := Check("", q)
	assert.False(t, empty.IsCorrect)
}

func TestCheck_TrueFalse(t *testing.T) {
	q := catalog.Question{Kind: catalog.TrueFalse, CorrectAnswer: "Wahr"}

	assert.True(t, Check("Wahr", q).IsCorrect)
	assert.False(t, Check("Falsch", q).IsCorrect)
}
