package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_ReturnsAllAnswerKinds(t *testing.T) {
	qs := Fallback()
	require.NotEmpty(t, qs)

	seen := make(map[AnswerKind]bool)
	for _, q := range qs {
		seen[q.Kind] = true
		assert.Less(t, q.ID, int64(0), "fallback questions carry negative IDs")
	}

	for _, k := range []AnswerKind{MultipleChoice, TrueFalse, FreeText, FillInBlank, Estimation, Ordering, Matching} {
		assert.True(t, seen[k], "expected fallback set to exercise %s", k)
	}
}

func TestFallback_ReturnsDefensiveCopy(t *testing.T) {
	qs := Fallback()
	qs[0].Prompt = "mutated"

	qs2 := Fallback()
	assert.NotEqual(t, "mutated", qs2[0].Prompt)
}
