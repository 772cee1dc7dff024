// Package scoring implements the AnswerChecker and Scorer pure-function
// collaborators. Neither holds state nor performs I/O.
package scoring

import (
	"strconv"
	"strings"

	"github.com/Seednode/quizengine/internal/catalog"
)

// CheckResult is the AnswerChecker's return value: correctness plus a
// partial-credit ratio in [0,1].
type CheckResult struct {
	IsCorrect    bool
	PartialScore float64
}

// Check implements per-kind rules. Parse failures never panic;
// they resolve to CheckResult{false, 0}.
func Check(answer string, q catalog.Question) CheckResult {
	switch q.Kind {
	case catalog.MultipleChoice, catalog.TrueFalse:
		return exactMatch(answer, q.CorrectAnswer)

	case catalog.FreeText, catalog.FillInBlank:
		return caseInsensitiveMatch(answer, q.CorrectAnswer)

	case catalog.Estimation:
		if q.Estimation == nil {
			return exactMatch(answer, q.CorrectAnswer)
		}
		return checkEstimation(answer, *q.Estimation)

	case catalog.Ordering:
		if q.Ordering == nil || len(q.Ordering.CorrectOrder) == 0 {
			return exactMatch(answer, q.CorrectAnswer)
		}
		return checkOrdering(answer, *q.Ordering)

	case catalog.Matching:
		if q.Matching == nil || len(q.Matching.Pairs) == 0 {
			return exactMatch(answer, q.CorrectAnswer)
		}
		return checkMatching(answer, *q.Matching)

	default:
		return exactMatch(answer, q.CorrectAnswer)
	}
}

func exactMatch(answer, correct string) CheckResult {
	if answer == correct {
		return CheckResult{true, 1.0}
	}
	return CheckResult{false, 0}
}

func caseInsensitiveMatch(answer, correct string) CheckResult {
	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(correct)) {
		return CheckResult{true, 1.0}
	}
	return CheckResult{false, 0}
}

func checkEstimation(answer string, meta catalog.EstimationMeta) CheckResult {
	x, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return CheckResult{false, 0}
	}

	distance := x - meta.CorrectValue
	if distance < 0 {
		distance = -distance
	}

	var effectiveTolerance float64
	switch meta.ToleranceType {
	case catalog.TolerancePercentage:
		abs := meta.CorrectValue
		if abs < 0 {
			abs = -abs
		}
		effectiveTolerance = abs * meta.Tolerance / 100
	default:
		effectiveTolerance = meta.Tolerance
	}

	if effectiveTolerance <= 0 {
		if distance == 0 {
			return CheckResult{true, 1.0}
		}
		return CheckResult{false, 0}
	}

	partial := 1 - distance/effectiveTolerance
	if partial < 0 {
		partial = 0
	}
	return CheckResult{partial > 0, partial}
}

func checkOrdering(answer string, meta catalog.OrderingMeta) CheckResult {
	parsed, ok := parseIntSequence(answer)
	if !ok || len(parsed) != len(meta.CorrectOrder) {
		return CheckResult{false, 0}
	}

	matches := 0
	for i, v := range parsed {
		if v == meta.CorrectOrder[i] {
			matches++
		}
	}

	partial := float64(matches) / float64(len(meta.CorrectOrder))
	return CheckResult{partial > 0, partial}
}

func checkMatching(answer string, meta catalog.MatchingMeta) CheckResult {
	submitted, ok := parsePairs(answer)
	if !ok {
		return CheckResult{false, 0}
	}

	correctSet := make(map[catalog.MatchingPair]bool, len(meta.Pairs))
	for _, p := range meta.Pairs {
		correctSet[p] = true
	}

	matches := 0
	for _, p := range submitted {
		if correctSet[p] {
			matches++
		}
	}

	partial := float64(matches) / float64(len(meta.Pairs))
	return CheckResult{partial > 0, partial}
}

// parseIntSequence parses a comma-separated or bracketed list of integers,
// e.g. "[2,0,1]" or "2,0,1". Returns ok=false on any malformed token.
func parseIntSequence(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil, false
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// parsePairs parses a ';'-delimited list of "left=right" tokens.
func parsePairs(s string) ([]catalog.MatchingPair, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	tokens := strings.Split(s, ";")
	out := make([]catalog.MatchingPair, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		kv := strings.SplitN(t, "=", 2)
		if len(kv) != 2 {
			return nil, false
		}
		out = append(out, catalog.MatchingPair{Left: strings.TrimSpace(kv[0]), Right: strings.TrimSpace(kv[1])})
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
