package catalog

// fallbackQuestions is the engine-local hardcoded question set substituted
// when a lobby's configured question sets yield nothing usable. Fallback
// questions always carry negative identifiers so they're trivially
// distinguishable from persisted ones.
var fallbackQuestions = []Question{
	{ID: -1, Prompt: "Welche Stadt ist die Hauptstadt von Deutschland?", Options: []string{"Berlin", "Hamburg", "München", "Köln"}, CorrectAnswer: "Berlin", Kind: MultipleChoice},
	{ID: -2, Prompt: "Der Rhein fließt durch Köln.", Options: []string{"Wahr", "Falsch"}, CorrectAnswer: "Wahr", Kind: TrueFalse},
	{ID: -3, Prompt: "Wie viele Bundesländer hat Deutschland?", Options: []string{"13", "14", "16", "18"}, CorrectAnswer: "16", Kind: MultipleChoice},
	{ID: -4, Prompt: "Wer schrieb \"Faust\"?", Kind: FreeText, CorrectAnswer: "Goethe"},
	{ID: -5, Prompt: "Das Oktoberfest findet in ___ statt.", Kind: FillInBlank, CorrectAnswer: "München"},
	{ID: -6, Prompt: "In welchem Jahr fiel die Berliner Mauer?", Kind: Estimation, CorrectAnswer: "1989",
		Estimation: &EstimationMeta{CorrectValue: 1989, Tolerance: 1, ToleranceType: ToleranceAbsolute}},
	{ID: -7, Prompt: "Wie hoch ist die Zugspitze in Metern?", Kind: Estimation, CorrectAnswer: "2962",
		Estimation: &EstimationMeta{CorrectValue: 2962, Tolerance: 5, ToleranceType: TolerancePercentage}},
	{ID: -8, Prompt: "Bringe die folgenden Flüsse nach Länge in Deutschland in absteigende Reihenfolge (Rhein, Elbe, Donau).", Kind: Ordering,
		CorrectAnswer: "[0,1,2]", Ordering: &OrderingMeta{CorrectOrder: []int{0, 1, 2}}},
	{ID: -9, Prompt: "Ordne jede Stadt ihrem Bundesland zu.", Kind: Matching,
		CorrectAnswer: "Berlin=Berlin;München=Bayern;Hamburg=Hamburg",
		Matching: &MatchingMeta{Pairs: []MatchingPair{
			{Left: "Berlin", Right: "Berlin"},
			{Left: "München", Right: "Bayern"},
			{Left: "Hamburg", Right: "Hamburg"},
		}}},
	{ID: -10, Prompt: "Welches Tier ist auf dem Wappen Deutschlands abgebildet?", Options: []string{"Adler", "Löwe", "Bär", "Wolf"}, CorrectAnswer: "Adler", Kind: MultipleChoice},
}

// Fallback returns a copy of the engine-local built-in question set, used
// when the configured question sets yield zero usable questions.
func Fallback() []Question {
	out := make([]Question, len(fallbackQuestions))
	copy(out, fallbackQuestions)
	return out
}
