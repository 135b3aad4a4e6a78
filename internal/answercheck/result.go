package answercheck

// Result is the engine's sole output. It is constructed fresh per
// validation call; the engine keeps no state between calls.
type Result struct {
	// IsCorrect is the overall verdict.
	IsCorrect bool

	// PartialScore is the fraction of gradable units the learner got
	// right (0.0-1.0). Meaningful only when HasPartial is true; only
	// multi-part types (matching, ordering, fill_blanks_multi,
	// writing_sentence, correction, categorization) produce it.
	PartialScore float64
	HasPartial   bool

	// Feedback is an optional human-readable note for the learner:
	// a spelling correction, a pair count, a model answer.
	Feedback string

	// NormalizedAnswer and NormalizedCorrect are the canonical forms
	// both sides of the comparison were reduced to. Kept for debugging
	// and error tracking; not meant for direct display to the child.
	NormalizedAnswer  string
	NormalizedCorrect string
}

// partial marks r as carrying a partial score and returns it.
func (r Result) partial(score float64) Result {
	r.PartialScore = score
	r.HasPartial = true
	return r
}
