package answercheck

// matchAnyAcceptable resolves a learner answer against an ordered list of
// acceptable answers, returning on the first fuzzy match. Order decides
// which feedback string surfaces, not correctness. When nothing matches,
// the first acceptable entry is used as the normalized reference so
// downstream display is deterministic.
func matchAnyAcceptable(user string, acceptable []string, maxDistance int) Result {
	for _, want := range acceptable {
		if m := FuzzyMatch(user, want, maxDistance); m.Ok {
			return Result{
				IsCorrect:         true,
				Feedback:          m.Feedback,
				NormalizedAnswer:  Normalize(user),
				NormalizedCorrect: Normalize(want),
			}
		}
	}

	ref := ""
	if len(acceptable) > 0 {
		ref = acceptable[0]
	}
	return Result{
		NormalizedAnswer:  Normalize(user),
		NormalizedCorrect: Normalize(ref),
	}
}

// acceptableSet builds the acceptable-answer union for a question:
// the canonical correct string plus any declared alternates. Empty
// alternate entries from the extraction pipeline are dropped.
func acceptableSet(correct string, alternates []string) []string {
	set := make([]string, 0, 1+len(alternates))
	set = append(set, correct)
	for _, a := range alternates {
		if a != "" {
			set = append(set, a)
		}
	}
	return set
}
