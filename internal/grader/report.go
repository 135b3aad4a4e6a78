package grader

import "github.com/abhisek/worksheetz/internal/answercheck"

// Outcome is the graded result of one unit (a question, or one
// sub-question of a reading passage).
type Outcome struct {
	QuestionID   string
	QuestionType answercheck.QuestionType
	QuestionText string

	// Answered is false when the answer sheet had no entry for this
	// question; the unit then grades as incorrect.
	Answered bool

	Result answercheck.Result
}

// Score returns the unit's contribution to the session score: 1 when
// correct, the partial score for partial-credit types, otherwise 0.
func (o Outcome) Score() float64 {
	if o.Result.IsCorrect {
		return 1
	}
	if o.Result.HasPartial {
		return o.Result.PartialScore
	}
	return 0
}

// Summary aggregates a graded worksheet.
type Summary struct {
	SessionID string
	Title     string
	Total     int
	Correct   int

	// Score is earned units including partial credit.
	Score   float64
	Percent float64
	Stars   int
}

// Report is the full output of grading one worksheet.
type Report struct {
	SessionID string
	Title     string
	Outcomes  []Outcome
	Summary   Summary
}

// Star thresholds as percent of the available units.
const (
	threeStarPercent = 90
	twoStarPercent   = 75
	oneStarPercent   = 50
)

func summarize(sessionID, title string, outcomes []Outcome) Summary {
	sum := Summary{SessionID: sessionID, Title: title, Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Result.IsCorrect {
			sum.Correct++
		}
		sum.Score += o.Score()
	}
	if sum.Total > 0 {
		sum.Percent = sum.Score / float64(sum.Total) * 100
	}
	switch {
	case sum.Total == 0:
	case sum.Percent >= threeStarPercent:
		sum.Stars = 3
	case sum.Percent >= twoStarPercent:
		sum.Stars = 2
	case sum.Percent >= oneStarPercent:
		sum.Stars = 1
	}
	return sum
}
