package report

import (
	"strings"
	"testing"

	"github.com/abhisek/worksheetz/internal/answercheck"
	"github.com/abhisek/worksheetz/internal/grader"
)

func TestRender(t *testing.T) {
	rep := &grader.Report{
		Title: "Week 4",
		Outcomes: []grader.Outcome{
			{
				QuestionID:   "q1",
				QuestionText: "Complete the sentence.",
				Answered:     true,
				Result:       answercheck.Result{IsCorrect: true, Feedback: `Correct! (Spelling: "jumped")`},
			},
			{
				QuestionID:   "q2",
				QuestionText: "Match the sounds.",
				Answered:     true,
				Result:       answercheck.Result{PartialScore: 0.6, HasPartial: true, Feedback: "3/5 pairs correct"},
			},
			{
				QuestionID:   "q3",
				QuestionText: "Spiders are insects.",
			},
		},
		Summary: grader.Summary{Total: 3, Correct: 1, Score: 1.6, Percent: 53, Stars: 1},
	}

	out := Render(rep)

	for _, want := range []string{
		"Week 4",
		"q1",
		`Correct! (Spelling: "jumped")`,
		"60%",
		"3/5 pairs correct",
		"1.6/3",
		"★",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q\n%s", want, out)
		}
	}
}

func TestRenderUntitled(t *testing.T) {
	out := Render(&grader.Report{})
	if !strings.Contains(out, "Worksheet") {
		t.Errorf("expected default title, got:\n%s", out)
	}
}
