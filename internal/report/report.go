// Package report renders graded worksheets for the terminal.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/grader"
)

// Color palette: kid-friendly, bright but not garish
var (
	primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	success = lipgloss.Color("#22C55E") // Green
	warn    = lipgloss.Color("#F97316") // Orange
	failure = lipgloss.Color("#F43F5E") // Rose
	dim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primary)
	correctStyle  = lipgloss.NewStyle().Foreground(success)
	partialStyle  = lipgloss.NewStyle().Foreground(warn)
	wrongStyle    = lipgloss.NewStyle().Foreground(failure)
	feedbackStyle = lipgloss.NewStyle().Foreground(dim).Italic(true)
	summaryStyle  = lipgloss.NewStyle().Bold(true)
)

// Render formats a graded worksheet as a line-per-question report with a
// summary footer.
func Render(r *grader.Report) string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "Worksheet"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for _, o := range r.Outcomes {
		b.WriteString(renderOutcome(o))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"Score: %.1f/%d (%.0f%%)  %s",
		r.Summary.Score, r.Summary.Total, r.Summary.Percent, stars(r.Summary.Stars),
	)))
	b.WriteString("\n")
	return b.String()
}

func renderOutcome(o grader.Outcome) string {
	var mark string
	switch {
	case o.Result.IsCorrect:
		mark = correctStyle.Render("✓")
	case o.Result.HasPartial && o.Result.PartialScore > 0:
		mark = partialStyle.Render(fmt.Sprintf("~ %.0f%%", o.Result.PartialScore*100))
	default:
		mark = wrongStyle.Render("✗")
	}

	line := fmt.Sprintf("%s  %s %s", o.QuestionID, mark, o.QuestionText)
	if o.Result.Feedback != "" {
		line += "\n    " + feedbackStyle.Render(o.Result.Feedback)
	}
	return line
}

func stars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("★", n)
}
