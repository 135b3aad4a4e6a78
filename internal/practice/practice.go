// Package practice turns missed attempts into a short review list.
// It is the ad hoc consumer of the engine's exported Normalize and
// FuzzyMatch: near-identical misses of the same answer are folded into
// one practice item instead of repeating.
package practice

import (
	"sort"

	"github.com/abhisek/worksheetz/internal/answercheck"
	"github.com/abhisek/worksheetz/internal/store"
)

// DefaultLimit caps the practice list at a size a child can work through.
const DefaultLimit = 10

// Item is one thing to practice: an answer the learner keeps missing.
type Item struct {
	QuestionText string
	Correct      string

	// Misses counts how many folded attempts missed this answer.
	Misses int

	// LastAnswer is the learner's most recent wrong answer, kept so a
	// parent can see what the child is confusing it with.
	LastAnswer string
}

// BuildList folds missed attempts into ranked practice items. Attempts
// are expected newest first (as QueryMissedAttempts returns them); the
// newest wrong answer per item wins. Items are ranked by miss count,
// then alphabetically by answer for a stable order, and capped at limit
// (DefaultLimit when limit is 0).
func BuildList(missed []store.AttemptRecord, limit int) []Item {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var items []Item
	for _, rec := range missed {
		if rec.CorrectAnswer == "" {
			continue
		}
		if i := findItem(items, rec); i >= 0 {
			items[i].Misses++
			continue
		}
		items = append(items, Item{
			QuestionText: rec.QuestionText,
			Correct:      rec.CorrectAnswer,
			Misses:       1,
			LastAnswer:   rec.LearnerAnswer,
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		if items[a].Misses != items[b].Misses {
			return items[a].Misses > items[b].Misses
		}
		return items[a].Correct < items[b].Correct
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// findItem locates an existing item this attempt folds into: the same
// prompt (normalized) and a correct answer within one edit, so "jumped"
// and a re-extraction's "jumped." count as one item.
func findItem(items []Item, rec store.AttemptRecord) int {
	for i, it := range items {
		if answercheck.Normalize(it.QuestionText) != answercheck.Normalize(rec.QuestionText) {
			continue
		}
		if answercheck.FuzzyMatch(rec.CorrectAnswer, it.Correct, 1).Ok {
			return i
		}
	}
	return -1
}
