package answercheck

import (
	"fmt"
	"sort"
	"strings"
)

// checkMatching counts correct left-to-right pairs. Per-slot comparison
// is exact normalized equality, not fuzzy: matched items are picked from
// the sheet, not typed freely.
func checkMatching(q *Matching, ans Map) Result {
	total := len(q.CorrectPairs)
	if total == 0 {
		return Result{
			Feedback:          "This question has no pairs to grade.",
			NormalizedAnswer:  normalizeMap(ans),
			NormalizedCorrect: Normalize(q.Correct),
		}
	}

	byLeft := normalizedLookup(ans)
	matched := 0
	for _, p := range q.CorrectPairs {
		if got, ok := byLeft[Normalize(p.Left)]; ok && Normalize(got) == Normalize(p.Right) {
			matched++
		}
	}

	r := Result{
		IsCorrect:         matched == total,
		NormalizedAnswer:  normalizeMap(ans),
		NormalizedCorrect: normalizePairs(q.CorrectPairs),
	}
	if !r.IsCorrect {
		r.Feedback = fmt.Sprintf("%d/%d pairs correct", matched, total)
	}
	return r.partial(float64(matched) / float64(total))
}

// checkOrdering counts exact positional matches against the correct
// sequence. Deliberately positional, not subsequence alignment: a swap
// near the front costs every position it displaces.
func checkOrdering(q *Ordering, ans List) Result {
	total := len(q.CorrectOrder)
	if total == 0 {
		return Result{
			Feedback:          "This question has no sequence to grade.",
			NormalizedAnswer:  normalizeList(ans),
			NormalizedCorrect: Normalize(q.Correct),
		}
	}

	matched := 0
	for i, want := range q.CorrectOrder {
		if i < len(ans) && Normalize(ans[i]) == Normalize(want) {
			matched++
		}
	}

	r := Result{
		IsCorrect:         matched == total,
		NormalizedAnswer:  normalizeList(ans),
		NormalizedCorrect: normalizeList(q.CorrectOrder),
	}
	if !r.IsCorrect {
		r.Feedback = fmt.Sprintf("%d/%d positions correct", matched, total)
	}
	return r.partial(float64(matched) / float64(total))
}

// checkCategorization counts items placed into their correct category.
// The score is global: every correct item across every category is one
// gradable unit.
func checkCategorization(q *Categorization, ans GroupMap) Result {
	placedByCategory := make(map[string]map[string]bool, len(ans))
	for cat, items := range ans {
		set := make(map[string]bool, len(items))
		for _, it := range items {
			set[Normalize(it)] = true
		}
		placedByCategory[Normalize(cat)] = set
	}

	total := 0
	correct := 0
	for _, cat := range q.Categories {
		placed := placedByCategory[Normalize(cat.Name)]
		for _, item := range cat.Items {
			total++
			if placed[Normalize(item)] {
				correct++
			}
		}
	}

	if total == 0 {
		return Result{
			Feedback:          "This question has no items to grade.",
			NormalizedAnswer:  normalizeGroupMap(ans),
			NormalizedCorrect: Normalize(q.Correct),
		}
	}

	r := Result{
		IsCorrect:         correct == total,
		NormalizedAnswer:  normalizeGroupMap(ans),
		NormalizedCorrect: normalizeCategories(q.Categories),
	}
	if !r.IsCorrect {
		r.Feedback = fmt.Sprintf("%d/%d items placed correctly", correct, total)
	}
	return r.partial(float64(correct) / float64(total))
}

// normalizedLookup re-keys a learner map by normalized key so cosmetic
// differences in the left item don't drop a pair.
func normalizedLookup(m Map) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[Normalize(k)] = v
	}
	return out
}

// The normalize* helpers render structured answers as deterministic
// strings for the Result's debug fields.

func normalizeList(items []string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, Normalize(it))
	}
	return strings.Join(parts, ", ")
}

func normalizeMap(m Map) string {
	parts := make([]string, 0, len(m))
	for k, v := range m {
		parts = append(parts, Normalize(k)+"="+Normalize(v))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func normalizePairs(pairs []MatchPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, Normalize(p.Left)+"="+Normalize(p.Right))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func normalizeGroupMap(m GroupMap) string {
	parts := make([]string, 0, len(m))
	for cat, items := range m {
		parts = append(parts, Normalize(cat)+": "+normalizeList(items))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func normalizeCategories(cats []Category) string {
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		parts = append(parts, Normalize(c.Name)+": "+normalizeList(c.Items))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
