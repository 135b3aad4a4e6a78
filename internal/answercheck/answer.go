package answercheck

// Answer is the closed set of answer value shapes. The dispatcher matches
// the answer's concrete type against what the question variant expects and
// rejects disagreements with *ErrAnswerShape.
type Answer interface {
	answer()
}

// Text is a plain string answer (choice text, blank word, sentence).
type Text string

// Bool is a true/false judgment.
type Bool bool

// List is an ordered sequence of items (ordering questions).
type List []string

// Map associates keys with single values: left item to right item for
// matching, blank number to word for fill_blanks_multi.
type Map map[string]string

// GroupMap associates category names with the items placed into them.
type GroupMap map[string][]string

func (Text) answer()     {}
func (Bool) answer()     {}
func (List) answer()     {}
func (Map) answer()      {}
func (GroupMap) answer() {}
