package answercheck

import "fmt"

// ErrAnswerShape indicates the answer value's structural type does not
// match what the question variant expects. This is an integration bug in
// the caller, never a learner mistake, so it surfaces as an error instead
// of an incorrect verdict.
type ErrAnswerShape struct {
	Question QuestionType
	Want     string // expected answer shape, e.g. "Text"
	Got      Answer
}

func (e *ErrAnswerShape) Error() string {
	return fmt.Sprintf("question type %q expects %s answer, got %T", e.Question, e.Want, e.Got)
}

// ErrComposite indicates a reading_comprehension question was passed to
// Validate directly. The variant has no top-level validator; callers must
// iterate SubQuestions and validate each one.
type ErrComposite struct {
	SubQuestions int
}

func (e *ErrComposite) Error() string {
	return fmt.Sprintf("reading_comprehension has no direct validator: validate each of the %d sub-questions individually", e.SubQuestions)
}
