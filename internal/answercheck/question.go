package answercheck

// QuestionType identifies one of the question shapes the engine understands.
type QuestionType string

const (
	TypeMultipleChoice       QuestionType = "multiple_choice"
	TypeFillBlank            QuestionType = "fill_blank"
	TypeWritingShort         QuestionType = "writing_short"
	TypeTrueFalse            QuestionType = "true_false"
	TypeMatching             QuestionType = "matching"
	TypeOrdering             QuestionType = "ordering"
	TypeReadingComprehension QuestionType = "reading_comprehension"
	TypeFillBlanksMulti      QuestionType = "fill_blanks_multi"
	TypeWritingSentence      QuestionType = "writing_sentence"
	TypeCorrection           QuestionType = "correction"
	TypeCategorization       QuestionType = "categorization"
)

// Base carries the fields every question variant shares.
type Base struct {
	// ID identifies the question within its worksheet (e.g. "q3", "q3.1").
	ID string

	// Text is the question prompt shown to the learner.
	Text string

	// Correct is the canonical correct answer as a paper-transcribable
	// string. Validators use it only as a fallback acceptable answer;
	// it never drives type-specific grading logic on its own.
	Correct string

	// Explanation is an optional worked explanation shown after grading.
	Explanation string

	// Hint is an optional short hint. Empty if none was extracted.
	Hint string

	// Page is the worksheet page the question was photographed from.
	Page int
}

// Common returns the shared question fields.
func (b Base) Common() Base { return b }

// Question is the closed set of question shapes. Each variant is a struct
// embedding Base; Validate type-switches over the concrete types. Records
// with a type tag outside the known set arrive as *Generic so the
// dispatcher can fall back to plain answer-text comparison.
type Question interface {
	Type() QuestionType
	Common() Base
}

// MultipleChoice presents 2-5 discrete options, one of which is correct.
type MultipleChoice struct {
	Base
	Options []string
}

func (*MultipleChoice) Type() QuestionType { return TypeMultipleChoice }

// FillBlank is a sentence with a single blank to fill in.
type FillBlank struct {
	Base

	// Sentence is the templated sentence containing one blank marker.
	Sentence string

	// WordBank optionally lists the words the learner may choose from.
	WordBank []string

	// AcceptableAnswers lists alternate spellings or phrasings accepted
	// in addition to Correct.
	AcceptableAnswers []string
}

func (*FillBlank) Type() QuestionType { return TypeFillBlank }

// WritingShort asks for a short free-text answer (a word or phrase).
type WritingShort struct {
	Base
	AcceptableAnswers []string

	// MaxWords caps the answer length. 0 means no cap.
	MaxWords int
}

func (*WritingShort) Type() QuestionType { return TypeWritingShort }

// TrueFalse is a binary statement judgment.
type TrueFalse struct {
	Base
	CorrectValue bool
}

func (*TrueFalse) Type() QuestionType { return TypeTrueFalse }

// MatchPair is one correct left-to-right association.
type MatchPair struct {
	Left  string
	Right string
}

// Matching asks the learner to pair items from two columns.
type Matching struct {
	Base
	LeftItems    []string
	RightItems   []string
	CorrectPairs []MatchPair
}

func (*Matching) Type() QuestionType { return TypeMatching }

// Ordering asks the learner to arrange shuffled items into sequence.
type Ordering struct {
	Base

	// Items is the shuffled list as presented.
	Items []string

	// CorrectOrder is the expected sequence.
	CorrectOrder []string
}

func (*Ordering) Type() QuestionType { return TypeOrdering }

// Blank is one numbered blank within a FillBlanksMulti question.
type Blank struct {
	// Position is the 1-based blank number in the sentence.
	Position int

	// Acceptable is this blank's private acceptable-answer set.
	Acceptable []string
}

// FillBlanksMulti is a sentence with several numbered blanks, each graded
// against its own acceptable-answer set.
type FillBlanksMulti struct {
	Base
	Sentence string
	Blanks   []Blank
	WordBank []string
}

func (*FillBlanksMulti) Type() QuestionType { return TypeFillBlanksMulti }

// WritingSentence asks for a full sentence, graded by key-phrase coverage.
type WritingSentence struct {
	Base

	// ModelAnswer is an example of a good answer, surfaced as feedback.
	ModelAnswer string

	// KeyElements are phrases a correct answer must contain. When empty,
	// any answer of at least three words is accepted.
	KeyElements []string

	MinWords int
	MaxWords int
}

func (*WritingSentence) Type() QuestionType { return TypeWritingSentence }

// CorrectionEdit is one discrete fix within a Correction question.
type CorrectionEdit struct {
	Original   string
	Correction string
}

// Correction asks the learner to rewrite an erroneous text correctly.
type Correction struct {
	Base
	SourceText    string
	CorrectedText string
	Errors        []CorrectionEdit
}

func (*Correction) Type() QuestionType { return TypeCorrection }

// Category is one named bucket with its correct item subset.
type Category struct {
	Name  string
	Items []string
}

// Categorization asks the learner to sort items into named categories.
type Categorization struct {
	Base
	Items      []string
	Categories []Category
}

func (*Categorization) Type() QuestionType { return TypeCategorization }

// ReadingComprehension is a passage with nested sub-questions. It has no
// direct validator: callers grade each sub-question individually, and
// Validate returns *ErrComposite to enforce that contract.
type ReadingComprehension struct {
	Base
	Passage      string
	SubQuestions []Question
}

func (*ReadingComprehension) Type() QuestionType { return TypeReadingComprehension }

// Generic holds a question whose type tag was not recognized. The
// extraction pipeline is AI-driven and not schema-guaranteed, so unknown
// tags degrade to plain answer-text comparison instead of failing.
type Generic struct {
	Base

	// RawType is the unrecognized type tag as extracted.
	RawType string
}

func (q *Generic) Type() QuestionType { return QuestionType(q.RawType) }
