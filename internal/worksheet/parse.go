package worksheet

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/abhisek/worksheetz/internal/answercheck"
)

// Worksheet is one photographed page set, decoded and ready to grade.
type Worksheet struct {
	Title     string
	Questions []answercheck.Question
}

// rawQuestion is the wire shape of one extracted question record. All
// shape-specific fields are optional; the type tag decides which ones
// are read during conversion.
type rawQuestion struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Question    string `json:"question"`
	Correct     string `json:"correct"`
	Explanation string `json:"explanation"`
	Hint        string `json:"hint"`
	Page        int    `json:"page"`

	Options           []string      `json:"options"`
	Sentence          string        `json:"sentence"`
	WordBank          []string      `json:"word_bank"`
	AcceptableAnswers []string      `json:"acceptable_answers"`
	MinWords          int           `json:"min_words"`
	MaxWords          int           `json:"max_words"`
	CorrectValue      *bool         `json:"correct_value"`
	LeftItems         []string      `json:"left_items"`
	RightItems        []string      `json:"right_items"`
	CorrectPairs      []rawPair     `json:"correct_pairs"`
	Items             []string      `json:"items"`
	CorrectOrder      []string      `json:"correct_order"`
	Passage           string        `json:"passage"`
	SubQuestions      []rawQuestion `json:"sub_questions"`
	Blanks            []rawBlank    `json:"blanks"`
	ModelAnswer       string        `json:"model_answer"`
	KeyElements       []string      `json:"key_elements"`
	SourceText        string        `json:"source_text"`
	CorrectedText     string        `json:"corrected_text"`
	Errors            []rawEdit     `json:"errors"`
	Categories        []rawCategory `json:"categories"`
}

type rawPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type rawBlank struct {
	Position   int      `json:"position"`
	Acceptable []string `json:"acceptable"`
}

type rawEdit struct {
	Original   string `json:"original"`
	Correction string `json:"correction"`
}

type rawCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type rawWorksheet struct {
	Title     string        `json:"title"`
	Questions []rawQuestion `json:"questions"`
}

// Parse validates raw worksheet JSON against the schema and decodes it
// into typed question records.
func Parse(data []byte) (*Worksheet, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var raw rawWorksheet
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode worksheet: %w", err)
	}

	ws := &Worksheet{Title: raw.Title}
	for i, rq := range raw.Questions {
		ws.Questions = append(ws.Questions, convert(rq, "q"+strconv.Itoa(i+1)))
	}
	return ws, nil
}

// convert turns one raw record into its question variant. Unknown type
// tags become *Generic so a single odd record degrades to fallback
// grading instead of rejecting the whole worksheet.
func convert(rq rawQuestion, defaultID string) answercheck.Question {
	base := answercheck.Base{
		ID:          rq.ID,
		Text:        rq.Question,
		Correct:     rq.Correct,
		Explanation: rq.Explanation,
		Hint:        rq.Hint,
		Page:        rq.Page,
	}
	if base.ID == "" {
		base.ID = defaultID
	}

	switch answercheck.QuestionType(rq.Type) {
	case answercheck.TypeMultipleChoice:
		return &answercheck.MultipleChoice{Base: base, Options: rq.Options}

	case answercheck.TypeFillBlank:
		return &answercheck.FillBlank{
			Base:              base,
			Sentence:          rq.Sentence,
			WordBank:          rq.WordBank,
			AcceptableAnswers: rq.AcceptableAnswers,
		}

	case answercheck.TypeWritingShort:
		return &answercheck.WritingShort{
			Base:              base,
			AcceptableAnswers: rq.AcceptableAnswers,
			MaxWords:          rq.MaxWords,
		}

	case answercheck.TypeTrueFalse:
		correct := false
		if rq.CorrectValue != nil {
			correct = *rq.CorrectValue
		}
		return &answercheck.TrueFalse{Base: base, CorrectValue: correct}

	case answercheck.TypeMatching:
		pairs := make([]answercheck.MatchPair, 0, len(rq.CorrectPairs))
		for _, p := range rq.CorrectPairs {
			pairs = append(pairs, answercheck.MatchPair{Left: p.Left, Right: p.Right})
		}
		return &answercheck.Matching{
			Base:         base,
			LeftItems:    rq.LeftItems,
			RightItems:   rq.RightItems,
			CorrectPairs: pairs,
		}

	case answercheck.TypeOrdering:
		return &answercheck.Ordering{
			Base:         base,
			Items:        rq.Items,
			CorrectOrder: rq.CorrectOrder,
		}

	case answercheck.TypeReadingComprehension:
		subs := make([]answercheck.Question, 0, len(rq.SubQuestions))
		for i, sub := range rq.SubQuestions {
			// Nested reading_comprehension is not a valid sub-question
			// shape; it converts through the Generic fallback.
			if answercheck.QuestionType(sub.Type) == answercheck.TypeReadingComprehension {
				sub.Type = "nested_" + sub.Type
			}
			subs = append(subs, convert(sub, base.ID+"."+strconv.Itoa(i+1)))
		}
		return &answercheck.ReadingComprehension{
			Base:         base,
			Passage:      rq.Passage,
			SubQuestions: subs,
		}

	case answercheck.TypeFillBlanksMulti:
		blanks := make([]answercheck.Blank, 0, len(rq.Blanks))
		for i, b := range rq.Blanks {
			pos := b.Position
			if pos == 0 {
				pos = i + 1
			}
			blanks = append(blanks, answercheck.Blank{Position: pos, Acceptable: b.Acceptable})
		}
		return &answercheck.FillBlanksMulti{
			Base:     base,
			Sentence: rq.Sentence,
			Blanks:   blanks,
			WordBank: rq.WordBank,
		}

	case answercheck.TypeWritingSentence:
		model := rq.ModelAnswer
		if model == "" {
			model = rq.Correct
		}
		return &answercheck.WritingSentence{
			Base:        base,
			ModelAnswer: model,
			KeyElements: rq.KeyElements,
			MinWords:    rq.MinWords,
			MaxWords:    rq.MaxWords,
		}

	case answercheck.TypeCorrection:
		corrected := rq.CorrectedText
		if corrected == "" {
			corrected = rq.Correct
		}
		edits := make([]answercheck.CorrectionEdit, 0, len(rq.Errors))
		for _, e := range rq.Errors {
			edits = append(edits, answercheck.CorrectionEdit{Original: e.Original, Correction: e.Correction})
		}
		return &answercheck.Correction{
			Base:          base,
			SourceText:    rq.SourceText,
			CorrectedText: corrected,
			Errors:        edits,
		}

	case answercheck.TypeCategorization:
		cats := make([]answercheck.Category, 0, len(rq.Categories))
		for _, c := range rq.Categories {
			cats = append(cats, answercheck.Category{Name: c.Name, Items: c.Items})
		}
		return &answercheck.Categorization{
			Base:       base,
			Items:      rq.Items,
			Categories: cats,
		}

	default:
		return &answercheck.Generic{Base: base, RawType: rq.Type}
	}
}
