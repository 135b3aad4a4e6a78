package worksheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/answercheck"
)

const sampleWorksheet = `{
  "title": "English Practice, Week 4",
  "questions": [
    {
      "type": "fill_blank",
      "question": "Complete the sentence.",
      "sentence": "The frog ___ over the log.",
      "correct": "jumped",
      "acceptable_answers": ["leaped"],
      "page": 1
    },
    {
      "type": "true_false",
      "question": "Spiders are insects.",
      "correct": "False",
      "correct_value": false
    },
    {
      "type": "matching",
      "question": "Match the animal to its sound.",
      "correct": "cow-moo, cat-meow",
      "left_items": ["cow", "cat"],
      "right_items": ["meow", "moo"],
      "correct_pairs": [
        {"left": "cow", "right": "moo"},
        {"left": "cat", "right": "meow"}
      ]
    },
    {
      "type": "reading_comprehension",
      "question": "Read the passage and answer.",
      "correct": "see sub-questions",
      "passage": "The fox lived in the forest.",
      "sub_questions": [
        {
          "type": "writing_short",
          "question": "Where did the fox live?",
          "correct": "forest"
        }
      ]
    },
    {
      "type": "word_search",
      "question": "Find the hidden word.",
      "correct": "apple"
    }
  ]
}`

func TestParse(t *testing.T) {
	ws, err := Parse([]byte(sampleWorksheet))
	require.NoError(t, err)

	assert.Equal(t, "English Practice, Week 4", ws.Title)
	require.Len(t, ws.Questions, 5)

	fb, ok := ws.Questions[0].(*answercheck.FillBlank)
	require.True(t, ok, "question 1 should be *FillBlank, got %T", ws.Questions[0])
	assert.Equal(t, "q1", fb.ID)
	assert.Equal(t, "jumped", fb.Correct)
	assert.Equal(t, []string{"leaped"}, fb.AcceptableAnswers)
	assert.Equal(t, 1, fb.Page)

	tf, ok := ws.Questions[1].(*answercheck.TrueFalse)
	require.True(t, ok)
	assert.False(t, tf.CorrectValue)

	m, ok := ws.Questions[2].(*answercheck.Matching)
	require.True(t, ok)
	require.Len(t, m.CorrectPairs, 2)
	assert.Equal(t, answercheck.MatchPair{Left: "cow", Right: "moo"}, m.CorrectPairs[0])

	rc, ok := ws.Questions[3].(*answercheck.ReadingComprehension)
	require.True(t, ok)
	require.Len(t, rc.SubQuestions, 1)
	sub, ok := rc.SubQuestions[0].(*answercheck.WritingShort)
	require.True(t, ok)
	assert.Equal(t, "q4.1", sub.ID)

	// Unknown tag decodes to Generic instead of failing the worksheet.
	g, ok := ws.Questions[4].(*answercheck.Generic)
	require.True(t, ok, "unknown type should decode to *Generic, got %T", ws.Questions[4])
	assert.Equal(t, "word_search", g.RawType)
}

func TestParseSchemaRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no questions", `{"title": "empty"}`},
		{"empty questions", `{"questions": []}`},
		{"question missing correct", `{"questions": [{"type": "fill_blank", "question": "x"}]}`},
		{"not json", `{"questions": [`},
	}

	for _, tc := range tests {
		_, err := Parse([]byte(tc.doc))
		var schemaErr *ErrSchema
		assert.ErrorAs(t, err, &schemaErr, tc.name)
	}
}

func TestParseExplicitIDsKept(t *testing.T) {
	doc := `{"questions": [{"id": "p3-ex2", "type": "writing_short", "question": "x", "correct": "y"}]}`
	ws, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "p3-ex2", ws.Questions[0].Common().ID)
}

func TestParseNestedReadingComprehension(t *testing.T) {
	doc := `{"questions": [{
		"type": "reading_comprehension",
		"question": "outer",
		"correct": "-",
		"sub_questions": [{"type": "reading_comprehension", "question": "inner", "correct": "-"}]
	}]}`
	ws, err := Parse([]byte(doc))
	require.NoError(t, err)

	rc := ws.Questions[0].(*answercheck.ReadingComprehension)
	require.Len(t, rc.SubQuestions, 1)
	_, ok := rc.SubQuestions[0].(*answercheck.Generic)
	assert.True(t, ok, "nested reading_comprehension should degrade to Generic")
}

func TestParseErrorsAreErrSchema(t *testing.T) {
	_, err := Parse([]byte(`[]`))
	require.Error(t, err)
	var schemaErr *ErrSchema
	require.True(t, errors.As(err, &schemaErr))
}
