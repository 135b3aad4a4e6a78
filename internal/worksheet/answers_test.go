package worksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/answercheck"
)

func TestParseAnswers(t *testing.T) {
	doc := `{
	  "answers": {
	    "q1": "jumped",
	    "q2": true,
	    "q3": ["A", "B", "C"],
	    "q4": {"cow": "moo"},
	    "q5": {"Nouns": ["cat", "dog"]}
	  }
	}`

	answers, err := ParseAnswers([]byte(doc))
	require.NoError(t, err)
	require.Len(t, answers, 5)

	assert.Equal(t, answercheck.Text("jumped"), answers["q1"])
	assert.Equal(t, answercheck.Bool(true), answers["q2"])
	assert.Equal(t, answercheck.List{"A", "B", "C"}, answers["q3"])
	assert.Equal(t, answercheck.Map{"cow": "moo"}, answers["q4"])
	assert.Equal(t, answercheck.GroupMap{"Nouns": {"cat", "dog"}}, answers["q5"])
}

func TestParseAnswersRejectsUnsupportedValues(t *testing.T) {
	_, err := ParseAnswers([]byte(`{"answers": {"q1": 42}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q1")
}

func TestParseAnswersMissingEnvelope(t *testing.T) {
	_, err := ParseAnswers([]byte(`{"q1": "x"}`))
	require.Error(t, err)
}
