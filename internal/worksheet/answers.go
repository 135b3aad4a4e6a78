package worksheet

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/worksheetz/internal/answercheck"
)

// ParseAnswers decodes a learner answer sheet: a JSON object mapping
// question IDs to answer values. The value's JSON structure decides the
// answer shape: string, bool, array of strings, object of strings, or
// object of string arrays.
func ParseAnswers(data []byte) (map[string]answercheck.Answer, error) {
	var raw struct {
		Answers map[string]json.RawMessage `json:"answers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode answer sheet: %w", err)
	}
	if raw.Answers == nil {
		return nil, fmt.Errorf("answer sheet has no %q object", "answers")
	}

	out := make(map[string]answercheck.Answer, len(raw.Answers))
	for id, val := range raw.Answers {
		ans, err := decodeAnswer(val)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", id, err)
		}
		out[id] = ans
	}
	return out, nil
}

// decodeAnswer infers the answer shape from the JSON value.
func decodeAnswer(raw json.RawMessage) (answercheck.Answer, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return answercheck.Bool(b), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return answercheck.Text(s), nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return answercheck.List(list), nil
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err == nil {
		return answercheck.Map(m), nil
	}

	var g map[string][]string
	if err := json.Unmarshal(raw, &g); err == nil {
		return answercheck.GroupMap(g), nil
	}

	return nil, fmt.Errorf("unsupported answer value %s", raw)
}
