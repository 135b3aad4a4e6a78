package worksheet

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// worksheetSchema is the JSON Schema a worksheet document must satisfy
// before decoding. It pins the envelope and the fields every question
// record carries; shape-specific fields stay open because unknown type
// tags still have to decode through the generic fallback.
var worksheetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type":        "string",
			"description": "Worksheet title as extracted from the page header",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type":        "string",
						"description": "Question shape tag, e.g. fill_blank",
					},
					"question": map[string]any{
						"type":        "string",
						"description": "The question prompt shown to the learner",
					},
					"correct": map[string]any{
						"type":        "string",
						"description": "Paper-transcribable canonical answer",
					},
					"page": map[string]any{
						"type":        "integer",
						"minimum":     0,
						"description": "Source page the question was photographed from",
					},
				},
				"required":             []any{"type", "question", "correct"},
				"additionalProperties": true,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": true,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ErrSchema indicates a worksheet document failed schema validation.
// The extraction pipeline is AI-driven, so this is an expected failure
// mode for callers to report, not a panic.
type ErrSchema struct {
	Err error
}

func (e *ErrSchema) Error() string {
	return fmt.Sprintf("worksheet failed schema validation: %v", e.Err)
}

func (e *ErrSchema) Unwrap() error { return e.Err }

// validateSchema checks raw worksheet JSON against worksheetSchema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrSchema{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile worksheet schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrSchema{Err: err}
	}
	return nil
}

// getCompiledSchema compiles worksheetSchema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip through encoding/json to get a clean one.
		defBytes, err := json.Marshal(worksheetSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://worksheet.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
