package grader

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema describes the grading service envelope. No field is
// required: the service contract only guarantees a JSON object, so the schema
// constrains types without demanding presence. Anything that violates it is
// collapsed into the single malformed-response case.
const responseSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"success": {"type": "boolean"},
		"file_id": {"type": "string"},
		"filename": {"type": "string"},
		"grading_result": {
			"type": "object",
			"properties": {
				"overall_score": {"type": "number"},
				"section_scores": {
					"type": "object",
					"additionalProperties": {"type": "number"}
				},
				"strengths": {"type": "array", "items": {"type": "string"}},
				"improvements": {"type": "array", "items": {"type": "string"}},
				"detailed_feedback": {"type": "string"},
				"parsing_method": {"type": "string"},
				"parsed_data": {"type": "object"}
			}
		},
		"parsed_data": {"type": "object"}
	}
}`

var compiledSchema = gojsonschema.NewStringLoader(responseSchema)

// ValidateResponse checks a raw response body against the envelope schema.
// It returns an error wrapping ErrMalformedResponse for invalid JSON and for
// JSON whose shape contradicts the contract.
func ValidateResponse(body []byte) error {
	result, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(desc.String())
	}
	return fmt.Errorf("%w: %s", ErrMalformedResponse, sb.String())
}
