package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"empty object", `{}`, false},
		{"score only", `{"grading_result": {"overall_score": 72}}`, false},
		{"full envelope", `{
			"success": true,
			"file_id": "abc",
			"filename": "resume.pdf",
			"grading_result": {
				"overall_score": 66.7,
				"section_scores": {"skills": 90},
				"strengths": ["s"],
				"improvements": ["i"],
				"detailed_feedback": "f"
			},
			"parsed_data": {"skills": ["Go"]}
		}`, false},
		{"unknown extra fields tolerated", `{"success": true, "server_version": "2.0"}`, false},
		{"not json", `<html></html>`, true},
		{"array body", `[1, 2, 3]`, true},
		{"string score", `{"grading_result": {"overall_score": "high"}}`, true},
		{"non-numeric section score", `{"grading_result": {"section_scores": {"skills": "good"}}}`, true},
		{"strengths not an array", `{"grading_result": {"strengths": "clear"}}`, true},
		{"grading result not an object", `{"grading_result": 72}`, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateResponse([]byte(test.body))
			if test.wantErr {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
