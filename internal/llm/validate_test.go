package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var tipTestSchema = &Schema{
	Name: "validate-test-tip",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"body":     map[string]any{"type": "string"},
		},
		"required":             []any{"headline", "body"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"headline":"h","body":"b"}`, false},
		{"missing required", `{"headline":"h"}`, true},
		{"extra property", `{"headline":"h","body":"b","x":1}`, true},
		{"wrong type", `{"headline":1,"body":"b"}`, true},
		{"not JSON", `oops`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tipTestSchema, json.RawMessage(tt.raw))
			if tt.wantErr {
				var inv *ErrInvalidResponse
				assert.True(t, errors.As(err, &inv), "want ErrInvalidResponse, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}
