package coach

import "github.com/sproutfi/sprout/internal/llm"

// TipSchema is the JSON schema for coach tip responses.
var TipSchema = &llm.Schema{
	Name:        "coach-tip",
	Description: "A short investing-education tip tied to a challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line hook, under 60 characters, no emoji",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "One short paragraph of plain-language guidance. No financial advice disclaimers, no specific securities.",
			},
		},
		"required":             []any{"headline", "body"},
		"additionalProperties": false,
	},
}
