package catalog

// JSON Schemas for the embedded content catalogs. Validation runs once at
// load; a catalog that fails here is a build mistake, not a runtime input.

var personaSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":               map[string]any{"type": "integer", "minimum": 1},
			"name":             map[string]any{"type": "string", "minLength": 1},
			"emoji":            map[string]any{"type": "string", "minLength": 1},
			"description":      map[string]any{"type": "string", "minLength": 1},
			"theme":            map[string]any{"type": "string", "minLength": 1},
			"investment_range": map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"id", "name", "emoji", "description", "theme", "investment_range"},
		"additionalProperties": false,
	},
}

var quizSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
		},
		"required":             []any{"question", "options"},
		"additionalProperties": false,
	},
}

var challengeSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"type":        map[string]any{"type": "string", "enum": []any{"learning", "action"}},
			"duration":    map[string]any{"type": "string", "minLength": 1},
			"xp_reward":   map[string]any{"type": "integer", "minimum": 0},
			"coin_reward": map[string]any{"type": "integer", "minimum": 0},
			"is_completed": map[string]any{"type": "boolean"},
		},
		"required":             []any{"id", "title", "description", "type", "duration", "xp_reward", "coin_reward", "is_completed"},
		"additionalProperties": false,
	},
}
