package learnpath

// OutlineSchema is the JSON Schema a generated learning path must satisfy:
// a non-empty list of categories, each holding leaf topics.
var OutlineSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"$ref": "#/$defs/category"},
	"$defs": map[string]any{
		"category": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":          map[string]any{"type": "string", "minLength": 1},
				"name":        map[string]any{"type": "string", "minLength": 1},
				"isCompleted": map[string]any{"type": "boolean"},
				"children": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/topic"},
				},
			},
			"required":             []any{"id", "name", "isCompleted"},
			"additionalProperties": false,
		},
		"topic": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":          map[string]any{"type": "string", "minLength": 1},
				"name":        map[string]any{"type": "string", "minLength": 1},
				"isCompleted": map[string]any{"type": "boolean"},
			},
			"required":             []any{"id", "name", "isCompleted"},
			"additionalProperties": false,
		},
	},
}
