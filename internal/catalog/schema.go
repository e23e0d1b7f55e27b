package catalog

// examplesSchema defines the JSON schema the embedded catalog must satisfy.
// Measurements are constrained to positive numbers so every shipped example
// is a valid classifier input.
var examplesSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":    "string",
				"pattern": "^[a-z0-9]+(-[a-z0-9]+)*$",
			},
			"name": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"description": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"width_cm": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			},
			"height_cm": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			},
			"length_cm": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			},
			"mass_kg": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			},
		},
		"required":             []any{"id", "name", "description", "width_cm", "height_cm", "length_cm", "mass_kg"},
		"additionalProperties": false,
	},
}
