package content

// packSchema is the JSON Schema a custom lesson pack file must satisfy.
// Structural invariants the schema can't express cheaply (exactly one
// correct option per question) are enforced by Validate.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":      map[string]any{"type": "string", "minLength": 1},
		"title":   map[string]any{"type": "string", "minLength": 1},
		"concept": map[string]any{"type": "string"},
		"hook":    map[string]any{"type": "string"},

		"predict_prompt": map[string]any{"type": "string"},
		"predictions":    map[string]any{"type": "array", "items": predictionSchema, "minItems": 2},

		"review": map[string]any{"type": "string"},

		"twist_prompt":      map[string]any{"type": "string"},
		"twist_predictions": map[string]any{"type": "array", "items": predictionSchema, "minItems": 2},
		"twist_review":      map[string]any{"type": "string"},

		"params": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    map[string]any{"type": "string", "minLength": 1},
					"label":   map[string]any{"type": "string"},
					"unit":    map[string]any{"type": "string"},
					"min":     map[string]any{"type": "number"},
					"max":     map[string]any{"type": "number"},
					"step":    map[string]any{"type": "number"},
					"default": map[string]any{"type": "number"},
				},
				"required": []any{"name", "min", "max"},
			},
		},

		"questions": map[string]any{
			"type":     "array",
			"minItems": float64(QuestionCount),
			"maxItems": float64(QuestionCount),
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"scenario": map[string]any{"type": "string"},
					"prompt":   map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":      map[string]any{"type": "string", "minLength": 1},
								"label":   map[string]any{"type": "string", "minLength": 1},
								"correct": map[string]any{"type": "boolean"},
							},
							"required": []any{"id", "label"},
						},
					},
					"explanation": map[string]any{"type": "string"},
				},
				"required": []any{"prompt", "options"},
			},
		},

		"applications": map[string]any{
			"type":     "array",
			"minItems": float64(ApplicationCount),
			"maxItems": float64(ApplicationCount),
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"tagline":     map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required": []any{"id", "title"},
			},
		},
	},
	"required": []any{"id", "title", "questions", "applications"},
}

var predictionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"label": map[string]any{"type": "string", "minLength": 1},
	},
	"required": []any{"id", "label"},
}
