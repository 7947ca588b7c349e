package domain

// SchemaType is the node type of a structured-output schema.
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
)

// Schema is a provider-neutral description of the JSON shape a model must return.
// Providers translate it into their own schema representation.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// JSONSchema renders the schema as a JSON Schema document. Object nodes are
// closed (additionalProperties=false) so strict providers accept them.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Type == SchemaObject {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
		out["additionalProperties"] = false
		if len(s.Required) > 0 {
			out["required"] = s.Required
		}
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	return out
}

// BeliefsSchema describes TransformedBeliefs: three required arrays of
// beliefs, each belief with required text, tense and translation strings.
func BeliefsSchema() *Schema {
	belief := &Schema{
		Type: SchemaObject,
		Properties: map[string]*Schema{
			"text":        {Type: SchemaString, Description: "The empowering belief in English."},
			"tense":       {Type: SchemaString, Description: "The English tense used."},
			"translation": {Type: SchemaString, Description: "A Vietnamese translation of the English belief text."},
		},
		Required: []string{"text", "tense", "translation"},
	}

	return &Schema{
		Type: SchemaObject,
		Properties: map[string]*Schema{
			string(CategoryLogic): {
				Type:        SchemaArray,
				Description: "Exactly 5 beliefs related to the Logic Brain.",
				Items:       belief,
			},
			string(CategoryEmotion): {
				Type:        SchemaArray,
				Description: "Exactly 5 beliefs related to the Emotion Brain.",
				Items:       belief,
			},
			string(CategoryAnimal): {
				Type:        SchemaArray,
				Description: "Exactly 5 beliefs related to the Animal Brain (instinct, action).",
				Items:       belief,
			},
		},
		Required: []string{string(CategoryLogic), string(CategoryEmotion), string(CategoryAnimal)},
	}
}
