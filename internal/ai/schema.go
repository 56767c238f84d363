package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Semantic types accepted by both the Gemini responseSchema format and
// JSON Schema validation.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Schema is a declarative description of the JSON shape the model must
// return. The same descriptor is sent alongside the request to constrain
// generation and compiled client-side to validate the returned text, so the
// contract between prompt, schema and parse target stays in one place.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Validate checks that raw conforms to the schema. Violations are returned
// as a single error listing every failing field.
func (s *Schema) Validate(raw []byte) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(doc),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validate response: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return fmt.Errorf("response does not conform to schema: %s", strings.Join(details, "; "))
	}
	return nil
}
