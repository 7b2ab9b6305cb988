package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/posterscan/posterscan/constants"
)

// BuildRecordJSONSchema returns the JSON schema a rendered poster record
// must satisfy: an object with exactly the ten field-name keys, each a
// string.
func BuildRecordJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.FieldOrder))
	required := make([]any, 0, len(constants.FieldOrder))
	for _, name := range constants.FieldOrder {
		props[string(name)] = map[string]any{"type": "string"}
		required = append(required, string(name))
	}
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// ValidateRecordJSON checks rendered record JSON against the field schema.
func ValidateRecordJSON(doc []byte) error {
	schemaBytes, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.schema.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile("record.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("record failed schema validation: %w", err)
	}
	return nil
}
