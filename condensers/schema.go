package condensers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rickchristie/condense"
)

// compileSchema compiles a raw JSON Schema map into a validator.
// Panics on an invalid schema; the built-in schemas are static.
func compileSchema(raw map[string]any) *jsonschema.Schema {
	encoded, err := json.Marshal(raw)
	if err != nil {
		panic(fmt.Sprintf(
			"condensers: failed to marshal schema: %v", err,
		))
	}

	data, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		panic(fmt.Sprintf(
			"condensers: failed to parse schema: %v", err,
		))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", data); err != nil {
		panic(fmt.Sprintf(
			"condensers: failed to add schema resource: %v", err,
		))
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf(
			"condensers: failed to compile schema: %v", err,
		))
	}
	return compiled
}

// validateParams validates config params against a compiled schema,
// normalizing them through JSON first so YAML-decoded integer types
// validate consistently.
func validateParams(
	schema *jsonschema.Schema,
	params map[string]any,
) error {
	if params == nil {
		params = map[string]any{}
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf(
			"%w: %v", condense.ErrInvalidConfiguration, err,
		)
	}
	normalized, err := jsonschema.UnmarshalJSON(
		bytes.NewReader(encoded),
	)
	if err != nil {
		return fmt.Errorf(
			"%w: %v", condense.ErrInvalidConfiguration, err,
		)
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf(
			"%w: %v", condense.ErrInvalidConfiguration, err,
		)
	}
	return nil
}
