package condense

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the tagged-union descriptor selecting a condenser by name.
//
// The Type field is the discriminant matched against a [Registry]; all
// remaining fields of the source document are collected into Params for
// the factory to validate and apply. In YAML:
//
//	type: lastk
//	k: 10
//
// or, for the LLM-backed variant:
//
//	type: llm
//	llm_config: summarizer
type Config struct {
	// Type is the registered condenser name. Required.
	Type string

	// Params holds the variant-specific fields, keyed by field name.
	// Nil when the document carries no fields beyond type.
	Params map[string]any
}

// ParseConfig parses a YAML document into a Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if errors.Is(err, ErrInvalidConfiguration) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf(
			"%w: %v", ErrInvalidConfiguration, err,
		)
	}
	return cfg, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It splits the document
// into the type discriminant and the remaining variant params.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf(
			"%w: condenser config must be a mapping: %v",
			ErrInvalidConfiguration, err,
		)
	}

	typeValue, ok := raw["type"]
	if !ok {
		return fmt.Errorf(
			"%w: missing required field 'type'",
			ErrInvalidConfiguration,
		)
	}
	typeName, ok := typeValue.(string)
	if !ok || typeName == "" {
		return fmt.Errorf(
			"%w: 'type' must be a non-empty string",
			ErrInvalidConfiguration,
		)
	}
	delete(raw, "type")

	c.Type = typeName
	if len(raw) > 0 {
		c.Params = raw
	} else {
		c.Params = nil
	}
	return nil
}
