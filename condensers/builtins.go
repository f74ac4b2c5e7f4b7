package condensers

import (
	"fmt"

	"github.com/rickchristie/condense"
)

// Discriminant names of the built-in condensers.
const (
	TypeNoOp  = "noop"
	TypeLastK = "lastk"
	TypeLLM   = "llm"
)

// DefaultK is the number of non-user events LastK keeps when the
// config omits k.
const DefaultK = 5

// DefaultModelName is the model map key used when the config omits
// llm_config.
const DefaultModelName = "default"

// Config param schemas for the built-in condensers. Unknown fields are
// rejected so a typo in a config file fails at Build time instead of
// being silently ignored.
var (
	noopSchema = compileSchema(map[string]any{
		"type":                 "object",
		"additionalProperties": false,
	})

	lastKSchema = compileSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"k": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
		"additionalProperties": false,
	})

	llmSchema = compileSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"llm_config": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"additionalProperties": false,
	})
)

// RegisterBuiltins registers the built-in condenser factories on the
// given registry under [TypeNoOp], [TypeLastK], and [TypeLLM].
//
// The models map resolves the llm variant's llm_config reference: the
// configured name (or [DefaultModelName] when omitted) must be a key
// in the map. A nil or empty map is fine as long as no llm condenser
// is built.
func RegisterBuiltins(
	registry *condense.Registry,
	models map[string]condense.Model,
) error {
	err := registry.Register(TypeNoOp, buildNoOp)
	if err != nil {
		return err
	}

	err = registry.Register(TypeLastK, buildLastK)
	if err != nil {
		return err
	}

	return registry.Register(
		TypeLLM,
		func(cfg condense.Config) (condense.Condenser, error) {
			return buildLLM(cfg, models)
		},
	)
}

func buildNoOp(cfg condense.Config) (condense.Condenser, error) {
	if err := validateParams(noopSchema, cfg.Params); err != nil {
		return nil, err
	}
	return NewNoOp(), nil
}

func buildLastK(cfg condense.Config) (condense.Condenser, error) {
	if err := validateParams(lastKSchema, cfg.Params); err != nil {
		return nil, err
	}
	k, err := intParam(cfg.Params, "k", DefaultK)
	if err != nil {
		return nil, err
	}
	return NewLastK(k)
}

func buildLLM(
	cfg condense.Config,
	models map[string]condense.Model,
) (condense.Condenser, error) {
	if err := validateParams(llmSchema, cfg.Params); err != nil {
		return nil, err
	}
	name, err := stringParam(
		cfg.Params, "llm_config", DefaultModelName,
	)
	if err != nil {
		return nil, err
	}
	model, ok := models[name]
	if !ok {
		return nil, fmt.Errorf(
			"%w: no model named %q",
			condense.ErrInvalidConfiguration, name,
		)
	}
	return NewLLM(model), nil
}

// intParam reads an integer param, applying the default when absent.
// YAML decodes integers as int, JSON as float64; both are accepted.
func intParam(
	params map[string]any,
	name string,
	fallback int,
) (int, error) {
	value, ok := params[name]
	if !ok {
		return fallback, nil
	}
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf(
		"%w: %s must be an integer",
		condense.ErrInvalidConfiguration, name,
	)
}

// stringParam reads a string param, applying the default when absent.
func stringParam(
	params map[string]any,
	name string,
	fallback string,
) (string, error) {
	value, ok := params[name]
	if !ok {
		return fallback, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf(
			"%w: %s must be a string",
			condense.ErrInvalidConfiguration, name,
		)
	}
	return s, nil
}
