// Package catalog ships a small fixed set of named package archetypes that
// callers can classify without typing measurements. The set is embedded at
// build time and schema-checked on first load.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed examples.json
var examplesJSON []byte

// Example is a named package archetype with preset measurements.
type Example struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Width       float64 `json:"width_cm"`
	Height      float64 `json:"height_cm"`
	Length      float64 `json:"length_cm"`
	Mass        float64 `json:"mass_kg"`
}

var (
	loadOnce sync.Once
	examples []Example
	loadErr  error
)

// Load returns the embedded example catalog, validating it against the
// catalog schema on first call. The returned slice is shared; callers must
// not modify it.
func Load() ([]Example, error) {
	loadOnce.Do(func() {
		examples, loadErr = parse(examplesJSON)
	})
	return examples, loadErr
}

// ByID returns the example with the given id.
func ByID(id string) (Example, error) {
	all, err := Load()
	if err != nil {
		return Example{}, err
	}
	for _, ex := range all {
		if ex.ID == id {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("unknown example %q", id)
}

// parse validates raw catalog JSON against the schema and decodes it.
func parse(raw []byte) ([]Example, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var out []Example
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return out, nil
}

// compileSchema compiles the catalog schema definition.
// The jsonschema library expects a parsed JSON value (any), not raw bytes,
// so the definition is marshaled and re-parsed before compiling.
func compileSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(examplesSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://package-examples.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
