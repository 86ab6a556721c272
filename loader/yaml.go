package loader

import (
	"fmt"
	"os"

	"github.com/weldgen/weld/model"
	"gopkg.in/yaml.v3"
)

// LoadBindingsDefinition reads and parses a YAML bindings definition file.
// It validates the YAML against the JSON Schema before unmarshalling.
// Unknown option keys pass the schema deliberately; semantic validation
// reports them with the offending function's path.
func LoadBindingsDefinition(path string) (*model.BindingsDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings definition: %w", err)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var def model.BindingsDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing bindings definition: %w", err)
	}

	return &def, nil
}

// LoadBindingsDefinitionNoValidate parses without schema validation.
// Used internally when schema validation has already been performed.
func LoadBindingsDefinitionNoValidate(data []byte) (*model.BindingsDefinition, error) {
	var def model.BindingsDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing bindings definition: %w", err)
	}
	return &def, nil
}
