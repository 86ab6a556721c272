package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BindingsDefinition is the top-level structure of a weld bindings YAML file.
type BindingsDefinition struct {
	Bindings  BindingsMetadata `yaml:"bindings"`
	Functions []FunctionDef    `yaml:"functions"`
}

// BindingsMetadata holds bundle-level metadata.
type BindingsMetadata struct {
	Name        string `yaml:"name"`
	Package     string `yaml:"package"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// FunctionDef describes a single native function to bridge into the engine.
// It is produced once by the front end and treated as immutable input.
type FunctionDef struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Params      []ParamDef `yaml:"params,omitempty"`
	Returns     *ReturnDef `yaml:"returns,omitempty"`
	UsesScope   bool       `yaml:"uses_scope,omitempty"`
	UsesState   bool       `yaml:"uses_state,omitempty"`
	Options     OptionsDef `yaml:"options,omitempty"`
}

// ParamDef describes a positional parameter. Parameter position maps 1:1
// to the engine call-site argument index.
type ParamDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

// ReturnDef describes a return value. Fallible marks functions that also
// return an error alongside the value.
type ReturnDef struct {
	Type     string `yaml:"type"`
	Fallible bool   `yaml:"fallible,omitempty"`
}

// OptionsDef holds the per-function configuration set. The recognized keys
// are exactly {state, name, promise, fast}; anything else is collected in
// Unknown and rejected during semantic validation.
type OptionsDef struct {
	State   string
	Name    string
	Promise bool
	Fast    bool
	Unknown []string
}

// UnmarshalYAML decodes the options mapping, capturing unrecognized keys
// instead of dropping them so validation can surface them as errors.
func (o *OptionsDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("options must be a mapping, got %s", nodeKind(node))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "state":
			if err := val.Decode(&o.State); err != nil {
				return fmt.Errorf("options.state: %w", err)
			}
		case "name":
			if err := val.Decode(&o.Name); err != nil {
				return fmt.Errorf("options.name: %w", err)
			}
		case "promise":
			if err := val.Decode(&o.Promise); err != nil {
				return fmt.Errorf("options.promise: %w", err)
			}
		case "fast":
			if err := val.Decode(&o.Fast); err != nil {
				return fmt.Errorf("options.fast: %w", err)
			}
		default:
			o.Unknown = append(o.Unknown, key)
		}
	}
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "node"
	}
}

// EngineName returns the name the function is exposed under on the engine
// side, honoring the name override option.
func (f *FunctionDef) EngineName() string {
	if f.Options.Name != "" {
		return f.Options.Name
	}
	return f.Name
}

// FunctionByName looks up a function definition by name.
func (d *BindingsDefinition) FunctionByName(name string) *FunctionDef {
	for i := range d.Functions {
		if d.Functions[i].Name == name {
			return &d.Functions[i]
		}
	}
	return nil
}
