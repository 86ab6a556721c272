package loader

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaJSON is the embedded JSON Schema for bindings definition validation.
var schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://weldgen.dev/schemas/bindings-definition/v1",
  "title": "weld Bindings Definition",
  "description": "Schema for weld bindings definition YAML files.",
  "type": "object",
  "required": ["bindings", "functions"],
  "additionalProperties": false,
  "properties": {
    "bindings": { "$ref": "#/$defs/bindings_metadata" },
    "functions": {
      "type": "array",
      "items": { "$ref": "#/$defs/function_definition" },
      "minItems": 1
    }
  },
  "$defs": {
    "bindings_metadata": {
      "type": "object",
      "required": ["name", "package"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
        "package": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
        "version": { "type": "string", "pattern": "^\\d+\\.\\d+\\.\\d+$" },
        "description": { "type": "string" }
      }
    },
    "function_definition": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
        "description": { "type": "string" },
        "params": {
          "type": "array",
          "items": { "$ref": "#/$defs/parameter_definition" }
        },
        "returns": { "$ref": "#/$defs/return_definition" },
        "uses_scope": { "type": "boolean" },
        "uses_state": { "type": "boolean" },
        "options": { "$ref": "#/$defs/options_definition" }
      }
    },
    "parameter_definition": {
      "type": "object",
      "required": ["name", "type"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
        "type": { "$ref": "#/$defs/type_spelling" },
        "description": { "type": "string" }
      }
    },
    "return_definition": {
      "type": "object",
      "required": ["type"],
      "additionalProperties": false,
      "properties": {
        "type": { "$ref": "#/$defs/type_spelling" },
        "fallible": { "type": "boolean" },
        "description": { "type": "string" }
      }
    },
    "options_definition": {
      "type": "object",
      "properties": {
        "state": { "$ref": "#/$defs/type_spelling" },
        "name": { "type": "string", "minLength": 1 },
        "promise": { "type": "boolean" },
        "fast": { "type": "boolean" }
      }
    },
    "type_spelling": {
      "type": "string",
      "pattern": "^(handle:[A-Za-z][A-Za-z0-9]*|[A-Za-z][A-Za-z0-9_]*(<.+>)?)$"
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to decode schema JSON: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource: %v", err))
	}
	var err error
	compiledSchema, err = c.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
}

// ValidateSchema validates raw YAML bytes against the bindings definition JSON Schema.
func ValidateSchema(yamlData []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(yamlData, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	converted := convertYAMLToJSON(raw)

	if err := compiledSchema.Validate(converted); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// convertYAMLToJSON converts YAML-parsed values to JSON-compatible types.
// yaml.v3 parses maps as map[string]interface{} which is already JSON-compatible,
// but nested maps and integer scalars need recursive conversion.
func convertYAMLToJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			result[k] = convertYAMLToJSON(val)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = convertYAMLToJSON(val)
		}
		return result
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}

// SchemaJSON returns the embedded schema text for the dump-schema command.
func SchemaJSON() string {
	return schemaJSON
}
