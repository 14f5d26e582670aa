package v1alpha1

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// SchemaTitle is the title of the generated configuration schema.
const SchemaTitle = "geprotocol configuration"

// Schema returns the JSON Schema of the configuration file.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    customTypeMapper,
	}
	schema := reflector.Reflect(&Config{})

	schema.ID = ""
	schema.Title = SchemaTitle
	schema.Description = "JSON schema for the geprotocol config file (.geprotocol.yaml)"
	schema.Required = nil

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return schemaJSON, nil
}

// customTypeMapper renders text-marshalled types as strings and enum types with their values.
func customTypeMapper(typ reflect.Type) *jsonschema.Schema {
	if typ == reflect.TypeFor[Tag]() {
		return &jsonschema.Schema{
			Type:    "string",
			Pattern: `^\(?(0[xX])?[0-9a-fA-F]{1,4},\s*(0[xX])?[0-9a-fA-F]{1,4}\)?$`,
		}
	}

	if valuer, ok := reflect.New(typ).Interface().(EnumValuer); ok {
		enum := make([]any, 0, len(valuer.ValidValues()))
		for _, value := range valuer.ValidValues() {
			enum = append(enum, value)
		}

		return &jsonschema.Schema{Type: "string", Enum: enum}
	}

	return nil
}
