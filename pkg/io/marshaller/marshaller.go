// Package marshaller serializes protocol mappings to the supported output formats.
package marshaller

import (
	"fmt"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	jsonmarshaller "github.com/mri-tools/geprotocol/pkg/io/marshaller/json"
	yamlmarshaller "github.com/mri-tools/geprotocol/pkg/io/marshaller/yaml"
)

// Marshaller serializes and deserializes models of type T.
type Marshaller[T any] interface {
	// Marshal serializes the model into a string representation.
	Marshal(model T) (string, error)
	// Unmarshal deserializes data into model.
	Unmarshal(data []byte, model *T) error
}

// ForFormat returns the marshaller for format. indent only applies to JSON.
func ForFormat[T any](format v1alpha1.OutputFormat, indent int) (Marshaller[T], error) {
	switch format {
	case v1alpha1.OutputFormatJSON, "":
		return jsonmarshaller.NewMarshaller[T](indent), nil
	case v1alpha1.OutputFormatYAML:
		return yamlmarshaller.NewMarshaller[T](), nil
	default:
		return nil, fmt.Errorf("%w: %q", v1alpha1.ErrInvalidOutputFormat, format)
	}
}
