// Package yamlmarshaller provides a YAML implementation of the marshaller interface.
package yamlmarshaller

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshaller is a struct for marshalling YAML documents.
type Marshaller[T any] struct{}

// NewMarshaller creates a new YAML marshaller.
func NewMarshaller[T any]() *Marshaller[T] {
	return &Marshaller[T]{}
}

// Marshal serializes the model into a string representation.
func (m *Marshaller[T]) Marshal(model T) (string, error) {
	data, err := yaml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return string(data), nil
}

// Unmarshal deserializes the model from a byte representation.
func (m *Marshaller[T]) Unmarshal(data []byte, model *T) error {
	err := yaml.Unmarshal(data, model)
	if err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return nil
}
