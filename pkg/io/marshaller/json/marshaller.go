// Package jsonmarshaller provides a JSON implementation of the marshaller interface.
package jsonmarshaller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Marshaller writes one member per line, indented by Indent spaces, without
// HTML escaping and with a trailing newline.
type Marshaller[T any] struct {
	Indent int
}

// NewMarshaller creates a new JSON marshaller.
func NewMarshaller[T any](indent int) *Marshaller[T] {
	return &Marshaller[T]{Indent: max(indent, 0)}
}

// Marshal serializes the model into a string representation.
func (m *Marshaller[T]) Marshal(model T) (string, error) {
	var compact bytes.Buffer

	encoder := json.NewEncoder(&compact)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Indent breaks lines even when the indent string is empty.
	var out bytes.Buffer

	err = json.Indent(&out, bytes.TrimRight(compact.Bytes(), "\n"), "", strings.Repeat(" ", m.Indent))
	if err != nil {
		return "", fmt.Errorf("failed to indent JSON: %w", err)
	}

	out.WriteByte('\n')

	return out.String(), nil
}

// Unmarshal deserializes the model from a byte representation.
func (m *Marshaller[T]) Unmarshal(data []byte, model *T) error {
	err := json.Unmarshal(data, model)
	if err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}
