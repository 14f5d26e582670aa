package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	errNotJSONObject  = errors.New("expected a JSON object")
	errNotYAMLMapping = errors.New("expected a YAML mapping")
	errNotScalar      = errors.New("expected a scalar value")
)

// Mapping is an insertion-ordered map from parameter name to value.
// Setting an existing key replaces its value and keeps its original position.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: map[string]string{}}
}

// Set stores value under key.
func (m *Mapping) Set(key, value string) {
	if m.values == nil {
		m.values = map[string]string{}
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}

	value, ok := m.values[key]

	return value, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)

	return ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// All iterates over entries in insertion order.
func (m *Mapping) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}

		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// Equal reports whether both mappings hold the same entries in the same order.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}

	for i, key := range m.Keys() {
		if other.keys[i] != key || other.values[key] != m.values[key] {
			return false
		}
	}

	return true
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeJSONString(&buf, key); err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		if err := writeJSONString(&buf, m.values[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, value string) error {
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode %q: %w", value, err)
	}

	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}

// UnmarshalJSON reads a flat JSON object of strings, keeping document order.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("read protocol mapping: %w", err)
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errNotJSONObject
	}

	parsed := NewMapping()

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("read protocol mapping key: %w", err)
		}

		key, _ := keyToken.(string)

		var value string

		err = decoder.Decode(&value)
		if err != nil {
			return fmt.Errorf("read value of %q: %w", key, err)
		}

		parsed.Set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("read protocol mapping end: %w", err)
	}

	*m = *parsed

	return nil
}

// MarshalYAML renders the entries as an ordered YAML mapping.
func (m *Mapping) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for key, value := range m.All() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}

	return node, nil
}

// UnmarshalYAML reads a flat YAML mapping of scalars, keeping document order.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w at line %d", errNotYAMLMapping, node.Line)
	}

	parsed := NewMapping()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w for %q at line %d", errNotScalar, keyNode.Value, valueNode.Line)
		}

		parsed.Set(keyNode.Value, valueNode.Value)
	}

	*m = *parsed

	return nil
}
