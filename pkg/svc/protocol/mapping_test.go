package protocol_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mri-tools/geprotocol/pkg/svc/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newMapping(pairs ...string) *protocol.Mapping {
	m := protocol.NewMapping()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}

	return m
}

func TestMappingAccessors(t *testing.T) {
	t.Parallel()

	m := newMapping("B", "2", "A", "1")

	value, ok := m.Get("A")
	assert.True(t, ok)
	assert.Equal(t, "1", value)
	assert.False(t, m.Has("C"))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"B", "A"}, m.Keys())
}

func TestNilMappingIsEmpty(t *testing.T) {
	t.Parallel()

	var m *protocol.Mapping

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("A"))
	assert.Empty(t, entries(m))
	assert.True(t, m.Equal(protocol.NewMapping()))
}

func TestMappingEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, newMapping("A", "1", "B", "2").Equal(newMapping("A", "1", "B", "2")))
	assert.False(t, newMapping("A", "1", "B", "2").Equal(newMapping("B", "2", "A", "1")))
	assert.False(t, newMapping("A", "1").Equal(newMapping("A", "2")))
	assert.False(t, newMapping("A", "1").Equal(newMapping("A", "1", "B", "2")))
}

func TestMappingJSONKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := newMapping("ZZZ", "last <b>", "AAA", "first \"quoted\"")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ZZZ":"last <b>","AAA":"first \"quoted\""}`, string(data))
	assert.Less(t, strings.Index(string(data), "ZZZ"), strings.Index(string(data), "AAA"))

	decoded := protocol.NewMapping()

	require.NoError(t, json.Unmarshal(data, decoded))
	assert.True(t, m.Equal(decoded))
}

func TestMappingUnmarshalJSONRejectsNonObjects(t *testing.T) {
	t.Parallel()

	m := protocol.NewMapping()

	require.Error(t, json.Unmarshal([]byte(`["A","1"]`), m))
	require.Error(t, json.Unmarshal([]byte(`{"A":1}`), m))
}

func TestMappingYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	m := newMapping("ZZZ", "1", "AAA", "x", "MMM", "")

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "ZZZ: \"1\"\nAAA: x\nMMM: \"\"\n", string(data))

	decoded := protocol.NewMapping()

	require.NoError(t, yaml.Unmarshal(data, decoded))
	assert.True(t, m.Equal(decoded))
}

func TestMappingUnmarshalYAMLRejectsNestedValues(t *testing.T) {
	t.Parallel()

	m := protocol.NewMapping()

	require.Error(t, yaml.Unmarshal([]byte("A:\n  nested: 1\n"), m))
	require.Error(t, yaml.Unmarshal([]byte("- A\n- B\n"), m))
}
