package v1alpha1_test

import (
	"encoding/json"
	"testing"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	raw, err := v1alpha1.Schema()
	require.NoError(t, err)

	var schema map[string]any

	require.NoError(t, json.Unmarshal(raw, &schema))
	assert.Equal(t, v1alpha1.SchemaTitle, schema["title"])
	assert.Equal(t, false, schema["additionalProperties"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "expected properties object")

	for _, key := range []string{"element", "header-length", "encoding", "diff-style", "json-indent", "log-level"} {
		assert.Contains(t, props, key)
	}

	style, ok := props["diff-style"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"inline", "heading"}, style["enum"])

	element, ok := props["element"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", element["type"])
}
