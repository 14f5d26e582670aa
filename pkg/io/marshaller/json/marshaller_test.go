package jsonmarshaller_test

import (
	"testing"

	jsonmarshaller "github.com/mri-tools/geprotocol/pkg/io/marshaller/json"
	"github.com/mri-tools/geprotocol/pkg/svc/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		indent int
		model  sample
		want   string
	}{
		{
			name:   "zero indent keeps one member per line",
			indent: 0,
			model:  sample{Name: "app", Count: 3},
			want:   "{\n\"name\": \"app\",\n\"count\": 3\n}\n",
		},
		{
			name:   "two space indent",
			indent: 2,
			model:  sample{Name: "app", Count: 3},
			want:   "{\n  \"name\": \"app\",\n  \"count\": 3\n}\n",
		},
		{
			name:   "negative indent is treated as zero",
			indent: -4,
			model:  sample{Name: "app"},
			want:   "{\n\"name\": \"app\",\n\"count\": 0\n}\n",
		},
		{
			name:   "html characters are not escaped",
			indent: 0,
			model:  sample{Name: "<a & b>"},
			want:   "{\n\"name\": \"<a & b>\",\n\"count\": 0\n}\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := jsonmarshaller.NewMarshaller[sample](testCase.indent).Marshal(testCase.model)

			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}

func TestMarshalMappingKeepsOrder(t *testing.T) {
	t.Parallel()

	mapping := protocol.NewMapping()
	mapping.Set("ZZZ", "1")
	mapping.Set("AAA", "say \"hi\"")
	mapping.Set("MMM", "")

	out, err := jsonmarshaller.NewMarshaller[*protocol.Mapping](0).Marshal(mapping)

	require.NoError(t, err)
	assert.Equal(t, "{\n\"ZZZ\": \"1\",\n\"AAA\": \"say \\\"hi\\\"\",\n\"MMM\": \"\"\n}\n", out)
}

func TestMarshalEmptyMapping(t *testing.T) {
	t.Parallel()

	out, err := jsonmarshaller.NewMarshaller[*protocol.Mapping](0).Marshal(protocol.NewMapping())

	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
}

func TestMarshalError(t *testing.T) {
	t.Parallel()

	type bad struct {
		F func()
	}

	out, err := jsonmarshaller.NewMarshaller[bad](0).Marshal(bad{F: func() {}})

	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorContains(t, err, "failed to marshal JSON")
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	mar := jsonmarshaller.NewMarshaller[sample](0)

	var got sample

	require.NoError(t, mar.Unmarshal([]byte(`{"name":"app","count":3}`), &got))
	assert.Equal(t, sample{Name: "app", Count: 3}, got)

	err := mar.Unmarshal([]byte(`{"name":`), &got)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to unmarshal JSON")
}
