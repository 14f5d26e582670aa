package schemas_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestGeneratedSchema(t *testing.T) {
	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "geprotocol-config.schema.json")

	// Run the generator from the schemas/ directory.
	cmd := exec.Command("go", "run", "gen_schema.go", outPath)
	cmd.Dir = filepath.Join("..", "schemas")

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("generator failed: %v\noutput:\n%s", err, string(out))
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read generated schema: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(b, &schema); err != nil {
		t.Fatalf("unmarshal generated schema: %v", err)
	}

	t.Run("root metadata", func(t *testing.T) {
		if got := schema["title"]; got != "geprotocol configuration" {
			t.Errorf("title = %q, want %q", got, "geprotocol configuration")
		}

		if got := schema["additionalProperties"]; got != false {
			t.Errorf("additionalProperties = %v, want false", got)
		}

		if schema["required"] != nil {
			t.Errorf("required = %v, want none", schema["required"])
		}
	})

	t.Run("diff style enum", func(t *testing.T) {
		assertEnum(t, mustProp(t, schema, "diff-style"), []string{"inline", "heading"})
	})

	t.Run("element is a string", func(t *testing.T) {
		element := mustProp(t, schema, "element")
		if element["type"] != "string" {
			t.Errorf("element type = %v, want string", element["type"])
		}
	})
}

func mustProp(t *testing.T, schema map[string]any, key string) map[string]any {
	t.Helper()

	props := mustMap(t, schema["properties"], "properties")

	return mustMap(t, props[key], key)
}

func mustMap(t *testing.T, v any, path string) map[string]any {
	t.Helper()

	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected %s to be an object, got %T", path, v)
	}

	return m
}

func assertEnum(t *testing.T, prop map[string]any, want []string) {
	t.Helper()

	got, ok := prop["enum"].([]any)
	if !ok {
		t.Fatalf("expected enum to be an array, got %T", prop["enum"])
	}

	if len(got) != len(want) {
		t.Fatalf("enum length = %d, want %d: %v", len(got), len(want), got)
	}

	for i, w := range want {
		if got[i] != w {
			t.Errorf("enum[%d] = %v, want %v", i, got[i], w)
		}
	}
}
