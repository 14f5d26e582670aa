// Package envvar expands ${VAR} placeholders in configuration values.
package envvar

import (
	"os"
	"reflect"
	"regexp"

	"github.com/go-viper/mapstructure/v2"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-fallback} placeholders.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Expand replaces placeholders with the values of environment variables.
// An unset or empty variable yields its fallback, or the empty string.
func Expand(value string) string {
	return ExpandWith(value, os.LookupEnv)
}

// ExpandWith is Expand with a custom variable lookup.
func ExpandWith(value string, lookup func(string) (string, bool)) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		if resolved, ok := lookup(groups[1]); ok && resolved != "" {
			return resolved
		}

		return groups[2]
	})
}

// DecodeHook expands placeholders in every string decoded by mapstructure.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, _ reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		text, ok := data.(string)
		if !ok {
			return data, nil
		}

		return Expand(text), nil
	}
}
