// Package configmanager resolves the geprotocol configuration from defaults,
// an optional YAML config file, GEPROTOCOL_ environment variables and flags.
package configmanager
