// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages:
//
//   - cli/cmd: the geprotocol command tree and exit status mapping
//   - cli/ui/errorhandler: command execution with normalized errors
//
// Commands resolve their services from the runtime container in the di
// package, which keeps them testable against an in-memory filesystem.
package cli
