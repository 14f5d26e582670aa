// Package errorhandler runs Cobra commands and turns their failures into
// errors that keep the original cause and the command that failed.
package errorhandler

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"
)

// Executor coordinates Cobra execution and surfaces failures as *CommandError.
type Executor struct {
	normalizer DefaultNormalizer
}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs the provided command. It returns nil on success, or a
// *CommandError holding the original error and the command that failed.
//
// When the command lets Cobra print errors, the error stream is captured
// during execution and normalized into the message. Commands with
// SilenceErrors set keep their error stream untouched so that diagnostics
// reach the user as they are written.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	if cmd.SilenceErrors {
		executed, err := cmd.ExecuteC()
		if err == nil {
			return nil
		}

		return &CommandError{cause: err, command: executed}
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	executed, err := cmd.ExecuteC()
	if err == nil {
		return nil
	}

	return &CommandError{
		message: e.normalizer.Normalize(errBuf.String()),
		cause:   err,
		command: executed,
	}
}

// CommandError represents a Cobra execution failure.
type CommandError struct {
	message string
	cause   error
	command *cobra.Command
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Command returns the command that failed, or nil when unknown.
func (e *CommandError) Command() *cobra.Command {
	if e == nil {
		return nil
	}

	return e.command
}

// DefaultNormalizer cleans up text Cobra wrote to the error stream.
type DefaultNormalizer struct{}

// Normalize trims whitespace, removes redundant "Error:" prefixes, and preserves multi-line usage hints.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
