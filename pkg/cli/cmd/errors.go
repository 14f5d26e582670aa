package cmd

import (
	"errors"

	"github.com/mri-tools/geprotocol/pkg/svc/dicomreader"
	"github.com/mri-tools/geprotocol/pkg/svc/payload"
	"github.com/mri-tools/geprotocol/pkg/svc/protocol"
	"github.com/spf13/cobra"
)

// Exit statuses returned by the geprotocol binary.
const (
	ExitOK             = 0
	ExitMissingElement = 1
	ExitUsage          = 2
	ExitMalformed      = 3
	ExitFailure        = 4
)

// UsageError marks invalid flags, unknown commands and wrong argument counts.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an execution error to the process exit status.
func ExitCode(err error) int {
	var (
		missing  *dicomreader.MissingElementError
		usage    *UsageError
		decode   *payload.DecodeError
		parseErr *protocol.ParseError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &missing):
		return ExitMissingElement
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &decode), errors.As(err, &parseErr):
		return ExitMalformed
	default:
		return ExitFailure
	}
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := validate(cmd, args)
		if err != nil {
			return &UsageError{Err: err}
		}

		return nil
	}
}

func flagUsageError(_ *cobra.Command, err error) error {
	return &UsageError{Err: err}
}
