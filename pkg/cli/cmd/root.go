package cmd

import (
	"errors"
	"fmt"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/cli/ui/errorhandler"
	"github.com/mri-tools/geprotocol/pkg/di"
	"github.com/mri-tools/geprotocol/pkg/io/configmanager"
	"github.com/mri-tools/geprotocol/pkg/notify"
	"github.com/mri-tools/geprotocol/pkg/svc/dicomreader"
	"github.com/spf13/cobra"
)

const versionTemplate = "{{.Name}} {{.Version}}\n"

// NewRootCmd creates the root command with the default runtime.
func NewRootCmd(version string) *cobra.Command {
	return NewRootCmdWithRuntime(version, di.NewRuntime())
}

// NewRootCmdWithRuntime creates the root command resolving services from runtime.
func NewRootCmdWithRuntime(version string, runtime *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geprotocol",
		Short: "Extract and compare GE MRI protocol blocks",
		Long: "geprotocol reads the protocol data block GE scanners store in a private DICOM element,\n" +
			"exports it as JSON and compares it with a reference protocol.",
		Version:       version,
		Args:          usageArgs(cobra.NoArgs),
		RunE:          handleRootRunE,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetVersionTemplate(versionTemplate)
	cmd.SetFlagErrorFunc(flagUsageError)
	cmd.CompletionOptions.DisableDefaultCmd = true

	element := v1alpha1.DefaultElement

	flags := cmd.PersistentFlags()
	flags.String(di.ConfigFlag, "", "config file (default is .geprotocol.yaml in the working or home directory)")
	flags.Var(&element, configmanager.KeyElement, "private element holding the protocol block")
	flags.Int(configmanager.KeyHeaderLength, v1alpha1.DefaultHeaderLength,
		"number of vendor header bytes before the compressed text")
	flags.String(configmanager.KeyEncoding, v1alpha1.DefaultEncoding, "text encoding of the protocol block")
	flags.String(configmanager.KeyLogLevel, v1alpha1.DefaultLogLevel, "diagnostic log level (debug, info, warn, error)")

	cmd.AddCommand(NewJSONCmd(runtime))
	cmd.AddCommand(NewDiffCmd(runtime))
	cmd.AddCommand(NewDumpCmd(runtime))
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// Run executes root, reports a failure on its error stream and returns the
// process exit status.
func Run(root *cobra.Command) int {
	err := Execute(root)
	if err == nil {
		return ExitOK
	}

	stderr := root.ErrOrStderr()

	var (
		cmdErr  *errorhandler.CommandError
		missing *dicomreader.MissingElementError
		usage   *UsageError
	)

	switch {
	case errors.As(err, &missing):
		// Scripts match this line from its first byte, so it carries no symbol.
		_, _ = fmt.Fprintf(stderr, "%s, exiting\n", missing.Error())
	case errors.As(err, &usage):
		notify.Errorf(stderr, "%s", usage.Error())

		failed := root
		if errors.As(err, &cmdErr) && cmdErr.Command() != nil {
			failed = cmdErr.Command()
		}

		_, _ = fmt.Fprint(stderr, failed.UsageString())
	case errors.As(err, &cmdErr):
		notify.Errorf(stderr, "%s", cmdErr.Error())
	default:
		notify.Errorf(stderr, "%v", err)
	}

	return ExitCode(err)
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
