package cmd

import (
	"fmt"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/di"
	"github.com/mri-tools/geprotocol/pkg/io/marshaller"
	"github.com/mri-tools/geprotocol/pkg/svc/protocol"
	"github.com/spf13/cobra"
)

// NewDumpCmd creates the dump command.
func NewDumpCmd(runtime *di.Runtime) *cobra.Command {
	format := v1alpha1.OutputFormatJSON
	inputFormat := v1alpha1.InputFormatAuto

	cmd := &cobra.Command{
		Use:   "dump <input-file>",
		Short: "Print a protocol as JSON or YAML",
		Long: "Print the protocol read from <input-file> to standard output.\n\n" +
			"The input is a DICOM file or an LxProtocol text file, detected from its content\n" +
			"unless --input-format is given.",
		Args: usageArgs(cobra.ExactArgs(1)),
	}

	cmd.RunE = di.RunEWithRuntime(runtime, func(command *cobra.Command, args []string, injector di.Injector) error {
		return runDump(command, args[0], injector, inputFormat, format)
	})

	cmd.Flags().Var(&format, "format", "output format (json, yaml)")
	cmd.Flags().Var(&inputFormat, "input-format", "format of the input file (auto, dicom, lx, json, yaml)")

	return cmd
}

func runDump(
	cmd *cobra.Command,
	input string,
	injector di.Injector,
	inputFormat v1alpha1.InputFormat,
	format v1alpha1.OutputFormat,
) error {
	ext, err := di.ResolveExtractor(injector)
	if err != nil {
		return err
	}

	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return err
	}

	mapping, err := ext.Load(input, inputFormat)
	if err != nil {
		return err
	}

	mar, err := marshaller.ForFormat[*protocol.Mapping](format, cfg.JSONIndent)
	if err != nil {
		return err
	}

	content, err := mar.Marshal(mapping)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), content)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
