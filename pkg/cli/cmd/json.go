package cmd

import (
	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/di"
	"github.com/mri-tools/geprotocol/pkg/fsutil"
	"github.com/mri-tools/geprotocol/pkg/io/marshaller"
	"github.com/mri-tools/geprotocol/pkg/notify"
	"github.com/mri-tools/geprotocol/pkg/svc/protocol"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewJSONCmd creates the json command.
func NewJSONCmd(runtime *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "json <input-file> <output-json-file>",
		Short: "Export the protocol block of a DICOM file as JSON",
		Long: "Extract the protocol block from <input-file> and write it to <output-json-file>\n" +
			"as a JSON object with one entry per line, in protocol order.",
		Args: usageArgs(cobra.ExactArgs(2)), //nolint:mnd // input and output path
		RunE: di.RunEWithRuntime(runtime, runJSON),
	}
}

func runJSON(cmd *cobra.Command, args []string, injector di.Injector) error {
	input, output := args[0], args[1]

	ext, err := di.ResolveExtractor(injector)
	if err != nil {
		return err
	}

	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return err
	}

	fs, err := di.ResolveFilesystem(injector)
	if err != nil {
		return err
	}

	logger, err := di.ResolveLogger(injector)
	if err != nil {
		return err
	}

	mapping, err := ext.ExtractFile(input)
	if err != nil {
		return err
	}

	if mapping.Len() == 0 && logger.IsLevelEnabled(logrus.WarnLevel) {
		notify.Warningf(cmd.ErrOrStderr(), "protocol block of %s holds no entries", input)
	}

	mar, err := marshaller.ForFormat[*protocol.Mapping](v1alpha1.OutputFormatJSON, cfg.JSONIndent)
	if err != nil {
		return err
	}

	content, err := mar.Marshal(mapping)
	if err != nil {
		return err
	}

	err = fsutil.WriteFile(fs, output, []byte(content))
	if err != nil {
		return err
	}

	if logger.IsLevelEnabled(logrus.InfoLevel) {
		notify.Successf(cmd.ErrOrStderr(), "wrote %d protocol entries to %s", mapping.Len(), output)
	}

	return nil
}
