package cmd

import (
	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/di"
	"github.com/mri-tools/geprotocol/pkg/notify"
	"github.com/mri-tools/geprotocol/pkg/svc/diff"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	referenceFormatFlag = "reference-format"
	styleFlag           = "style"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(runtime *di.Runtime) *cobra.Command {
	referenceFormat := v1alpha1.InputFormatAuto
	style := v1alpha1.DiffStyleInline

	cmd := &cobra.Command{
		Use:   "diff <reference-file> <test-file>",
		Short: "Compare a reference protocol with the protocol of a DICOM file",
		Long: "Compare the protocol of <reference-file> with the protocol of the DICOM <test-file>.\n\n" +
			"The reference is a DICOM file or an LxProtocol text file, detected from its content\n" +
			"unless --reference-format is given. Every differing key is printed followed by ---;\n" +
			"a missing value is shown as a bare < or >. Identical protocols print nothing.",
		Args: usageArgs(cobra.ExactArgs(2)), //nolint:mnd // reference and test path
	}

	cmd.RunE = di.RunEWithRuntime(runtime, func(command *cobra.Command, args []string, injector di.Injector) error {
		return runDiff(command, args, injector, referenceFormat, style)
	})

	cmd.Flags().Var(&referenceFormat, referenceFormatFlag,
		"format of the reference file (auto, dicom, lx, json, yaml)")
	cmd.Flags().Var(&style, styleFlag, "layout of diff records (inline, heading)")

	return cmd
}

func runDiff(
	cmd *cobra.Command,
	args []string,
	injector di.Injector,
	referenceFormat v1alpha1.InputFormat,
	style v1alpha1.DiffStyle,
) error {
	referencePath, testPath := args[0], args[1]

	ext, err := di.ResolveExtractor(injector)
	if err != nil {
		return err
	}

	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return err
	}

	logger, err := di.ResolveLogger(injector)
	if err != nil {
		return err
	}

	reference, err := ext.Load(referencePath, referenceFormat)
	if err != nil {
		return err
	}

	test, err := ext.ExtractFile(testPath)
	if err != nil {
		return err
	}

	records := diff.Compute(reference, test)
	summary := diff.Summarize(records)

	logger.WithFields(logrus.Fields{
		"changed": summary.Changed,
		"removed": summary.Removed,
		"added":   summary.Added,
		"total":   summary.Total(),
	}).Debug("compared protocols")

	if summary.Total() == 0 && logger.IsLevelEnabled(logrus.InfoLevel) {
		notify.Infof(cmd.ErrOrStderr(), "%s and %s hold the same protocol", referencePath, testPath)
	}

	if !cmd.Flags().Changed(styleFlag) {
		style = cfg.DiffStyle
	}

	return diff.NewRenderer(style).Render(cmd.OutOrStdout(), records)
}
