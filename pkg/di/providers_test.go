package di_test

import (
	"bytes"
	"testing"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/di"
	"github.com/mri-tools/geprotocol/pkg/testutil/dicomtest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	var stderr bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.SetErr(&stderr)
	cmd.Flags().String(di.ConfigFlag, "/absent.yaml", "")
	cmd.Flags().Int("header-length", v1alpha1.DefaultHeaderLength, "")
	cmd.Flags().String("log-level", v1alpha1.DefaultLogLevel, "")

	require.NoError(t, cmd.Flags().Parse(args))

	return cmd, &stderr
}

func withConfig(t *testing.T, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config.yaml", []byte(content), 0o600))

	return fs
}

func TestCommandModuleResolvesConfigFromFlags(t *testing.T) {
	t.Parallel()

	cmd, _ := newCommand(t, "--config", "/config.yaml", "--header-length", "2")

	err := di.New(di.ProvideFilesystem(withConfig(t, "encoding: latin1\n"))).Invoke(func(injector di.Injector) error {
		cfg, err := di.ResolveConfig(injector)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.HeaderLength)
		assert.Equal(t, "latin1", cfg.Encoding)

		return nil
	}, di.CommandModule(cmd))

	require.NoError(t, err)
}

func TestCommandModuleMissingExplicitConfig(t *testing.T) {
	t.Parallel()

	cmd, _ := newCommand(t)

	err := di.New(di.ProvideFilesystem(afero.NewMemMapFs())).Invoke(func(injector di.Injector) error {
		_, err := di.ResolveConfig(injector)

		return err
	}, di.CommandModule(cmd))

	require.Error(t, err)
	assert.ErrorContains(t, err, "resolve configuration dependency")
}

func TestCommandModuleLoggerWritesToStderr(t *testing.T) {
	t.Parallel()

	cmd, stderr := newCommand(t, "--config", "/config.yaml", "--log-level", "debug")

	err := di.New(di.ProvideFilesystem(withConfig(t, "{}\n"))).Invoke(func(injector di.Injector) error {
		logger, err := di.ResolveLogger(injector)
		require.NoError(t, err)

		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
		logger.WithField("path", "scan.dcm").Debug("probe")

		return nil
	}, di.CommandModule(cmd))

	require.NoError(t, err)
	assert.Equal(t, "level=debug msg=probe path=scan.dcm\n", stderr.String())
}

func TestCommandModuleResolvesExtractor(t *testing.T) {
	t.Parallel()

	memFs := withConfig(t, "{}\n")
	require.NoError(t, afero.WriteFile(memFs, "/scan.dcm", dicomtest.ProtocolFile(t, "A \"1\"\n"), 0o600))

	cmd, _ := newCommand(t, "--config", "/config.yaml")

	err := di.New(di.ProvideFilesystem(memFs)).Invoke(func(injector di.Injector) error {
		ext, err := di.ResolveExtractor(injector)
		require.NoError(t, err)

		mapping, err := ext.ExtractFile("/scan.dcm")
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, mapping.Keys())

		return nil
	}, di.CommandModule(cmd))

	require.NoError(t, err)
}

func TestCommandModuleConfigNeedsFilesystem(t *testing.T) {
	t.Parallel()

	cmd, _ := newCommand(t)

	err := di.New().Invoke(func(injector di.Injector) error {
		_, err := di.ResolveConfig(injector)

		return err
	}, di.CommandModule(cmd))

	require.ErrorContains(t, err, "resolve filesystem dependency")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := di.NewLogger(&cobra.Command{}, "chatty")

	require.ErrorIs(t, err, v1alpha1.ErrInvalidLogLevel)
}

func TestResolveWithoutProviders(t *testing.T) {
	t.Parallel()

	err := di.New().Invoke(func(injector di.Injector) error {
		_, fsErr := di.ResolveFilesystem(injector)
		require.Error(t, fsErr)

		_, extErr := di.ResolveExtractor(injector)
		require.Error(t, extErr)

		return nil
	})

	require.NoError(t, err)
}
