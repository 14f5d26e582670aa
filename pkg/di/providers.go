package di

import (
	"fmt"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/fsutil"
	"github.com/mri-tools/geprotocol/pkg/io/configmanager"
	"github.com/mri-tools/geprotocol/pkg/svc/extractor"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ConfigFlag names the persistent flag holding an explicit config file path.
const ConfigFlag = "config"

// NewRuntime constructs the shared runtime used by the root command and tests.
func NewRuntime() *Runtime {
	return New(ProvideFilesystem(afero.NewOsFs()))
}

// ProvideFilesystem registers fs as the filesystem used for every file access.
func ProvideFilesystem(fs afero.Fs) Module {
	return func(i Injector) error {
		do.ProvideValue(i, fs)

		return nil
	}
}

// CommandModule registers the configuration, logger and extractor resolved
// for cmd. The config file is read from the registered filesystem.
func CommandModule(cmd *cobra.Command) Module {
	return func(i Injector) error {
		do.Provide(i, func(i Injector) (*v1alpha1.Config, error) {
			fs, err := ResolveFilesystem(i)
			if err != nil {
				return nil, err
			}

			return loadConfig(cmd, fs)
		})

		do.Provide(i, func(i Injector) (*logrus.Logger, error) {
			cfg, err := ResolveConfig(i)
			if err != nil {
				return nil, err
			}

			return NewLogger(cmd, cfg.LogLevel)
		})

		do.Provide(i, func(i Injector) (*extractor.Extractor, error) {
			fs, err := ResolveFilesystem(i)
			if err != nil {
				return nil, err
			}

			cfg, err := ResolveConfig(i)
			if err != nil {
				return nil, err
			}

			logger, err := ResolveLogger(i)
			if err != nil {
				return nil, err
			}

			return extractor.New(fs, cfg, logger), nil
		})

		return nil
	}
}

// NewLogger creates a logger writing to the command's stderr.
func NewLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", v1alpha1.ErrInvalidLogLevel, level)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	return logger, nil
}

func loadConfig(cmd *cobra.Command, fs afero.Fs) (*v1alpha1.Config, error) {
	var configFile string

	if flag := cmd.Flags().Lookup(ConfigFlag); flag != nil {
		configFile = flag.Value.String()
	}

	configFile, err := fsutil.ExpandHomePath(configFile)
	if err != nil {
		return nil, err
	}

	manager := configmanager.NewConfigManager(fs, configFile)

	err = manager.BindFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	return manager.LoadConfig()
}
