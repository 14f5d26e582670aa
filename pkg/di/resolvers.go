package di

import (
	"fmt"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/svc/extractor"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ResolveFilesystem retrieves the filesystem dependency from the injector.
func ResolveFilesystem(injector Injector) (afero.Fs, error) {
	fs, err := do.Invoke[afero.Fs](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve filesystem dependency: %w", err)
	}

	return fs, nil
}

// ResolveConfig retrieves the resolved configuration from the injector.
func ResolveConfig(injector Injector) (*v1alpha1.Config, error) {
	cfg, err := do.Invoke[*v1alpha1.Config](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve configuration dependency: %w", err)
	}

	return cfg, nil
}

// ResolveLogger retrieves the logger dependency from the injector.
func ResolveLogger(injector Injector) (*logrus.Logger, error) {
	logger, err := do.Invoke[*logrus.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveExtractor retrieves the extractor dependency from the injector.
func ResolveExtractor(injector Injector) (*extractor.Extractor, error) {
	ext, err := do.Invoke[*extractor.Extractor](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve extractor dependency: %w", err)
	}

	return ext, nil
}
