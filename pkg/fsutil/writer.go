package fsutil

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPermUserGroupRX = 0o750
	filePermUserRW     = 0o600
)

// WriteFile writes content to output on fs, creating missing parent
// directories. An existing file is replaced.
func WriteFile(fs afero.Fs, output string, content []byte) error {
	if output == "" {
		return ErrEmptyOutputPath
	}

	output = filepath.Clean(output)
	dir := filepath.Dir(output)

	err := fs.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = afero.WriteFile(fs, output, content, filePermUserRW)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return nil
}
