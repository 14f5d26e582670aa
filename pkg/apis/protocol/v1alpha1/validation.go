package v1alpha1

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
)

// Validate reports every invalid setting in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.HeaderLength < 0 {
		errs = append(errs, fmt.Errorf("%w: %d (must not be negative)", ErrInvalidHeaderLength, c.HeaderLength))
	}

	if err := ValidateEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains(ValidDiffStyles(), c.DiffStyle) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidDiffStyle, c.DiffStyle))
	}

	if c.JSONIndent < 0 || c.JSONIndent > MaxJSONIndent {
		errs = append(errs, fmt.Errorf(
			"%w: %d (must be between 0 and %d)", ErrInvalidJSONIndent, c.JSONIndent, MaxJSONIndent,
		))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}

	return errors.Join(errs...)
}

// ValidateEncoding checks that label names an encoding known to the WHATWG index.
func ValidateEncoding(label string) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidEncoding)
	}

	if _, err := htmlindex.Get(label); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, label)
	}

	return nil
}
