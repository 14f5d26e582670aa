package v1alpha1

import (
	"fmt"
	"strings"
)

// --- Enum Interface ---

// EnumValuer is implemented by string-based enum types to provide their valid values.
// The schema generator uses this interface to discover enum constraints.
type EnumValuer interface {
	// ValidValues returns all valid string values for this enum type.
	ValidValues() []string
}

// --- Diff Style ---

// DiffStyle selects how diff records are laid out.
type DiffStyle string

const (
	// DiffStyleInline prints the key on the value lines: "< KEY VALUE" / "> KEY VALUE".
	DiffStyleInline DiffStyle = "inline"
	// DiffStyleHeading prints the key on its own line followed by "< VALUE" / "> VALUE".
	DiffStyleHeading DiffStyle = "heading"
)

// ValidDiffStyles returns supported diff styles.
func ValidDiffStyles() []DiffStyle {
	return []DiffStyle{DiffStyleInline, DiffStyleHeading}
}

// Set for DiffStyle (pflag.Value interface).
func (s *DiffStyle) Set(value string) error {
	for _, style := range ValidDiffStyles() {
		if strings.EqualFold(value, string(style)) {
			*s = style

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s)",
		ErrInvalidDiffStyle,
		value,
		strings.Join(stringValues(ValidDiffStyles()), ", "),
	)
}

// String returns the string representation of the DiffStyle.
func (s *DiffStyle) String() string {
	return string(*s)
}

// Type returns the type name for pflag.
func (s *DiffStyle) Type() string {
	return "DiffStyle"
}

// UnmarshalText lets config decoding validate the style.
func (s *DiffStyle) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// ValidValues returns all valid DiffStyle values as strings.
func (s *DiffStyle) ValidValues() []string {
	return stringValues(ValidDiffStyles())
}

// --- Output Format ---

// OutputFormat selects the serialization of a protocol mapping.
type OutputFormat string

const (
	// OutputFormatJSON writes a JSON object.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML writes a YAML mapping.
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidOutputFormats returns supported output formats.
func ValidOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatJSON, OutputFormatYAML}
}

// Set for OutputFormat (pflag.Value interface).
func (f *OutputFormat) Set(value string) error {
	for _, format := range ValidOutputFormats() {
		if strings.EqualFold(value, string(format)) {
			*f = format

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s)",
		ErrInvalidOutputFormat,
		value,
		strings.Join(stringValues(ValidOutputFormats()), ", "),
	)
}

// String returns the string representation of the OutputFormat.
func (f *OutputFormat) String() string {
	return string(*f)
}

// Type returns the type name for pflag.
func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

// ValidValues returns all valid OutputFormat values as strings.
func (f *OutputFormat) ValidValues() []string {
	return stringValues(ValidOutputFormats())
}

// --- Input Format ---

// InputFormat tells the extractor how to read a file.
type InputFormat string

const (
	// InputFormatAuto probes for a DICOM signature and falls back to LxProtocol text.
	InputFormatAuto InputFormat = "auto"
	// InputFormatDICOM reads the protocol block from a DICOM private element.
	InputFormatDICOM InputFormat = "dicom"
	// InputFormatLx reads an LxProtocol text file ("    set NAME \"VALUE\"" lines).
	InputFormatLx InputFormat = "lx"
	// InputFormatJSON reads a mapping previously written as JSON.
	InputFormatJSON InputFormat = "json"
	// InputFormatYAML reads a mapping previously written as YAML.
	InputFormatYAML InputFormat = "yaml"
)

// ValidInputFormats returns supported input formats.
func ValidInputFormats() []InputFormat {
	return []InputFormat{
		InputFormatAuto,
		InputFormatDICOM,
		InputFormatLx,
		InputFormatJSON,
		InputFormatYAML,
	}
}

// Set for InputFormat (pflag.Value interface).
func (f *InputFormat) Set(value string) error {
	for _, format := range ValidInputFormats() {
		if strings.EqualFold(value, string(format)) {
			*f = format

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s)",
		ErrInvalidInputFormat,
		value,
		strings.Join(stringValues(ValidInputFormats()), ", "),
	)
}

// String returns the string representation of the InputFormat.
func (f *InputFormat) String() string {
	return string(*f)
}

// Type returns the type name for pflag.
func (f *InputFormat) Type() string {
	return "InputFormat"
}

// ValidValues returns all valid InputFormat values as strings.
func (f *InputFormat) ValidValues() []string {
	return stringValues(ValidInputFormats())
}

func stringValues[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}

	return out
}
