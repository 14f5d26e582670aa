package v1alpha1

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag addresses a DICOM data element by its 16-bit group and element numbers.
type Tag struct {
	Group   uint16
	Element uint16
}

// ParseTag parses a tag written as "gggg,eeee" in hexadecimal. Surrounding
// parentheses, whitespace and "0x" prefixes are accepted, so "(0025,101B)"
// and "0x0025, 0x101b" are equivalent.
func ParseTag(value string) (Tag, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	groupText, elementText, found := strings.Cut(trimmed, ",")
	if !found {
		return Tag{}, fmt.Errorf("%w: %q (expected gggg,eeee)", ErrInvalidTag, value)
	}

	group, err := parseTagPart(groupText)
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %q: group: %w", ErrInvalidTag, value, err)
	}

	element, err := parseTagPart(elementText)
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %q: element: %w", ErrInvalidTag, value, err)
	}

	return Tag{Group: group, Element: element}, nil
}

func parseTagPart(part string) (uint16, error) {
	part = strings.TrimSpace(part)
	part = strings.TrimPrefix(strings.TrimPrefix(part, "0x"), "0X")

	if part == "" || len(part) > 4 {
		return 0, fmt.Errorf("want 1 to 4 hex digits, got %q", part)
	}

	number, err := strconv.ParseUint(part, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("parse hex: %w", err)
	}

	return uint16(number), nil
}

// String renders the tag the way DICOM tooling prints it, e.g. "(0025,101b)".
func (t Tag) String() string {
	return fmt.Sprintf("(%04x,%04x)", t.Group, t.Element)
}

// MarshalText renders the tag as "gggg,eeee".
func (t Tag) MarshalText() ([]byte, error) {
	return fmt.Appendf(nil, "%04x,%04x", t.Group, t.Element), nil
}

// UnmarshalText parses the tag from "gggg,eeee".
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Set for Tag (pflag.Value interface).
func (t *Tag) Set(value string) error {
	return t.UnmarshalText([]byte(value))
}

// Type returns the type name for pflag.
func (t *Tag) Type() string {
	return "Tag"
}
