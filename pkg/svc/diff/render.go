package diff

import (
	"fmt"
	"io"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
)

// Separator terminates every rendered record.
const Separator = "---"

// Renderer writes records in one of the two supported layouts.
//
// Inline:
//
//	< KEY REFERENCE
//	> KEY TEST
//	---
//
// Heading:
//
//	KEY
//	< REFERENCE
//	> TEST
//	---
//
// In both layouts the side that lacks the key is a bare "<" or ">".
type Renderer struct {
	Style v1alpha1.DiffStyle
}

// NewRenderer creates a renderer for style, defaulting to the inline layout.
func NewRenderer(style v1alpha1.DiffStyle) *Renderer {
	if style == "" {
		style = v1alpha1.DiffStyleInline
	}

	return &Renderer{Style: style}
}

// Render writes every record to w.
func (r *Renderer) Render(w io.Writer, records []Record) error {
	for _, record := range records {
		if err := r.renderRecord(w, record); err != nil {
			return fmt.Errorf("render %s record %q: %w", record.Kind, record.Key, err)
		}
	}

	return nil
}

func (r *Renderer) renderRecord(w io.Writer, record Record) error {
	var lines [][]any

	switch r.Style {
	case v1alpha1.DiffStyleHeading:
		lines = [][]any{
			{record.Key},
			side("<", record.HasReference(), record.Reference),
			side(">", record.HasTest(), record.Test),
		}
	case v1alpha1.DiffStyleInline:
		lines = [][]any{
			side("<", record.HasReference(), record.Key, record.Reference),
			side(">", record.HasTest(), record.Key, record.Test),
		}
	default:
		return fmt.Errorf("%w: %q", v1alpha1.ErrInvalidDiffStyle, r.Style)
	}

	lines = append(lines, []any{Separator})

	for _, operands := range lines {
		// Println separates operands with single spaces, so an empty value
		// leaves a trailing space after the key.
		if _, err := fmt.Fprintln(w, operands...); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}

	return nil
}

func side(marker string, present bool, operands ...string) []any {
	line := []any{marker}
	if !present {
		return line
	}

	for _, operand := range operands {
		line = append(line, operand)
	}

	return line
}
