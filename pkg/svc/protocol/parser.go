package protocol

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect identifies one of the two textual encodings of a protocol block.
type Dialect int

const (
	// DialectInline is the NAME "VALUE" format stored in the DICOM private element.
	DialectInline Dialect = iota
	// DialectIndentedSet is the `    set NAME "VALUE"` format of LxProtocol files.
	DialectIndentedSet
)

// String returns the dialect name used in error messages.
func (d Dialect) String() string {
	switch d {
	case DialectInline:
		return "inline"
	case DialectIndentedSet:
		return "indented-set"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Names are Unicode letters, digits and underscores; blanks include Unicode
// separators and the ASCII information separators.
const (
	namePattern  = `[\p{L}\p{N}_]+`
	blankPattern = `[\s\p{Z}\x{85}\x{1c}-\x{1f}]`
)

//nolint:gochecknoglobals // compiled once, read-only
var (
	inlinePattern = regexp.MustCompile(
		`^(` + namePattern + `)` + blankPattern + `+"(.*?)"`)
	indentedSetPattern = regexp.MustCompile(
		`^` + blankPattern + `{4}set` + blankPattern + `+(` + namePattern + `)` + blankPattern + `+"(.*?)"`)

	// lineBreak matches every line boundary, CRLF taking precedence over CR.
	lineBreak = regexp.MustCompile(`\r\n|[\n\r\v\f\x1c\x1d\x1e\x{85}\x{2028}\x{2029}]`)
)

func (d Dialect) pattern() (*regexp.Regexp, error) {
	switch d {
	case DialectInline:
		return inlinePattern, nil
	case DialectIndentedSet:
		return indentedSetPattern, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, d)
	}
}

// ParseInline parses a protocol block in the inline dialect.
func ParseInline(text string) (*Mapping, error) {
	return Parse(text, DialectInline)
}

// ParseIndentedSet parses an LxProtocol file in the indented-set dialect.
func ParseIndentedSet(text string) (*Mapping, error) {
	return Parse(text, DialectIndentedSet)
}

// Parse converts text into a Mapping, one entry per non-blank line. Lines end
// at LF, CR, CRLF and the other Unicode line boundaries. A key
// that appears again overwrites the earlier value. Parsing stops at the
// first line that does not match the dialect and returns a *ParseError.
func Parse(text string, dialect Dialect) (*Mapping, error) {
	pattern, err := dialect.pattern()
	if err != nil {
		return nil, err
	}

	mapping := NewMapping()

	for index, line := range lineBreak.Split(text, -1) {
		lineNumber := index + 1

		if strings.TrimSpace(line) == "" {
			continue
		}

		match := pattern.FindStringSubmatch(line)
		if match == nil {
			return nil, &ParseError{Dialect: dialect, Line: lineNumber, Content: line}
		}

		mapping.Set(match[1], match[2])
	}

	return mapping, nil
}
