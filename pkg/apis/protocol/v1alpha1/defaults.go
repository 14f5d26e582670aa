package v1alpha1

const (
	// DefaultHeaderLength is the size of the vendor header in front of the gzip stream.
	DefaultHeaderLength = 4
	// DefaultEncoding is the text encoding of the decompressed protocol block.
	DefaultEncoding = "utf-8"
	// DefaultJSONIndent keeps one entry per line without indentation.
	DefaultJSONIndent = 0
	// DefaultLogLevel only surfaces warnings and errors.
	DefaultLogLevel = "warn"
	// MaxJSONIndent bounds the json-indent setting.
	MaxJSONIndent = 8
)

// DefaultElement is the GE private element (0025,101B) holding the protocol data block.
//
//nolint:gochecknoglobals // value type, never mutated
var DefaultElement = Tag{Group: 0x0025, Element: 0x101B}

// ObservedHeader is the vendor header seen in front of every protocol block so far.
// It is not validated, only reported when a payload carries something else.
//
//nolint:gochecknoglobals
var ObservedHeader = []byte{0x51, 0x03, 0x00, 0x00}
