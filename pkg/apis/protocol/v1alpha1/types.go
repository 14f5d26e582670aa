package v1alpha1

// Config is the resolved geprotocol configuration. Keys mirror the config
// file, environment variables (GEPROTOCOL_ prefix) and persistent flags.
type Config struct {
	Element      Tag       `json:"element,omitzero"       jsonschema:"description=Private element holding the protocol block (hex group and element)"` //nolint:lll
	HeaderLength int       `json:"header-length,omitzero" jsonschema:"description=Number of vendor header bytes preceding the compressed text"` //nolint:lll
	Encoding     string    `json:"encoding,omitzero"      jsonschema:"description=WHATWG label of the text encoding of the protocol block"`
	DiffStyle    DiffStyle `json:"diff-style,omitzero"    jsonschema:"description=Layout of diff records"`
	JSONIndent   int       `json:"json-indent,omitzero"   jsonschema:"description=Spaces per indentation level in JSON output"`
	LogLevel     string    `json:"log-level,omitzero"     jsonschema:"description=Diagnostic log level written to stderr"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Element:      DefaultElement,
		HeaderLength: DefaultHeaderLength,
		Encoding:     DefaultEncoding,
		DiffStyle:    DiffStyleInline,
		JSONIndent:   DefaultJSONIndent,
		LogLevel:     DefaultLogLevel,
	}
}
