package v1alpha1

import "errors"

// ErrInvalidTag is returned when a tag cannot be parsed from text.
var ErrInvalidTag = errors.New("invalid tag")

// ErrInvalidDiffStyle is returned when an unknown diff style is specified.
var ErrInvalidDiffStyle = errors.New("invalid diff style")

// ErrInvalidOutputFormat is returned when an unknown output format is specified.
var ErrInvalidOutputFormat = errors.New("invalid output format")

// ErrInvalidInputFormat is returned when an unknown input format is specified.
var ErrInvalidInputFormat = errors.New("invalid input format")

// ErrInvalidHeaderLength is returned when the header length is negative.
var ErrInvalidHeaderLength = errors.New("invalid header length")

// ErrInvalidEncoding is returned when the encoding label is unknown.
var ErrInvalidEncoding = errors.New("invalid encoding")

// ErrInvalidJSONIndent is returned when the JSON indent is out of range.
var ErrInvalidJSONIndent = errors.New("invalid json indent")

// ErrInvalidLogLevel is returned when the log level is unknown.
var ErrInvalidLogLevel = errors.New("invalid log level")
