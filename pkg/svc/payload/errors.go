package payload

import (
	"errors"
	"fmt"
)

// Decoding stages reported by DecodeError.
const (
	StageHeader     = "header"
	StageDecompress = "decompress"
	StageDecode     = "decode"
)

var (
	// ErrPayloadTooShort is returned when the payload is shorter than the header.
	ErrPayloadTooShort = errors.New("payload is shorter than the vendor header")
	// ErrInvalidUTF8 is returned when strict UTF-8 decoding meets invalid bytes.
	ErrInvalidUTF8 = errors.New("payload text is not valid UTF-8")
	// ErrNegativeHeaderLength is returned for a negative header length.
	ErrNegativeHeaderLength = errors.New("header length must not be negative")
)

// DecodeError reports the stage at which payload decoding failed.
type DecodeError struct {
	Stage string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode protocol payload (%s): %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
