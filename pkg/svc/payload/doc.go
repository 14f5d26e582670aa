// Package payload turns the raw bytes of the GE protocol element into text.
//
// The element value starts with a fixed-length vendor header followed by a
// single gzip member. Decoder strips the header, inflates the member and
// decodes the result with the configured text encoding.
package payload
