package payload

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
)

const utf8BOM = "\uFEFF"

// Decoder strips the vendor header, inflates and decodes a protocol payload.
type Decoder struct {
	// HeaderLength is the number of leading bytes to discard.
	HeaderLength int
	// Encoding is a WHATWG encoding label. Empty means strict UTF-8.
	Encoding string
	// Logger receives debug output. Nil disables logging.
	Logger logrus.FieldLogger
}

// NewDecoder creates a decoder with the default header length and encoding.
func NewDecoder(logger logrus.FieldLogger) *Decoder {
	return &Decoder{
		HeaderLength: v1alpha1.DefaultHeaderLength,
		Encoding:     v1alpha1.DefaultEncoding,
		Logger:       logger,
	}
}

// Decode returns the protocol text held in raw.
func (d *Decoder) Decode(raw []byte) (string, error) {
	if d.HeaderLength < 0 {
		return "", &DecodeError{Stage: StageHeader, Err: ErrNegativeHeaderLength}
	}

	if len(raw) < d.HeaderLength {
		return "", &DecodeError{
			Stage: StageHeader,
			Err:   fmt.Errorf("%w: %d < %d bytes", ErrPayloadTooShort, len(raw), d.HeaderLength),
		}
	}

	header, body := raw[:d.HeaderLength], raw[d.HeaderLength:]
	d.inspectHeader(header)

	inflated, err := inflate(body)
	if err != nil {
		return "", &DecodeError{Stage: StageDecompress, Err: err}
	}

	text, err := d.DecodeText(inflated)
	if err != nil {
		return "", &DecodeError{Stage: StageDecode, Err: err}
	}

	d.logger().WithFields(logrus.Fields{
		"compressed": len(body),
		"inflated":   len(inflated),
	}).Debug("decoded protocol payload")

	return text, nil
}

func (d *Decoder) inspectHeader(header []byte) {
	if bytes.Equal(header, v1alpha1.ObservedHeader) {
		return
	}

	d.logger().WithField("header", fmt.Sprintf("% x", header)).
		Debug("vendor header differs from the observed value")
}

// DecodeText decodes data with the configured encoding. A leading byte order
// mark is dropped.
func (d *Decoder) DecodeText(data []byte) (string, error) {
	label := strings.TrimSpace(d.Encoding)
	if label == "" || strings.EqualFold(label, v1alpha1.DefaultEncoding) ||
		strings.EqualFold(label, "utf8") {
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}

		return strings.TrimPrefix(string(data), utf8BOM), nil
	}

	encoding, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("%w: %q", v1alpha1.ErrInvalidEncoding, label)
	}

	decoded, err := encoding.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s text: %w", label, err)
	}

	return strings.TrimPrefix(string(decoded), utf8BOM), nil
}

func (d *Decoder) logger() logrus.FieldLogger {
	if d.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)

		return logger
	}

	return d.Logger
}

// inflate reads exactly one gzip member so that DICOM padding after the
// member is ignored.
func inflate(body []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}

	defer func() { _ = reader.Close() }()

	reader.Multistream(false)

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("inflate gzip stream: %w", err)
	}

	return data, nil
}
