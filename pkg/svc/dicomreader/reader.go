package dicomreader

import (
	"errors"
	"fmt"
	"io"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const (
	preambleLength = 128
	magic          = "DICM"
)

// HasSignature reports whether r starts with a DICOM preamble and the "DICM"
// magic. Inputs too short to hold the magic are not DICOM.
func HasSignature(r io.ReaderAt) (bool, error) {
	buf := make([]byte, len(magic))

	n, err := r.ReadAt(buf, preambleLength)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, fmt.Errorf("failed to read DICOM signature: %w", err)
	}

	return n == len(magic) && string(buf) == magic, nil
}

// ReadDataset parses the header of a DICOM file of the given size.
func ReadDataset(r io.Reader, size int64) (dicom.Dataset, error) {
	dataset, err := dicom.Parse(r, size, nil, dicom.SkipPixelData())
	if err != nil {
		return dicom.Dataset{}, fmt.Errorf("failed to parse DICOM file: %w", err)
	}

	return dataset, nil
}

// LocateElement returns the raw bytes of the element identified by t.
func LocateElement(dataset dicom.Dataset, t v1alpha1.Tag) ([]byte, error) {
	element, err := dataset.FindElementByTag(tag.Tag{Group: t.Group, Element: t.Element})
	if err != nil {
		if errors.Is(err, dicom.ErrorElementNotFound) {
			return nil, &MissingElementError{Tag: t}
		}

		return nil, fmt.Errorf("failed to look up element %s: %w", t, err)
	}

	if element.Value == nil || element.Value.ValueType() != dicom.Bytes {
		return nil, fmt.Errorf("%w: %s has VR %s", ErrNotByteValue, t, element.RawValueRepresentation)
	}

	data, ok := element.Value.GetValue().([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotByteValue, t)
	}

	return data, nil
}
