package dicomreader

import (
	"errors"
	"fmt"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
)

// ErrNotByteValue is returned when a located element does not hold raw bytes.
var ErrNotByteValue = errors.New("element does not hold a byte value")

// MissingElementError reports that a dataset lacks the requested element.
type MissingElementError struct {
	Tag v1alpha1.Tag
}

// Error implements the error interface.
func (e *MissingElementError) Error() string {
	return fmt.Sprintf("DICOM file does not contain private element %s", e.Tag)
}
