// Package dicomtest builds DICOM fixtures carrying GE-style protocol payloads.
package dicomtest

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Explicit VR Little Endian.
const transferSyntax = "1.2.840.10008.1.2.1"

// MR Image Storage.
const sopClass = "1.2.840.10008.5.1.4.1.1.4"

const (
	sopInstance    = "1.2.826.0.1.3680043.2.1125.1.1"
	privateCreator = "GEMS_SERS_01"
)

// Payload returns the observed vendor header followed by text gzipped.
func Payload(t testing.TB, text string) []byte {
	t.Helper()

	var buf bytes.Buffer

	buf.Write(v1alpha1.ObservedHeader)

	writer := gzip.NewWriter(&buf)

	_, err := writer.Write([]byte(text))
	if err != nil {
		t.Fatalf("gzip payload: %v", err)
	}

	err = writer.Close()
	if err != nil {
		t.Fatalf("close gzip payload: %v", err)
	}

	return buf.Bytes()
}

// File returns an encoded DICOM file. When payload is non-nil it is stored
// as an OB value in element, together with a GE private creator.
func File(t testing.TB, element v1alpha1.Tag, payload []byte) []byte {
	t.Helper()

	elements := []*dicom.Element{
		mustElement(t, tag.MediaStorageSOPClassUID, []string{sopClass}),
		mustElement(t, tag.MediaStorageSOPInstanceUID, []string{sopInstance}),
		mustElement(t, tag.TransferSyntaxUID, []string{transferSyntax}),
		mustElement(t, tag.SOPClassUID, []string{sopClass}),
		mustElement(t, tag.SOPInstanceUID, []string{sopInstance}),
		mustElement(t, tag.Modality, []string{"MR"}),
	}

	if payload != nil {
		elements = append(elements,
			privateElement(t, tag.Tag{Group: element.Group, Element: 0x0010}, "LO", tag.VRStringList,
				[]string{privateCreator}),
			privateElement(t, tag.Tag{Group: element.Group, Element: element.Element}, "OB", tag.VRBytes,
				payload),
		)
	}

	var buf bytes.Buffer

	err := dicom.Write(&buf, dicom.Dataset{Elements: elements},
		dicom.SkipVRVerification(), dicom.SkipValueTypeVerification())
	if err != nil {
		t.Fatalf("write DICOM fixture: %v", err)
	}

	return buf.Bytes()
}

// ProtocolFile is File with the default element and a payload built from text.
func ProtocolFile(t testing.TB, text string) []byte {
	t.Helper()

	return File(t, v1alpha1.DefaultElement, Payload(t, text))
}

func mustElement(t testing.TB, tg tag.Tag, data any) *dicom.Element {
	t.Helper()

	element, err := dicom.NewElement(tg, data)
	if err != nil {
		t.Fatalf("build element %s: %v", tg, err)
	}

	return element
}

func privateElement(t testing.TB, tg tag.Tag, rawVR string, vr tag.VRKind, data any) *dicom.Element {
	t.Helper()

	value, err := dicom.NewValue(data)
	if err != nil {
		t.Fatalf("build value for %s: %v", tg, err)
	}

	return &dicom.Element{
		Tag:                    tg,
		ValueRepresentation:    vr,
		RawValueRepresentation: rawVR,
		Value:                  value,
	}
}
