// Package dicomreader opens DICOM Part 10 files and locates raw element values.
//
// Only the header is parsed; pixel data is skipped. The package knows nothing
// about what a located element contains.
package dicomreader
