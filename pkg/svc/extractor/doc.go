// Package extractor reads protocol mappings from DICOM files, LxProtocol text
// files and previously exported JSON or YAML documents.
package extractor
