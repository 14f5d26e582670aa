// Package svc provides service layer components for geprotocol.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the DICOM container and payload handling.
//
// Subpackages:
//   - dicomreader: DICOM parsing and private element lookup
//   - payload: vendor header stripping, gunzip and text decoding
//   - protocol: ordered protocol mapping and the two line dialects
//   - diff: reference/test comparison and rendering
//   - extractor: file-level extraction and reference loading
package svc
