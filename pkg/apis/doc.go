// Package apis provides API type definitions for geprotocol.
//
// This package contains versioned API types:
//
//   - protocol: configuration, DICOM tag and enum types shared by the CLI and services
//
// The API types are designed to be serializable to YAML and JSON.
package apis
