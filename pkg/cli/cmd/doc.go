// Package cmd provides the command-line interface for geprotocol.
//
// The root command delegates to:
//   - json: export the protocol block of a DICOM file as JSON
//   - diff: compare a reference protocol against a DICOM file
//   - dump: print a protocol mapping as JSON or YAML
//   - schema: print the JSON Schema of the config file
package cmd
