// Package protocol parses GE protocol data blocks into an ordered mapping of
// parameter names to values.
//
// Two line dialects are supported:
//   - inline: NAME "VALUE", as stored in the DICOM private element
//   - indented set: four spaces, "set", NAME "VALUE", as written to LxProtocol files
//
// Values are kept as opaque strings.
package protocol
