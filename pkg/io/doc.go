// Package io provides utilities for input and output operations.
//
// Subpackages:
//   - configmanager: Configuration loading and management
//   - marshaller: Serialization and deserialization of protocol mappings
//
// For low-level file I/O operations (writing, path manipulation),
// see the fsutil package.
package io
