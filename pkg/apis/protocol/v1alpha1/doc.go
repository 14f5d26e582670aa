// Package v1alpha1 defines the configuration types for geprotocol: the
// private element tag that carries the protocol block, the payload framing
// and text encoding, and the output options used by the CLI.
package v1alpha1
