// Package notify writes short status messages for CLI users.
//
// Message types include success (✔), error (✗), warning (⚠) and info (ℹ).
// Colors are only emitted when the destination is a terminal and NO_COLOR is
// unset.
package notify
