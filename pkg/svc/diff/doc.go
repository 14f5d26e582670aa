// Package diff compares a reference protocol mapping with a test mapping and
// renders the differences as line-oriented records.
//
// Records are produced in two passes: first every reference key in reference
// order (changed or removed), then every key only present in the test mapping
// in test order (added). The order is part of the output contract.
package diff
