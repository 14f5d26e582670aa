package diff

import "github.com/mri-tools/geprotocol/pkg/svc/protocol"

// Kind classifies a differing key.
type Kind int

const (
	// KindChanged marks a key present on both sides with different values.
	KindChanged Kind = iota
	// KindRemoved marks a key only present in the reference.
	KindRemoved
	// KindAdded marks a key only present in the test mapping.
	KindAdded
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindChanged:
		return "changed"
	case KindRemoved:
		return "removed"
	case KindAdded:
		return "added"
	default:
		return "unknown"
	}
}

// Record is one differing key. Reference is empty for added keys and Test is
// empty for removed keys.
type Record struct {
	Key       string
	Kind      Kind
	Reference string
	Test      string
}

// HasReference reports whether the reference side holds the key.
func (r Record) HasReference() bool {
	return r.Kind != KindAdded
}

// HasTest reports whether the test side holds the key.
func (r Record) HasTest() bool {
	return r.Kind != KindRemoved
}

// Compute returns the differences between reference and test. Keys with equal
// values on both sides produce no record.
func Compute(reference, test *protocol.Mapping) []Record {
	records := []Record{}

	for key, refValue := range reference.All() {
		testValue, ok := test.Get(key)

		switch {
		case !ok:
			records = append(records, Record{Key: key, Kind: KindRemoved, Reference: refValue})
		case testValue != refValue:
			records = append(records, Record{
				Key:       key,
				Kind:      KindChanged,
				Reference: refValue,
				Test:      testValue,
			})
		}
	}

	for key, testValue := range test.All() {
		if !reference.Has(key) {
			records = append(records, Record{Key: key, Kind: KindAdded, Test: testValue})
		}
	}

	return records
}
