package diff

// Summary counts records per kind.
type Summary struct {
	Changed int
	Removed int
	Added   int
}

// Total returns the number of differing keys.
func (s Summary) Total() int {
	return s.Changed + s.Removed + s.Added
}

// Summarize counts records per kind.
func Summarize(records []Record) Summary {
	var summary Summary

	for _, record := range records {
		switch record.Kind {
		case KindChanged:
			summary.Changed++
		case KindRemoved:
			summary.Removed++
		case KindAdded:
			summary.Added++
		}
	}

	return summary
}
