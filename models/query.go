package models

import "time"

// Filter is the structured form of a natural language query. Zero-value
// fields mean "no constraint"; an entirely empty filter matches everything.
type Filter struct {
	Keywords      []string
	Category      string
	ModifiedAfter time.Time
	ModifiedTo    time.Time
	MinSize       int64
	MaxSize       int64
}

// IsEmpty reports whether the filter carries no constraints at all.
func (f Filter) IsEmpty() bool {
	return len(f.Keywords) == 0 &&
		f.Category == "" &&
		f.ModifiedAfter.IsZero() &&
		f.ModifiedTo.IsZero() &&
		f.MinSize == 0 &&
		f.MaxSize == 0
}
