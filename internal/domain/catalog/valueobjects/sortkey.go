package valueobjects

// SortKey selects the ordering of catalog listings.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortName       SortKey = "name"
	SortRating     SortKey = "rating"
	SortNewest     SortKey = "newest"
)

// ParseSortKey maps a caller-supplied sort parameter to a SortKey.
// Unrecognized values fall back to popularity.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortName:
		return SortName
	case SortRating:
		return SortRating
	case SortNewest:
		return SortNewest
	default:
		return SortPopularity
	}
}

func (k SortKey) String() string {
	return string(k)
}
