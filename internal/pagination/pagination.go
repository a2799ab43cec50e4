// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import "strconv"

const PageSize = 10

// ParsePage reads a 1-based page number, falling back to 1 when the value is
// absent or not an integer.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*PageSize : page*PageSize] clipped to the
// slice bounds. Pages outside the range yield an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	// Compare page counts before multiplying so huge pages cannot overflow.
	pages := (len(items) + PageSize - 1) / PageSize
	if page < 1 || page > pages {
		return []T{}
	}

	start := (page - 1) * PageSize

	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
