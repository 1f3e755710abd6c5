// Package page slices query results into fixed-size pages and builds
// the page-number strip shown under item grids.
package page

// Ellipsis is the sentinel Numbers emits where a run of page numbers
// is collapsed.
const Ellipsis = -1

// Page is one window over a result set.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns page number n of items. TotalPages is at least 1:
// an empty result is "page 1 of 1 with zero items", not an error.
// Pages past the end come back with no items; clamping the requested
// page is the caller's job (and callers reset to page 1 whenever the
// active filter or search changes).
func Paginate[T any](items []T, pageSize, n int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if n < 1 {
		n = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	p := Page[T]{
		Items:      []T{},
		Number:     n,
		TotalItems: len(items),
		TotalPages: totalPages,
	}

	start := (n - 1) * pageSize
	if start >= len(items) {
		return p
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[start:end]
	return p
}

// Numbers returns the page strip for the given position: always the
// first and last page plus a window of one around current, with
// Ellipsis marking each collapsed run.
func Numbers(current, total int) []int {
	var out []int
	for n := 1; n <= total; n++ {
		switch {
		case n == 1 || n == total || (n >= current-1 && n <= current+1):
			out = append(out, n)
		case n == current-2 || n == current+2:
			out = append(out, Ellipsis)
		}
	}
	return out
}
