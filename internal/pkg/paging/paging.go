// Package paging resolves 1-based page requests against a known total.
package paging

// Window is the resolved page: the effective index after correction and the
// row window to fetch.
type Window struct {
	PageIndex  int
	PageSize   int
	TotalPages int
	Skip       int
}

// TotalPages returns ceil(totalItems / pageSize).
func TotalPages(totalItems int64, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((totalItems + size - 1) / size)
}

// Resolve applies the listing policy: a requested page outside
// [1, totalPages] silently becomes page 1 instead of failing.
// A non-positive page size falls back to defaultSize, and sizes above
// maxSize (when maxSize > 0) are capped.
func Resolve(totalItems int64, pageIndex, pageSize, defaultSize, maxSize int) Window {
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}
	if pageSize <= 0 {
		pageSize = 1
	}

	totalPages := TotalPages(totalItems, pageSize)
	if pageIndex < 1 || pageIndex > totalPages {
		pageIndex = 1
	}

	return Window{
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Skip:       pageSize * (pageIndex - 1),
	}
}
