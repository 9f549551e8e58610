package service

import "math"

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// maxPage keeps (page-1)*limit inside int32 for any allowed limit.
	maxPage = math.MaxInt32 / maxPageSize
)

// pageBounds clamps a 1-based page request and returns the row offset.
func pageBounds(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, (page - 1) * limit
}

func totalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
