package repository

// Offset paging shared by the post listing (database skip/limit) and the
// embedded comment listing (in-memory slice).

// ClampLimit applies the default for missing/invalid limits and clamps
// anything above max instead of rejecting it.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// maxPage bounds the page number so the skip product stays far below the
// int range; any real listing runs out of documents long before this.
const maxPage = 1 << 30

func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

func TotalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// PageSlice returns the page-th window of items. Pages beyond the end yield
// an empty slice, not an error.
func PageSlice[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
