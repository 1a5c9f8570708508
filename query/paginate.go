package query

// Paginate slices out [offset, offset+limit) of an already filtered and
// sorted sequence. Out-of-range offsets yield an empty page. hasMore reports
// whether records remain past the requested window.
func Paginate[T any](items []T, limit, offset int) (page []T, total int, hasMore bool) {
	total = len(items)
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], total, offset+limit < total
}
