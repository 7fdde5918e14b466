package erp

// Pagination describes the slice of a collection returned by a list call
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// DefaultPageLimit applies when a list request does not specify a limit
const DefaultPageLimit = 20

// paginate returns the requested page of items plus its pagination block.
// Pages is ceil(total/limit); a page past the end yields an empty slice.
func paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	total := len(items)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return out, Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
