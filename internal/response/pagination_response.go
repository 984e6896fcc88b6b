package response

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	maxPage         = 1 << 20
)

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination fills the derived fields from page, page size and total.
// Page size is clamped to MaxPageSize and page to a bound that keeps the
// offset from overflowing.
func NewPagination(page, pageSize int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from := (page-1)*pageSize + 1
	to := page * pageSize
	if int64(to) > total {
		to = int(total)
	}
	if int64(from) > total {
		from, to = 0, 0
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
