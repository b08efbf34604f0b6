package store

// Default pagination parameters, matching the public listing endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 9
	MaxLimit     = 100
)

// PageInfo describes the position of one page within a filtered listing.
// NextPage is nil when no further results remain.
type PageInfo struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
	NextPage   *int  `json:"next_page"`
}

// NewPageInfo computes pagination metadata for a listing of total matching
// rows viewed through offset pagination with the given page and limit.
// TotalPages is ceil(total/limit); NextPage is page+1 while more results
// remain past the current page.
func NewPageInfo(page, limit int, total int64) PageInfo {
	info := PageInfo{
		Page:       page,
		TotalCount: total,
	}

	if limit > 0 {
		info.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	if int64(page)*int64(limit) < total {
		next := page + 1
		info.NextPage = &next
	}

	return info
}

// NormalizePage clamps page and limit to sane values: page defaults to
// DefaultPage, limit to DefaultLimit, and limit is capped at MaxLimit.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset returns the row offset for the given page and limit.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
