package domain

const (
	DefaultRoomPageLimit    = 10
	DefaultMessagePageLimit = 50
	MaxPageLimit            = 100
)

type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest applies defaults the same way for every paginated endpoint:
// non-positive values fall back to page 1 and the endpoint default limit.
func NewPageRequest(page, limit, defaultLimit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(req PageRequest, total int64) Pagination {
	limit := int64(req.Limit)
	return Pagination{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}
}
