package entity

const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

// Pagination is an offset/limit window over a listing.
type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// DefaultPagination returns the window used when the caller supplies none.
func DefaultPagination() Pagination {
	return Pagination{Skip: DefaultSkip, Limit: DefaultLimit}
}

// Normalize clamps a negative skip to zero and replaces a non-positive
// limit with DefaultLimit.
func (p Pagination) Normalize() Pagination {
	if p.Skip < 0 {
		p.Skip = DefaultSkip
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}

	return p
}
