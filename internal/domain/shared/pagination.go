package shared

// Pagination carries the page window requested by a listing operation.
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize clamps the window to sane bounds.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 50
	}
	if p.PageSize > 200 {
		p.PageSize = 200
	}
}

// Offset returns the SQL offset for the window.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
