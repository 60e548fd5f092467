package pagination

// DefaultPageSize matches the dashboard's initial page size; PageSizes are
// the options the UI offers.
const DefaultPageSize = 10

var PageSizes = []int{5, 10, 25, 50}

// Pager tracks the zero-based current page over a known item total and
// clamps navigation at the edges. Changing the page size does not re-clamp
// the current page; callers re-fetch after a size change, which resets the
// total and bounds.
type Pager struct {
	currentPage int
	pageSize    int
	totalItems  int
}

// New returns a Pager on page 0 with the given page size. Non-positive
// sizes fall back to the default.
func New(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize}
}

// SetTotal records the item total reported by the latest fetch.
func (p *Pager) SetTotal(totalItems int) {
	if totalItems < 0 {
		totalItems = 0
	}
	p.totalItems = totalItems
}

// SetPageSize changes the page size without touching the current page.
func (p *Pager) SetPageSize(size int) {
	if size > 0 {
		p.pageSize = size
	}
}

func (p *Pager) CurrentPage() int { return p.currentPage }
func (p *Pager) PageSize() int    { return p.pageSize }
func (p *Pager) TotalItems() int  { return p.totalItems }

// TotalPages is ceil(totalItems/pageSize), 0 when there are no items.
func (p *Pager) TotalPages() int {
	if p.totalItems == 0 {
		return 0
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// Range returns the one-based inclusive display range for the current page,
// e.g. "showing 11 to 20 of 235". Both bounds are 0 when there are no items.
func (p *Pager) Range() (first, last int) {
	if p.totalItems == 0 {
		return 0, 0
	}
	first = p.currentPage*p.pageSize + 1
	last = (p.currentPage + 1) * p.pageSize
	if last > p.totalItems {
		last = p.totalItems
	}
	return first, last
}

// GoTo moves to page n if it is within [0, totalPages-1]; out-of-range
// requests are ignored.
func (p *Pager) GoTo(n int) {
	if n < 0 || n >= p.TotalPages() {
		return
	}
	p.currentPage = n
}

func (p *Pager) First()    { p.GoTo(0) }
func (p *Pager) Previous() { p.GoTo(p.currentPage - 1) }
func (p *Pager) Next()     { p.GoTo(p.currentPage + 1) }
func (p *Pager) Last()     { p.GoTo(p.TotalPages() - 1) }

// HasPrevious reports whether a previous page exists.
func (p *Pager) HasPrevious() bool { return p.currentPage > 0 }

// HasNext reports whether a next page exists.
func (p *Pager) HasNext() bool { return p.currentPage < p.TotalPages()-1 }
