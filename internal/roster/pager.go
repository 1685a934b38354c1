package roster

// Pager is the zero-based page cursor over a remotely paginated list. The
// server exposes no total count, so hasMore is the heuristic "the last fetch
// filled the window": a final page that is exactly full reports hasMore once
// more, and the following empty fetch flips it false.
type Pager struct {
	page    int
	size    int
	hasMore bool
}

func NewPager(size int) *Pager {
	return &Pager{size: size, hasMore: true}
}

func (p *Pager) Page() int     { return p.page }
func (p *Pager) Size() int     { return p.size }
func (p *Pager) HasMore() bool { return p.hasMore }

// Observe records how many rows the last fetch returned.
func (p *Pager) Observe(returned int) {
	p.hasMore = returned >= p.size
}

// Next advances the cursor when more pages may exist.
func (p *Pager) Next() bool {
	if !p.hasMore {
		return false
	}
	p.page++
	return true
}

// Prev moves the cursor back, clamping at the first page.
func (p *Pager) Prev() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	return true
}

// Reset returns to the first page without touching hasMore.
func (p *Pager) Reset() {
	p.page = 0
}

// Seek jumps straight to a page, clamping negatives to 0.
func (p *Pager) Seek(page int) {
	if page < 0 {
		page = 0
	}
	p.page = page
}
