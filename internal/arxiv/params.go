package arxiv

// DefaultQuery seeds the listing before the user has searched for anything.
const DefaultQuery = "algorithms"

// maxPage is the soft upper bound the service accepts for the p parameter.
const maxPage = 1000

// Params carries the query string and page number for one search request.
type Params struct {
	Page  int
	Query string
}

// NewParams returns the starting parameters: page 1 of the seed query.
func NewParams() Params {
	return Params{Page: 1, Query: DefaultQuery}
}

// NextPageBy advances the page, saturating at the service maximum.
func (p *Params) NextPageBy(amount int) {
	if p.Page+amount < maxPage {
		p.Page += amount
	} else {
		p.Page = maxPage
	}
}

// PrevPageBy retreats the page, flooring at 0. The floor sits one below the
// usual first page; the asymmetry with NextPageBy is deliberate and matches
// the service contract.
func (p *Params) PrevPageBy(amount int) {
	if p.Page <= amount {
		p.Page = 0
	} else {
		p.Page -= amount
	}
}

// SetQuery replaces the query verbatim. The empty string is a valid query and
// means "browse without filter".
func (p *Params) SetQuery(query string) {
	p.Query = query
}
