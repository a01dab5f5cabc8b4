package pagination

// LimitMax caps how many records a single list call may return.
const LimitMax = 500

// LimitOffset represents a skip/limit pagination request as carried
// by the list endpoints' query strings.
type LimitOffset struct {
	Limit int `query:"limit"`
	Skip  int `query:"skip"`
}

// Normalize clamps the parameters to sane values. A non-positive limit
// falls back to the given default; skip is never negative.
func (p *LimitOffset) Normalize(defaultLimit int) {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > LimitMax {
		p.Limit = LimitMax
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}
