package domain

import "strings"

// Filter is the predicate contract exposed to the presentation layer.
// Zero-value fields match everything; month bounds are inclusive ISO months
// (YYYY-MM) compared against the sale date.
type Filter struct {
	Store      string `json:"store,omitempty"`
	Category   string `json:"category,omitempty"`
	Collection string `json:"collection,omitempty"`
	StartMonth string `json:"start_month,omitempty" validate:"omitempty,datetime=2006-01"`
	EndMonth   string `json:"end_month,omitempty" validate:"omitempty,datetime=2006-01"`
	CodeQuery  string `json:"code_query,omitempty"`
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// MatchSale reports whether a sale record passes the filter.
func (f Filter) MatchSale(r SaleRecord) bool {
	if f.Store != "" && r.StoreName != f.Store {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Collection != "" && r.Collection != f.Collection {
		return false
	}
	// Zero-padded ISO months compare lexicographically in calendar order.
	if month := r.SaleMonth(); month != "" {
		if f.StartMonth != "" && month < f.StartMonth {
			return false
		}
		if f.EndMonth != "" && month > f.EndMonth {
			return false
		}
	}
	if f.CodeQuery != "" &&
		!strings.Contains(strings.ToLower(r.ItemCode), strings.ToLower(f.CodeQuery)) {
		return false
	}
	return true
}

// MatchCut reports whether a cut record passes the filter. Cut records carry
// no store, category or date, so only the code search applies.
func (f Filter) MatchCut(r CutRecord) bool {
	if f.CodeQuery != "" &&
		!strings.Contains(strings.ToLower(r.ItemCode), strings.ToLower(f.CodeQuery)) {
		return false
	}
	return true
}
