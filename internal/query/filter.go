package query

import "strings"

// FilterRequest is the structured form of the storefront's filter query
// parameters. Absent fields impose no constraint.
type FilterRequest struct {
	Category    string
	Subcategory string
	Brands      []string
	Sizes       []string
	Colors      []string
	MinPrice    *float64
	MaxPrice    *float64
	InStock     *bool
	Search      string
}

// Compile normalizes the request and emits the predicate. Normalization
// rules: empty or whitespace-only strings are treated as absent, empty list
// entries are dropped, and an empty list means "no constraint" rather than
// "match none".
func (f FilterRequest) Compile() Predicate {
	var p Predicate

	if name := strings.TrimSpace(f.Category); name != "" {
		p.add(CategoryIs{Name: name})
	}
	if name := strings.TrimSpace(f.Subcategory); name != "" {
		p.add(SubcategoryIs{Name: name})
	}
	if names := cleanList(f.Brands); len(names) > 0 {
		p.add(BrandIn{Names: names})
	}
	if names := cleanList(f.Sizes); len(names) > 0 {
		p.add(SizeAny{Names: names})
	}
	if names := cleanList(f.Colors); len(names) > 0 {
		p.add(ColorAny{Names: names})
	}
	if f.MinPrice != nil {
		p.add(PriceAtLeast{Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		p.add(PriceAtMost{Value: *f.MaxPrice})
	}
	if f.InStock != nil {
		p.add(InStockIs{Value: *f.InStock})
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		p.add(SearchText{Term: term})
	}

	return p
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
